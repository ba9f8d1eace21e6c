// Package places описывает порт внешнего картографического провайдера
// и его адаптеры. Движок работает с провайдером как с черным ящиком:
// повторные попытки и таймауты транспорта — забота адаптера, не движка.
package places

import (
	"context"
	"errors"

	"storefinder/geo"
)

// ErrNotFound провайдер не нашел запись по идентификатору
var ErrNotFound = errors.New("place not found")

// ErrUnavailable провайдер недоступен (сеть, авторизация, квоты)
var ErrUnavailable = errors.New("place provider unavailable")

// Suggestion легковесный кандидат поиска до обогащения деталями.
// Живет в пределах одного запроса и никогда не сохраняется движком.
type Suggestion struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Types    []string   `json:"types,omitempty"`
	Location *geo.Point `json:"location,omitempty"`
}

// Detail обогащенная запись места от провайдера
type Detail struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	PostalCode  string     `json:"postal_code"`
	Location    *geo.Point `json:"location,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	WeekdayText []string   `json:"weekday_text,omitempty"`
}

// Provider порт картографического провайдера
type Provider interface {
	// Name возвращает имя провайдера
	Name() string

	// Available сообщает, доступен ли провайдер. Адаптеры сбрасывают флаг
	// при ошибках авторизации или недоступности сервиса.
	Available() bool

	// Search выполняет текстовый поиск мест, опционально со смещением
	// к координатам bias
	Search(ctx context.Context, query string, bias *geo.Point) ([]Suggestion, error)

	// Details возвращает детали места по идентификатору.
	// Возвращает ErrNotFound, если записи нет.
	Details(ctx context.Context, id string) (*Detail, error)
}
