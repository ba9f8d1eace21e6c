package server

import (
	"storefinder/discovery"
	"storefinder/openinghours"
)

// SuggestResponse ответ на запрос поиска кандидатов
type SuggestResponse struct {
	Query       string                `json:"query"`
	Suggestions []discovery.Candidate `json:"suggestions"`
	Count       int                   `json:"count"`
}

// ResolveResponse ответ на запрос разрешения кандидата
type ResolveResponse struct {
	Place *discovery.ResolvedPlace `json:"place"`
}

// ClassifyRequest запрос классификации по имени
type ClassifyRequest struct {
	Name     string   `json:"name" binding:"required"`
	Taxonomy []string `json:"taxonomy,omitempty"`
}

// ClassifyResponse результат классификации
type ClassifyResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// HoursRequest запрос нормализации расписания
type HoursRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// HoursResponse нормализованное расписание
type HoursResponse struct {
	Schedule openinghours.Schedule `json:"schedule"`
}

// DistanceResponse расстояние между двумя точками
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
}

// HealthResponse статус сервера
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	StoreCount int    `json:"store_count"`
}

// ErrorResponse стандартный ответ об ошибке
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
