package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefinder/classification"
	"storefinder/dataset"
	"storefinder/geo"
	"storefinder/openinghours"
	"storefinder/places"
)

// ErrNotFound ни провайдер, ни локальный набор не знают такого идентификатора
var ErrNotFound = errors.New("candidate not found")

// DefaultLocation координата по умолчанию (центр Брюсселя) для локальных
// записей без собственных координат
var DefaultLocation = geo.Point{Lat: 50.8503, Lon: 4.3517}

// ResolvedPlace полностью обогащенная запись магазина. После возврата
// принадлежит вызывающему коду: движок не удерживает разделяемого
// изменяемого состояния.
type ResolvedPlace struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Address    string                `json:"address"`
	City       string                `json:"city"`
	PostalCode string                `json:"postal_code"`
	Location   geo.Point             `json:"location"`
	Phone      string                `json:"phone,omitempty"`
	Hours      openinghours.Schedule `json:"hours,omitempty"`
	Brand      string                `json:"brand"`
}

// DetailsClient порт получения деталей места (роутер провайдеров)
type DetailsClient interface {
	Details(ctx context.Context, id string) (*places.Detail, error)
}

// ResolveCache кэш разрешенных мест; реализуется database.StoreDB.
// Кэш необязателен: nil отключает кэширование.
type ResolveCache interface {
	GetCachedResolve(placeID string, ttl time.Duration) (string, bool)
	PutCachedResolve(placeID, payload string) error
}

// FacadeConfig конфигурация фасада
type FacadeConfig struct {
	Aggregator AggregatorConfig
	Cache      ResolveCache
	CacheTTL   time.Duration
}

// Facade публичная точка входа движка: поиск кандидатов и разрешение
// выбранного кандидата в обогащенную запись
type Facade struct {
	aggregator *Aggregator
	details    DetailsClient
	local      *dataset.Dataset
	detector   *classification.Classifier
	cache      ResolveCache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// NewFacade собирает фасад из роутера провайдеров, локального набора
// и детектора сетей
func NewFacade(searcher Searcher, details DetailsClient, local *dataset.Dataset, detector *classification.Classifier, config FacadeConfig) *Facade {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &Facade{
		aggregator: NewAggregator(searcher, local, detector, config.Aggregator),
		details:    details,
		local:      local,
		detector:   detector,
		cache:      config.Cache,
		cacheTTL:   cacheTTL,
		logger:     slog.Default().With("component", "discovery"),
	}
}

// Suggest возвращает ранжированных дедуплицированных кандидатов.
// См. Aggregator.Suggest: ошибки не возвращаются никогда.
func (f *Facade) Suggest(ctx context.Context, query string, near *geo.Point) []Candidate {
	return f.aggregator.Suggest(ctx, query, near)
}

// Resolve разрешает идентификатор кандидата в обогащенную запись.
// Локальные идентификаторы разрешаются из набора без сети. Для остальных
// опрашивается провайдер; отсутствие записи или исчерпание провайдеров
// дает ErrNotFound — типизированный отказ, не паника и не зависший retry.
func (f *Facade) Resolve(ctx context.Context, id string) (*ResolvedPlace, error) {
	if dataset.IsLocalID(id) {
		return f.resolveLocal(id)
	}

	if cached, ok := f.cachedResolve(id); ok {
		return cached, nil
	}

	detail, err := f.details.Details(ctx, id)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, id, err)
	}

	place := &ResolvedPlace{
		ID:         detail.ID,
		Name:       detail.Name,
		Address:    detail.Address,
		City:       detail.City,
		PostalCode: detail.PostalCode,
		Phone:      detail.Phone,
		Location:   DefaultLocation,
		Hours:      openinghours.Normalize(detail.WeekdayText),
		Brand:      f.detector.Classify(detail.Name),
	}
	if detail.Location != nil {
		place.Location = *detail.Location
	}

	f.storeResolve(place)
	return place, nil
}

// resolveLocal синтезирует запись из курируемого набора без сетевого вызова
func (f *Facade) resolveLocal(id string) (*ResolvedPlace, error) {
	store, ok := f.local.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	location := DefaultLocation
	if store.HasLocation() {
		location = geo.Point{Lat: store.Lat, Lon: store.Lon}
	}

	var hours openinghours.Schedule
	if len(store.Hours) > 0 {
		hours = make(openinghours.Schedule, len(store.Hours))
		for day, value := range store.Hours {
			hours[day] = value
		}
	}

	return &ResolvedPlace{
		ID:         id,
		Name:       store.Name,
		Address:    store.Address,
		City:       store.City,
		PostalCode: store.PostalCode,
		Location:   location,
		Phone:      store.Phone,
		Hours:      hours,
		Brand:      f.detector.Classify(store.Name + " " + store.Brand),
	}, nil
}

// cachedResolve пытается достать запись из кэша разрешений
func (f *Facade) cachedResolve(id string) (*ResolvedPlace, bool) {
	if f.cache == nil {
		return nil, false
	}

	payload, ok := f.cache.GetCachedResolve(id, f.cacheTTL)
	if !ok {
		return nil, false
	}

	var place ResolvedPlace
	if err := json.Unmarshal([]byte(payload), &place); err != nil {
		f.logger.Warn("corrupt resolve cache entry, ignoring", "id", id, "error", err)
		return nil, false
	}
	return &place, true
}

// storeResolve сохраняет успешное разрешение в кэш
func (f *Facade) storeResolve(place *ResolvedPlace) {
	if f.cache == nil {
		return
	}

	payload, err := json.Marshal(place)
	if err != nil {
		return
	}
	if err := f.cache.PutCachedResolve(place.ID, string(payload)); err != nil {
		f.logger.Warn("failed to store resolve cache entry", "id", place.ID, "error", err)
	}
}
