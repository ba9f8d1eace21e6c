package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"storefinder/geo"
)

// Router перебирает провайдеров в порядке приоритета с переключением
// на следующего при ошибках. Порядок списка и есть приоритет.
type Router struct {
	providers []Provider
	logger    *slog.Logger
	mu        sync.RWMutex
}

// NewRouter создает новый роутер провайдеров
func NewRouter(providers ...Provider) *Router {
	return &Router{
		providers: providers,
		logger:    slog.Default().With("component", "places_router"),
	}
}

// Providers возвращает срез зарегистрированных провайдеров
func (r *Router) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Search выполняет поиск с переключением на следующего провайдера при
// ошибке или пустом ответе. Возвращает ErrUnavailable, когда ни один
// провайдер не дал результата.
func (r *Router) Search(ctx context.Context, query string, bias *geo.Point) ([]Suggestion, error) {
	var lastErr error

	for _, provider := range r.Providers() {
		if !provider.Available() {
			continue
		}

		suggestions, err := provider.Search(ctx, query, bias)
		if err != nil {
			r.logger.Warn("provider search failed, trying next",
				"provider", provider.Name(),
				"error", err)
			lastErr = err
			continue
		}
		if len(suggestions) == 0 {
			continue
		}

		return suggestions, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all providers failed: %w", lastErr)
	}
	return nil, ErrUnavailable
}

// Details возвращает детали места, опрашивая провайдеров по очереди.
// ErrNotFound от провайдера означает "попробовать следующего": формат
// идентификатора подсказывает владельца, но авторитетного реестра нет.
func (r *Router) Details(ctx context.Context, id string) (*Detail, error) {
	sawTransportFailure := false

	for _, provider := range r.Providers() {
		if !provider.Available() {
			continue
		}

		detail, err := provider.Details(ctx, id)
		if err == nil {
			return detail, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}

		r.logger.Warn("provider details failed, trying next",
			"provider", provider.Name(),
			"id", id,
			"error", err)
		sawTransportFailure = true
	}

	if sawTransportFailure {
		return nil, fmt.Errorf("%w: providers unavailable for id %s", ErrNotFound, id)
	}
	return nil, ErrNotFound
}
