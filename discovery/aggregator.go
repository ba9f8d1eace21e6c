// Package discovery собирает кандидатов поиска магазинов из нескольких
// источников и разрешает выбранного кандидата в обогащенную запись.
//
// Цепочка источников явная и упорядоченная: внешний провайдер, расширения
// запроса по вывескам сетей, локальный курируемый набор. Каждый источник
// возвращает результат-или-ничего, отказ любого из них деградирует выдачу,
// но никогда не роняет запрос.
package discovery

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"

	"storefinder/classification"
	"storefinder/dataset"
	"storefinder/geo"
	"storefinder/places"
)

// Пороговые константы агрегатора
const (
	// DefaultMinQueryLen минимальная длина запроса по умолчанию.
	// Вызывающий код может поднять порог до 3 через AggregatorConfig.
	DefaultMinQueryLen = 2

	// expansionThreshold при меньшем числе первичных результатов
	// включаются расширения по вывескам сетей
	expansionThreshold = 3
)

// Candidate кандидат поиска: легковесный результат до обогащения деталями,
// аннотированный меткой сети
type Candidate struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Types    []string   `json:"types,omitempty"`
	Brand    string     `json:"brand"`
	Location *geo.Point `json:"location,omitempty"`
}

// Searcher порт поиска кандидатов (роутер провайдеров)
type Searcher interface {
	Search(ctx context.Context, query string, bias *geo.Point) ([]places.Suggestion, error)
}

// AggregatorConfig конфигурация агрегатора
type AggregatorConfig struct {
	MinQueryLen int
}

// Aggregator собирает кандидатов из провайдера, расширений и локального
// набора, дедуплицирует и ранжирует их. Состояния между вызовами нет:
// каждый Suggest независим.
type Aggregator struct {
	searcher    Searcher
	local       *dataset.Dataset
	detector    *classification.Classifier
	minQueryLen int
	logger      *slog.Logger
}

// NewAggregator создает новый агрегатор кандидатов
func NewAggregator(searcher Searcher, local *dataset.Dataset, detector *classification.Classifier, config AggregatorConfig) *Aggregator {
	minLen := config.MinQueryLen
	if minLen <= 0 {
		minLen = DefaultMinQueryLen
	}

	return &Aggregator{
		searcher:    searcher,
		local:       local,
		detector:    detector,
		minQueryLen: minLen,
		logger:      slog.Default().With("component", "aggregator"),
	}
}

// Suggest возвращает ранжированный дедуплицированный список кандидатов.
// Функция никогда не возвращает ошибку: любой отказ источника означает
// меньше результатов, в худшем случае пустой список.
func (a *Aggregator) Suggest(ctx context.Context, query string, near *geo.Point) []Candidate {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < a.minQueryLen {
		// Дешевый выход, провайдер не трогается
		return []Candidate{}
	}

	merged := a.providerCandidates(ctx, query, near)

	if len(merged) == 0 {
		// Провайдер недоступен или ничего не нашел: прозрачный переход
		// на локальный набор. Вызывающий код отличит эти записи только
		// по формату идентификатора.
		merged = a.localCandidates(query)
	}

	candidates := a.annotate(merged)
	if near != nil {
		rankByDistance(candidates, *near)
	}
	return candidates
}

// providerCandidates собирает результаты провайдера: первичный запрос
// плюс, при бедной выдаче, параллельные расширения по вывескам сетей
func (a *Aggregator) providerCandidates(ctx context.Context, query string, near *geo.Point) []places.Suggestion {
	primary, err := a.searcher.Search(ctx, query, near)
	if err != nil {
		a.logger.Warn("primary search failed, degrading", "query", query, "error", err)
		primary = nil
	}

	if len(primary) >= expansionThreshold {
		return dedup(primary)
	}

	expansions := expandQueries(query)
	if len(expansions) == 0 {
		return dedup(primary)
	}

	// Расширения независимы и выполняются параллельно; результаты
	// присоединяются в порядке таблицы расширений, чтобы итоговый порядок
	// был детерминирован при детерминированных ответах провайдера
	results := make([][]places.Suggestion, len(expansions))
	var wg sync.WaitGroup
	for i, expansion := range expansions {
		wg.Add(1)
		go func(i int, expansion string) {
			defer wg.Done()
			found, err := a.searcher.Search(ctx, expansion, near)
			if err != nil {
				// Отказ одного расширения пропускается, не распространяется
				a.logger.Warn("expansion search failed, skipping",
					"expansion", expansion, "error", err)
				return
			}
			results[i] = found
		}(i, expansion)
	}
	wg.Wait()

	merged := primary
	for _, found := range results {
		merged = append(merged, found...)
	}
	return dedup(merged)
}

// localCandidates ищет кандидатов в курируемом наборе
func (a *Aggregator) localCandidates(query string) []places.Suggestion {
	hits := a.local.Search(query)
	suggestions := make([]places.Suggestion, 0, len(hits))
	for _, hit := range hits {
		suggestion := places.Suggestion{
			ID:      hit.ID,
			Name:    hit.Store.Name,
			Address: joinAddress(hit.Store.Address, hit.Store.City),
		}
		if hit.Store.HasLocation() {
			suggestion.Location = &geo.Point{Lat: hit.Store.Lat, Lon: hit.Store.Lon}
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions
}

// annotate присваивает каждому кандидату метку сети
func (a *Aggregator) annotate(suggestions []places.Suggestion) []Candidate {
	candidates := make([]Candidate, 0, len(suggestions))
	for _, s := range suggestions {
		candidates = append(candidates, Candidate{
			ID:       s.ID,
			Name:     s.Name,
			Address:  s.Address,
			Types:    s.Types,
			Brand:    a.detector.Classify(s.Name, s.Types...),
			Location: s.Location,
		})
	}
	return candidates
}

// dedup убирает дубликаты по идентификатору, сохраняя позицию первого
// вхождения
func dedup(suggestions []places.Suggestion) []places.Suggestion {
	// Вход не трогаем: на попадании в кеш сюда приходит срез,
	// который живет внутри кеша провайдера.
	seen := make(map[string]bool, len(suggestions))
	out := make([]places.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

// rankByDistance устойчиво сортирует кандидатов по удалению от точки
// отсчета. Кандидаты без координат считаются бесконечно далекими и уходят
// в конец, а не выбрасываются.
func rankByDistance(candidates []Candidate, near geo.Point) {
	distance := func(c Candidate) float64 {
		if c.Location == nil {
			return math.Inf(1)
		}
		return geo.DistanceKm(near, *c.Location)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return distance(candidates[i]) < distance(candidates[j])
	})
}

// joinAddress склеивает адрес и город локальной записи
func joinAddress(address, city string) string {
	switch {
	case address == "":
		return city
	case city == "":
		return address
	default:
		return address + ", " + city
	}
}
