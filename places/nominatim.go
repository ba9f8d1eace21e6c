package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"storefinder/geo"
)

// NominatimProvider адаптер OSM Nominatim. Резервный провайдер без ключа:
// не отдает телефон и часы работы, зато всегда доступен.
// Nominatim требует не более 1 запроса в секунду — лимит зашит в адаптер.
// Флаг доступности атомарный, как у GoogleProvider: экземпляр разделяется
// между горутинами роутера и расширений.
type NominatimProvider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache
	available  atomic.Bool
}

// NominatimConfig конфигурация адаптера Nominatim
type NominatimConfig struct {
	BaseURL string
	Timeout time.Duration
	Cache   *Cache
}

// NewNominatimProvider создает новый адаптер Nominatim
func NewNominatimProvider(config NominatimConfig) *NominatimProvider {
	if config.BaseURL == "" {
		config.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	n := &NominatimProvider{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		cache:   config.Cache,
	}
	n.available.Store(true)
	return n
}

// Name возвращает имя провайдера
func (n *NominatimProvider) Name() string {
	return "nominatim"
}

// Available проверяет доступность провайдера
func (n *NominatimProvider) Available() bool {
	return n.available.Load()
}

// nominatimResult запись ответа Nominatim
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Search выполняет поиск мест через /search
func (n *NominatimProvider) Search(ctx context.Context, query string, bias *geo.Point) ([]Suggestion, error) {
	if n.cache != nil {
		if cached, ok := n.cache.Get(SearchCacheKey(query, bias)); ok {
			return cached, nil
		}
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "jsonv2")
	params.Add("addressdetails", "1")
	params.Add("limit", "10")
	params.Add("countrycodes", "be")
	if bias != nil {
		// Окно ~0.5° вокруг пользователя как мягкое смещение
		params.Add("viewbox", fmt.Sprintf("%.4f,%.4f,%.4f,%.4f",
			bias.Lon-0.25, bias.Lat+0.25, bias.Lon+0.25, bias.Lat-0.25))
	}

	var results []nominatimResult
	if err := n.getJSON(ctx, n.baseURL+"/search?"+params.Encode(), &results); err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, result := range results {
		name := result.Name
		if name == "" {
			name = firstSegment(result.DisplayName)
		}
		suggestion := Suggestion{
			ID:      "osm_" + strconv.FormatInt(result.PlaceID, 10),
			Name:    name,
			Address: result.DisplayName,
			Types:   []string{result.Class, result.Type},
		}
		lat, latErr := strconv.ParseFloat(result.Lat, 64)
		lon, lonErr := strconv.ParseFloat(result.Lon, 64)
		if latErr == nil && lonErr == nil {
			suggestion.Location = &geo.Point{Lat: lat, Lon: lon}
		}
		suggestions = append(suggestions, suggestion)
	}

	if n.cache != nil {
		n.cache.Set(SearchCacheKey(query, bias), suggestions)
	}

	return suggestions, nil
}

// Details возвращает детали места через /details
func (n *NominatimProvider) Details(ctx context.Context, id string) (*Detail, error) {
	placeID, ok := strings.CutPrefix(id, "osm_")
	if !ok {
		// Чужой формат идентификатора — у этого провайдера записи нет
		return nil, ErrNotFound
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("format", "json")
	params.Add("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/details?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "StoreFinder/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.available.Store(false)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		n.available.Store(false)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	var result struct {
		PlaceID     int64  `json:"place_id"`
		Names       map[string]string `json:"names"`
		Centroid    struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"centroid"`
		AddressTags struct {
			City     string `json:"city"`
			Postcode string `json:"postcode"`
			Street   string `json:"street"`
		} `json:"addresstags"`
		LocaleName  string `json:"localname"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	detail := &Detail{
		ID:         id,
		Name:       result.LocaleName,
		City:       result.AddressTags.City,
		PostalCode: result.AddressTags.Postcode,
		Address:    result.AddressTags.Street,
	}
	if name, ok := result.Names["name"]; ok && name != "" {
		detail.Name = name
	}
	if len(result.Centroid.Coordinates) == 2 {
		detail.Location = &geo.Point{
			Lat: result.Centroid.Coordinates[1],
			Lon: result.Centroid.Coordinates[0],
		}
	}

	return detail, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (n *NominatimProvider) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "StoreFinder/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.available.Store(false)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		n.available.Store(false)
		return fmt.Errorf("%w: rate limited", ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		n.available.Store(false)
		return fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// firstSegment возвращает первый фрагмент display_name до запятой
func firstSegment(displayName string) string {
	if idx := strings.Index(displayName, ","); idx > 0 {
		return strings.TrimSpace(displayName[:idx])
	}
	return displayName
}
