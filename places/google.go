package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"storefinder/geo"
)

// GoogleProvider адаптер Google Places API (Text Search + Place Details).
// Флаг доступности атомарный: роутер и параллельные расширения запросов
// дергают один экземпляр из нескольких горутин.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache
	available  atomic.Bool
}

// GoogleConfig конфигурация адаптера Google Places
type GoogleConfig struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	RateLimit time.Duration
	Cache     *Cache
}

// NewGoogleProvider создает новый адаптер Google Places
func NewGoogleProvider(config GoogleConfig) *GoogleProvider {
	if config.BaseURL == "" {
		config.BaseURL = "https://maps.googleapis.com/maps/api/place"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 100 * time.Millisecond
	}

	g := &GoogleProvider{
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(config.RateLimit), 1),
		cache:   config.Cache,
	}
	g.available.Store(config.APIKey != "")
	return g
}

// Name возвращает имя провайдера
func (g *GoogleProvider) Name() string {
	return "google_places"
}

// Available проверяет доступность провайдера
func (g *GoogleProvider) Available() bool {
	return g.available.Load() && g.apiKey != ""
}

// googleSearchResponse ответ Text Search API
type googleSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// googleDetailsResponse ответ Place Details API
type googleDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID           string `json:"place_id"`
		Name              string `json:"name"`
		FormattedAddress  string `json:"formatted_address"`
		FormattedPhone    string `json:"formatted_phone_number"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		OpeningHours struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
}

// Search выполняет текстовый поиск мест
func (g *GoogleProvider) Search(ctx context.Context, query string, bias *geo.Point) ([]Suggestion, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}

	if g.cache != nil {
		if cached, ok := g.cache.Get(SearchCacheKey(query, bias)); ok {
			return cached, nil
		}
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("key", g.apiKey)
	if bias != nil {
		params.Add("location", fmt.Sprintf("%.6f,%.6f", bias.Lat, bias.Lon))
		params.Add("radius", "25000")
	}

	var response googleSearchResponse
	if err := g.getJSON(ctx, g.baseURL+"/textsearch/json?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	if response.Status == "REQUEST_DENIED" || response.Status == "OVER_QUERY_LIMIT" {
		g.available.Store(false)
		return nil, fmt.Errorf("%w: google status %s", ErrUnavailable, response.Status)
	}

	suggestions := make([]Suggestion, 0, len(response.Results))
	for _, result := range response.Results {
		suggestion := Suggestion{
			ID:      result.PlaceID,
			Name:    result.Name,
			Address: result.FormattedAddress,
			Types:   result.Types,
		}
		if result.Geometry.Location.Lat != 0 || result.Geometry.Location.Lng != 0 {
			suggestion.Location = &geo.Point{
				Lat: result.Geometry.Location.Lat,
				Lon: result.Geometry.Location.Lng,
			}
		}
		suggestions = append(suggestions, suggestion)
	}

	if g.cache != nil {
		g.cache.Set(SearchCacheKey(query, bias), suggestions)
	}

	return suggestions, nil
}

// Details возвращает детали места по place_id
func (g *GoogleProvider) Details(ctx context.Context, id string) (*Detail, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	params := url.Values{}
	params.Add("place_id", id)
	params.Add("fields", "place_id,name,formatted_address,address_components,geometry,formatted_phone_number,opening_hours")
	params.Add("key", g.apiKey)

	var response googleDetailsResponse
	if err := g.getJSON(ctx, g.baseURL+"/details/json?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	switch response.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, ErrNotFound
	case "REQUEST_DENIED", "OVER_QUERY_LIMIT":
		g.available.Store(false)
		return nil, fmt.Errorf("%w: google status %s", ErrUnavailable, response.Status)
	default:
		return nil, fmt.Errorf("%w: google status %s", ErrUnavailable, response.Status)
	}

	detail := &Detail{
		ID:      response.Result.PlaceID,
		Name:    response.Result.Name,
		Address: response.Result.FormattedAddress,
		Phone:   response.Result.FormattedPhone,
		Location: &geo.Point{
			Lat: response.Result.Geometry.Location.Lat,
			Lon: response.Result.Geometry.Location.Lng,
		},
		WeekdayText: response.Result.OpeningHours.WeekdayText,
	}

	for _, component := range response.Result.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				detail.City = component.LongName
			case "postal_code":
				detail.PostalCode = component.LongName
			}
		}
	}

	return detail, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (g *GoogleProvider) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "StoreFinder/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.available.Store(false)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		g.available.Store(false)
		return fmt.Errorf("%w: authentication failed", ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		g.available.Store(false)
		return fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
