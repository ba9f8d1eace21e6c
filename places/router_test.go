package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefinder/geo"
)

// mockProvider мок провайдера для тестирования
type mockProvider struct {
	name        string
	available   bool
	searchErr   error
	suggestions []Suggestion
	detail      *Detail
	detailErr   error
	searchCalls int
}

func (m *mockProvider) Name() string    { return m.name }
func (m *mockProvider) Available() bool { return m.available }

func (m *mockProvider) Search(ctx context.Context, query string, bias *geo.Point) ([]Suggestion, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.suggestions, nil
}

func (m *mockProvider) Details(ctx context.Context, id string) (*Detail, error) {
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	return m.detail, nil
}

func TestRouter_SearchFallsBackToNextProvider(t *testing.T) {
	failing := &mockProvider{name: "failing", available: true, searchErr: ErrUnavailable}
	working := &mockProvider{name: "working", available: true, suggestions: []Suggestion{
		{ID: "a", Name: "Delhaize"},
	}}

	router := NewRouter(failing, working)

	suggestions, err := router.Search(context.Background(), "delhaize", nil)
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, 1, failing.searchCalls)
	assert.Equal(t, 1, working.searchCalls)
}

func TestRouter_SearchSkipsUnavailable(t *testing.T) {
	offline := &mockProvider{name: "offline", available: false}
	working := &mockProvider{name: "working", available: true, suggestions: []Suggestion{
		{ID: "a", Name: "Aldi"},
	}}

	router := NewRouter(offline, working)

	_, err := router.Search(context.Background(), "aldi", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, offline.searchCalls)
}

func TestRouter_SearchAllFail(t *testing.T) {
	router := NewRouter(
		&mockProvider{name: "a", available: true, searchErr: errors.New("boom")},
		&mockProvider{name: "b", available: true, searchErr: ErrUnavailable},
	)

	_, err := router.Search(context.Background(), "colruyt", nil)
	assert.Error(t, err)
}

func TestRouter_SearchEmptyResultTriesNext(t *testing.T) {
	empty := &mockProvider{name: "empty", available: true}
	working := &mockProvider{name: "working", available: true, suggestions: []Suggestion{
		{ID: "x", Name: "Lidl"},
	}}

	router := NewRouter(empty, working)

	suggestions, err := router.Search(context.Background(), "lidl", nil)
	require.NoError(t, err)
	assert.Equal(t, "x", suggestions[0].ID)
}

func TestRouter_DetailsNotFoundTriesNext(t *testing.T) {
	missing := &mockProvider{name: "missing", available: true, detailErr: ErrNotFound}
	holding := &mockProvider{name: "holding", available: true, detail: &Detail{
		ID:   "osm_42",
		Name: "Carrefour Market",
	}}

	router := NewRouter(missing, holding)

	detail, err := router.Details(context.Background(), "osm_42")
	require.NoError(t, err)
	assert.Equal(t, "Carrefour Market", detail.Name)
}

func TestRouter_DetailsExhaustedYieldsNotFound(t *testing.T) {
	router := NewRouter(
		&mockProvider{name: "a", available: true, detailErr: ErrNotFound},
		&mockProvider{name: "b", available: true, detailErr: ErrUnavailable},
	)

	_, err := router.Details(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_HitAndExpiry(t *testing.T) {
	cache := NewCache(CacheConfig{Enabled: true, TTL: 50 * time.Millisecond})
	key := SearchCacheKey("delhaize", nil)

	cache.Set(key, []Suggestion{{ID: "a"}})

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].ID)

	time.Sleep(60 * time.Millisecond)
	_, ok = cache.Get(key)
	assert.False(t, ok)
}

func TestCache_DisabledIsNoop(t *testing.T) {
	cache := NewCache(CacheConfig{Enabled: false})
	key := SearchCacheKey("aldi", nil)

	cache.Set(key, []Suggestion{{ID: "a"}})
	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestSearchCacheKey_BiasChangesKey(t *testing.T) {
	plain := SearchCacheKey("lidl", nil)
	biased := SearchCacheKey("lidl", &geo.Point{Lat: 50.85, Lon: 4.35})

	assert.NotEqual(t, plain, biased)
	assert.Equal(t, plain, SearchCacheKey("  LIDL ", nil))
}
