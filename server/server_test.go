package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefinder/classification"
	"storefinder/dataset"
	"storefinder/discovery"
	"storefinder/geo"
	"storefinder/internal/config"
	"storefinder/places"
)

type stubSearcher struct {
	results []places.Suggestion
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, bias *geo.Point) ([]places.Suggestion, error) {
	return s.results, s.err
}

type stubDetails struct {
	detail *places.Detail
	err    error
}

func (s *stubDetails) Details(ctx context.Context, id string) (*places.Detail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func newTestServer(t *testing.T, searcher discovery.Searcher, details discovery.DetailsClient) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local := dataset.Default()
	facade := discovery.NewFacade(searcher, details, local, classification.NewBrandDetector(), discovery.FacadeConfig{})
	cfg := &config.Config{Port: "8080", DatabasePath: "test.db", MinQueryLen: 2, MaxOpenConns: 1}

	return New(facade, local, cfg)
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.Greater(t, resp.StoreCount, 0)
}

func TestSuggestRequiresQuery(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/suggest", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestReturnsCandidates(t *testing.T) {
	searcher := &stubSearcher{results: []places.Suggestion{
		{ID: "g1", Name: "Delhaize Uccle", Address: "Rue Vanderkindere 1", Types: []string{"supermarket"}},
	}}
	srv := newTestServer(t, searcher, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/suggest?q=delhaize+uccle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "delhaize uccle", resp.Query)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "g1", resp.Suggestions[0].ID)
	assert.Equal(t, resp.Count, len(resp.Suggestions))
}

func TestSuggestRejectsPartialCoords(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/suggest?q=aldi&lat=50.8", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestRejectsOutOfRangeCoords(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/suggest?q=aldi&lat=99&lon=4.35", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveLocalStore(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	local := dataset.Default()
	hits := local.All()
	require.NotEmpty(t, hits)

	rec := doRequest(t, handler, http.MethodGet, "/api/resolve/"+hits[0].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Place)
	assert.Equal(t, hits[0].ID, resp.Place.ID)
	assert.NotEmpty(t, resp.Place.Brand)
}

func TestResolveUnknownReturns404(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{err: places.ErrNotFound})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/resolve/no-such-place", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

func TestClassifyProduct(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodPost, "/api/classify/product", ClassifyRequest{Name: "Nutella 750g"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pates-a-tartiner", resp.Label)
}

func TestClassifyStore(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodPost, "/api/classify/store", ClassifyRequest{Name: "Carrefour Express Ixelles"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, classification.StoreProximity, resp.Label)
}

func TestClassifyRejectsMissingName(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodPost, "/api/classify/product", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizeHours(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodPost, "/api/hours/normalize", HoursRequest{
		Lines: []string{"Monday: 8:00 AM – 8:00 PM", "Sunday: Closed"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HoursResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "08:00-20:00", resp.Schedule["monday"])
	assert.Equal(t, "Fermé", resp.Schedule["sunday"])
}

func TestDistanceEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/distance?from_lat=50.8503&from_lon=4.3517&to_lat=51.2194&to_lon=4.4025", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DistanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 41.5, resp.DistanceKm, 1.0)
}

func TestDistanceRequiresAllCoords(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	rec := doRequest(t, handler, http.MethodGet, "/api/distance?from_lat=50.8&from_lon=4.35", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubDetails{})
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "test-req-42", rec.Header().Get("X-Request-ID"))
}
