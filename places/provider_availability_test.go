package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Параллельные Search и Available на одном экземпляре: расширения
// запросов и обработчики сервера разделяют провайдера между горутинами,
// флаг доступности обязан переживать гонку записи и чтения.
func TestGoogleProvider_ConcurrentFailureTogglesAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewGoogleProvider(GoogleConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		RateLimit: 1, // наносекунда, лимитер не мешает параллелизму
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = provider.Search(context.Background(), "delhaize", nil)
			_ = provider.Available()
		}()
	}
	wg.Wait()

	assert.False(t, provider.Available(), "transport failure must mark the provider unavailable")
}

func TestNominatimProvider_ConcurrentFailureTogglesAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewNominatimProvider(NominatimConfig{BaseURL: srv.URL})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = provider.Search(context.Background(), "delhaize", nil)
			_ = provider.Available()
		}()
	}
	wg.Wait()

	assert.False(t, provider.Available())
}
