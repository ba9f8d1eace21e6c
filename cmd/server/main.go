// @title StoreFinder API
// @version 1.0
// @description Движок поиска и нормализации магазинов: подсказки, разрешение кандидатов, классификация товаров и сетей, нормализация расписаний.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefinder/classification"
	"storefinder/database"
	"storefinder/dataset"
	"storefinder/discovery"
	"storefinder/internal/config"
	"storefinder/places"
	"storefinder/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	setupLogger(cfg.LogLevel)
	slog.Info("starting storefinder", "port", cfg.Port)

	// База данных: хранилище магазинов и кэш разрешенных мест
	db, err := database.Open(cfg.DatabasePath, database.Config{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()

	// Локальный набор: из БД если заполнена, иначе встроенный
	local := loadDataset(db)
	slog.Info("local dataset loaded", "stores", local.Len())

	// Общий кэш поисковых ответов провайдеров
	searchCache := places.NewCache(places.CacheConfig{
		Enabled:         cfg.PlacesCacheTTL > 0,
		TTL:             cfg.PlacesCacheTTL,
		CleanupInterval: 10 * time.Minute,
	})

	// Провайдеры мест с упорядоченным fallback
	var providers []places.Provider
	if cfg.Google.Enabled && cfg.Google.APIKey != "" {
		providers = append(providers, places.NewGoogleProvider(places.GoogleConfig{
			APIKey:    cfg.Google.APIKey,
			BaseURL:   cfg.Google.BaseURL,
			Timeout:   cfg.Google.Timeout,
			RateLimit: cfg.Google.RateLimit,
			Cache:     searchCache,
		}))
	}
	if cfg.Nominatim.Enabled {
		providers = append(providers, places.NewNominatimProvider(places.NominatimConfig{
			BaseURL: cfg.Nominatim.BaseURL,
			Timeout: cfg.Nominatim.Timeout,
			Cache:   searchCache,
		}))
	}
	router := places.NewRouter(providers...)
	slog.Info("place providers configured", "count", len(providers))

	// Фасад движка
	facade := discovery.NewFacade(router, router, local, classification.NewBrandDetector(), discovery.FacadeConfig{
		Aggregator: discovery.AggregatorConfig{MinQueryLen: cfg.MinQueryLen},
		Cache:      db,
		CacheTTL:   cfg.ResolveCacheTTL,
	})

	srv := server.New(facade, local, cfg)

	// Запуск с graceful shutdown по сигналу
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	case sig := <-sigChan:
		slog.Info("signal received, shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Ошибка остановки сервера: %v", err)
		}
	}
}

// loadDataset загружает набор магазинов из БД, при пустой БД
// используется встроенный набор
func loadDataset(db *database.StoreDB) *dataset.Dataset {
	count, err := db.CountStores()
	if err != nil || count == 0 {
		return dataset.Default()
	}

	stores, err := db.LoadStores()
	if err != nil {
		slog.Warn("failed to load stores from database, using builtin dataset", "error", err)
		return dataset.Default()
	}
	return dataset.New(stores)
}

// setupLogger настраивает глобальный slog логгер
func setupLogger(level string) {
	var slogLevel slog.Level
	switch level {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}
