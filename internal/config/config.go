// Package config загружает конфигурацию движка из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// База данных
	DatabasePath    string        `json:"database_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Поиск
	MinQueryLen int `json:"min_query_len"`

	// Провайдеры мест
	Google    GoogleConfig    `json:"google"`
	Nominatim NominatimConfig `json:"nominatim"`

	// Кэши
	PlacesCacheTTL  time.Duration `json:"places_cache_ttl"`
	ResolveCacheTTL time.Duration `json:"resolve_cache_ttl"`
}

// GoogleConfig конфигурация провайдера Google Places
type GoogleConfig struct {
	APIKey    string        `json:"api_key"`
	BaseURL   string        `json:"base_url"`
	Timeout   time.Duration `json:"timeout"`
	RateLimit time.Duration `json:"rate_limit"`
	Enabled   bool          `json:"enabled"`
}

// NominatimConfig конфигурация провайдера Nominatim
type NominatimConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
	Enabled bool          `json:"enabled"`
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	config := &Config{
		Port: getEnv("SERVER_PORT", "8080"),

		DatabasePath:    getEnv("DATABASE_PATH", "storefinder.db"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		MinQueryLen: getEnvInt("MIN_QUERY_LEN", 2),

		Google: GoogleConfig{
			APIKey:    os.Getenv("GOOGLE_PLACES_API_KEY"),
			BaseURL:   getEnv("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			Timeout:   getEnvDuration("GOOGLE_PLACES_TIMEOUT", 10*time.Second),
			RateLimit: getEnvDuration("GOOGLE_PLACES_RATE_LIMIT", 100*time.Millisecond),
			Enabled:   getEnv("GOOGLE_PLACES_ENABLED", "true") == "true",
		},
		Nominatim: NominatimConfig{
			BaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			Timeout: getEnvDuration("NOMINATIM_TIMEOUT", 10*time.Second),
			Enabled: getEnv("NOMINATIM_ENABLED", "true") == "true",
		},

		PlacesCacheTTL:  getEnvDuration("PLACES_CACHE_TTL", 5*time.Minute),
		ResolveCacheTTL: getEnvDuration("RESOLVE_CACHE_TTL", 24*time.Hour),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.MinQueryLen < 1 || c.MinQueryLen > 10 {
		return fmt.Errorf("min query length must be in [1,10], got %d", c.MinQueryLen)
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max open connections must be positive")
	}
	return nil
}

// getEnv возвращает переменную окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt возвращает целочисленную переменную окружения
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration возвращает переменную окружения-длительность
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
