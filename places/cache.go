package places

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefinder/geo"
)

// CacheConfig конфигурация кэша ответов провайдеров
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
}

// Cache TTL-кэш результатов поиска. Снимает нагрузку с провайдеров
// при повторяющихся запросах автодополнения.
type Cache struct {
	config  CacheConfig
	entries map[string]*cacheEntry
	mu      sync.RWMutex
	stats   CacheStats
}

type cacheEntry struct {
	suggestions []Suggestion
	timestamp   time.Time
}

// CacheStats статистика кэша
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewCache создает новый кэш. При включенном CleanupInterval запускает
// фоновую очистку устаревших записей.
func NewCache(config CacheConfig) *Cache {
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}

	c := &Cache{
		config:  config,
		entries: make(map[string]*cacheEntry),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go c.cleanupLoop()
	}

	return c
}

// Get возвращает закэшированные результаты поиска
func (c *Cache) Get(key string) ([]Suggestion, bool) {
	if !c.config.Enabled {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || time.Since(entry.timestamp) > c.config.TTL {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry.suggestions, true
}

// Set сохраняет результаты поиска в кэш
func (c *Cache) Set(key string, suggestions []Suggestion) {
	if !c.config.Enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		suggestions: suggestions,
		timestamp:   time.Now(),
	}
	c.stats.Size = len(c.entries)
}

// Stats возвращает копию статистики кэша
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	stats.Size = len(c.entries)
	return stats
}

// cleanupLoop периодически удаляет устаревшие записи
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for key, entry := range c.entries {
			if time.Since(entry.timestamp) > c.config.TTL {
				delete(c.entries, key)
			}
		}
		c.stats.Size = len(c.entries)
		c.mu.Unlock()
	}
}

// SearchCacheKey строит ключ кэша из запроса и смещения к координатам
func SearchCacheKey(query string, bias *geo.Point) string {
	raw := strings.ToLower(strings.TrimSpace(query))
	if bias != nil {
		// Координаты округляются до ~100 м, чтобы соседние позиции
		// пользователя попадали в одну запись кэша
		raw += fmt.Sprintf("|%.3f,%.3f", bias.Lat, bias.Lon)
	}

	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])
}
