// Package database хранит курируемый набор магазинов и кэш разрешенных
// мест в локальной базе SQLite.
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"storefinder/dataset"
)

// Config конфигурация подключения к БД
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// StoreDB обертка для работы с базой данных движка
type StoreDB struct {
	conn *sql.DB
}

// Open открывает базу по пути и применяет миграции.
// Файл создается при отсутствии.
func Open(path string, config Config) (*StoreDB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	db := &StoreDB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Close закрывает подключение к базе
func (db *StoreDB) Close() error {
	return db.conn.Close()
}

// migrate создает таблицы при их отсутствии
func (db *StoreDB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			brand TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			postal_code TEXT NOT NULL DEFAULT '',
			lat REAL NOT NULL DEFAULT 0,
			lon REAL NOT NULL DEFAULT 0,
			phone TEXT NOT NULL DEFAULT '',
			hours_json TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stores_city ON stores(city)`,
		`CREATE TABLE IF NOT EXISTS resolve_cache (
			place_id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			cached_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// LoadStores загружает все записи курируемого набора в порядке вставки
func (db *StoreDB) LoadStores() ([]dataset.Store, error) {
	rows, err := db.conn.Query(`
		SELECT name, brand, address, city, postal_code, lat, lon, phone, hours_json
		FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []dataset.Store
	for rows.Next() {
		var store dataset.Store
		var hoursJSON string
		if err := rows.Scan(&store.Name, &store.Brand, &store.Address, &store.City,
			&store.PostalCode, &store.Lat, &store.Lon, &store.Phone, &hoursJSON); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		if hoursJSON != "" && hoursJSON != "{}" {
			if err := json.Unmarshal([]byte(hoursJSON), &store.Hours); err != nil {
				// Битые часы не валят загрузку всего набора
				store.Hours = nil
			}
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}

// ReplaceStores атомарно замещает весь курируемый набор
func (db *StoreDB) ReplaceStores(stores []dataset.Store) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stores`); err != nil {
		return fmt.Errorf("failed to clear stores: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stores (name, brand, address, city, postal_code, lat, lon, phone, hours_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, store := range stores {
		hoursJSON := "{}"
		if len(store.Hours) > 0 {
			data, err := json.Marshal(store.Hours)
			if err != nil {
				return fmt.Errorf("failed to marshal hours for %q: %w", store.Name, err)
			}
			hoursJSON = string(data)
		}

		if _, err := stmt.Exec(store.Name, store.Brand, store.Address, store.City,
			store.PostalCode, store.Lat, store.Lon, store.Phone, hoursJSON); err != nil {
			return fmt.Errorf("failed to insert store %q: %w", store.Name, err)
		}
	}

	return tx.Commit()
}

// CountStores возвращает число записей курируемого набора
func (db *StoreDB) CountStores() (int, error) {
	var count int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM stores`).Scan(&count)
	return count, err
}

// GetCachedResolve возвращает закэшированный JSON разрешенного места,
// если запись моложе ttl
func (db *StoreDB) GetCachedResolve(placeID string, ttl time.Duration) (string, bool) {
	var payload string
	var cachedAt time.Time
	err := db.conn.QueryRow(`
		SELECT payload, cached_at FROM resolve_cache WHERE place_id = ?`,
		placeID).Scan(&payload, &cachedAt)
	if err != nil {
		return "", false
	}
	if ttl > 0 && time.Since(cachedAt) > ttl {
		return "", false
	}
	return payload, true
}

// PutCachedResolve сохраняет JSON разрешенного места в кэш
func (db *StoreDB) PutCachedResolve(placeID, payload string) error {
	_, err := db.conn.Exec(`
		INSERT INTO resolve_cache (place_id, payload, cached_at)
		VALUES (?, ?, ?)
		ON CONFLICT(place_id) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		placeID, payload, time.Now().UTC())
	return err
}

// PruneResolveCache удаляет записи кэша старше ttl
func (db *StoreDB) PruneResolveCache(ttl time.Duration) (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM resolve_cache WHERE cached_at < ?`,
		time.Now().UTC().Add(-ttl))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
