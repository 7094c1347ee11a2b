package fetchcache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobradar/jobradar/internal/model"
)

// SQLiteCache persists fetch results in a SQLite database so the cache
// survives process restarts. One-shot CLI runs get the same TTL memoization
// a long-lived process gets from MemoryCache.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLiteCache opens (or creates) a SQLite database at dbPath and ensures
// the fetch_cache table exists.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite cache: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS fetch_cache (
		source     TEXT NOT NULL,
		query      TEXT NOT NULL,
		jobs       BLOB NOT NULL,
		expires_at INTEGER NOT NULL,
		PRIMARY KEY (source, query)
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating fetch_cache table: %w", err)
	}

	return &SQLiteCache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached jobs for (source, query) if present and unexpired.
// Expired rows are deleted on access. Storage errors degrade to a cache miss.
func (c *SQLiteCache) Get(source, query string) ([]model.Job, bool) {
	var blob []byte
	var expiresAt int64
	err := c.db.QueryRow(
		`SELECT jobs, expires_at FROM fetch_cache WHERE source = ? AND query = ?`,
		source, query,
	).Scan(&blob, &expiresAt)
	if err != nil {
		return nil, false
	}

	if c.now().Unix() > expiresAt {
		c.db.Exec(`DELETE FROM fetch_cache WHERE source = ? AND query = ?`, source, query)
		return nil, false
	}

	var jobs []model.Job
	if err := json.Unmarshal(blob, &jobs); err != nil {
		return nil, false
	}
	return jobs, true
}

// Set stores jobs for (source, query), replacing any previous entry.
func (c *SQLiteCache) Set(source, query string, jobs []model.Job) {
	blob, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	c.db.Exec(
		`INSERT OR REPLACE INTO fetch_cache (source, query, jobs, expires_at) VALUES (?, ?, ?, ?)`,
		source, query, blob, c.now().Add(c.ttl).Unix(),
	)
}

// Clear evicts every entry immediately.
func (c *SQLiteCache) Clear() {
	c.db.Exec(`DELETE FROM fetch_cache`)
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
