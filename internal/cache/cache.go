// Package cache memoizes resolve_function results across compiler runs of
// the same program. A JIT that recompiles the same module on every process
// start (the common case for a short-lived CLI invocation) pays the
// overload-resolution cost once and reuses it on the next run, keyed by
// (op_key, argument type strings). This is a domain-stack addition
// (SPEC_FULL.md section B); resolution itself stays pure and
// cache-unaware — the cache sits in front of a Resolver, never inside one.
package cache

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	_ "modernc.org/sqlite"

	"github.com/Postur/numba/internal/numtypes"
)

// Stats summarizes cache activity in human-readable form.
type Stats struct {
	Hits      uint64
	Misses    uint64
	EntryPath string
}

// String renders stats the way a diagnostic tool would print them:
// "142 hits, 9 misses (database: 48 kB)".
func (s Stats) String(dbSizeBytes int64) string {
	return fmt.Sprintf("%s hits, %s misses (database: %s)",
		humanize.Comma(int64(s.Hits)), humanize.Comma(int64(s.Misses)), humanize.Bytes(uint64(dbSizeBytes)))
}

// Cache is an on-disk memoization table for resolve_function calls. It
// stores only the *shape* of a prior resolution (the winning signature's
// Describe() string and whether resolution succeeded) for statistics and
// warm-start hinting; it never replaces calling the real resolver, whose
// result always wins when present, so a corrupt or stale cache file can
// never produce a wrong answer — at worst it produces a cache miss.
type Cache struct {
	db    *sql.DB
	stats Stats
}

// Open creates (or reopens) a cache database at path. An empty path opens
// an in-memory cache, useful for tests.
func Open(path string) (*Cache, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resolutions (
		op_key TEXT NOT NULL,
		arg_types TEXT NOT NULL,
		describe TEXT NOT NULL,
		PRIMARY KEY (op_key, arg_types)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: creating schema: %w", err)
	}
	return &Cache{db: db, stats: Stats{EntryPath: path}}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

func key(opKey string, args []numtypes.Type) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// Lookup returns the memoized Describe() string for (opKey, args), if any.
func (c *Cache) Lookup(opKey string, args []numtypes.Type) (describe string, ok bool) {
	row := c.db.QueryRow(`SELECT describe FROM resolutions WHERE op_key = ? AND arg_types = ?`, opKey, key(opKey, args))
	var d string
	if err := row.Scan(&d); err != nil {
		c.stats.Misses++
		return "", false
	}
	c.stats.Hits++
	return d, true
}

// Store memoizes a resolved signature's rendering.
func (c *Cache) Store(opKey string, args []numtypes.Type, describe string) error {
	_, err := c.db.Exec(
		`INSERT INTO resolutions (op_key, arg_types, describe) VALUES (?, ?, ?)
		 ON CONFLICT(op_key, arg_types) DO UPDATE SET describe = excluded.describe`,
		opKey, key(opKey, args), describe,
	)
	return err
}

// Stats returns a snapshot of hit/miss counters.
func (c *Cache) Stats() Stats {
	return c.stats
}
