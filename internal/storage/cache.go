package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Cache is a TTL cache over the cache_entries table. It satisfies the roster
// graph cache interface and survives restarts, so repeated CLI runs within the
// TTL skip the network.
type Cache struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// Cache returns a cache backed by this database with the given TTL.
func (db *DB) Cache(ttl time.Duration) *Cache {
	return &Cache{db: db, ttl: ttl, now: time.Now}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var storedAt int64
	err := c.db.conn.QueryRowContext(ctx,
		"SELECT value, stored_at FROM cache_entries WHERE key = ?", key).Scan(&value, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if c.now().Sub(time.UnixMilli(storedAt)) >= c.ttl {
		return nil, false, nil
	}
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache_entries(key, value, stored_at) VALUES (?, ?, ?)",
		key, value, c.now().UnixMilli())
	return err
}

// Invalidate deletes every cached entry.
func (c *Cache) Invalidate(ctx context.Context) error {
	_, err := c.db.conn.ExecContext(ctx, "DELETE FROM cache_entries")
	return err
}
