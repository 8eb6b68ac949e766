package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ethsmith/csc-manager/internal/csc"
	"github.com/ethsmith/csc-manager/internal/dashboard"
	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/logging"
	"github.com/ethsmith/csc-manager/internal/storage"
)

// redisKeyPrefix namespaces cscmgr's keys in a shared redis.
const redisKeyPrefix = "cscmgr:"

// app is everything a command needs, built from cfg.
type app struct {
	logger *zap.SugaredLogger
	dash   *dashboard.Dashboard

	db      *storage.DB
	closers []func() error
}

// newApp wires the feed source, the cached roster client and the dashboard.
// server selects the info-level logger used by serve.
func newApp(ctx context.Context, server bool) (*app, error) {
	newLogger := logging.New
	if server {
		newLogger = logging.ServerLevel
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	a := &app{logger: logger}

	feedSrc, err := a.feedSource(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	cache, err := a.rosterCache(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	client := csc.NewClient(cfg.CSCEndpoint, cfg.HTTPTimeout)
	a.dash = dashboard.New(feedSrc, csc.NewCachedSource(client, cache, logger), logger)
	return a, nil
}

// feedSource picks the stats feed: a local file, then the Sheets API, then
// the public CSV export.
func (a *app) feedSource(ctx context.Context) (feed.Source, error) {
	switch {
	case cfg.FeedFile != "":
		a.logger.Debugw("Using file feed", "path", cfg.FeedFile)
		return feed.FileSource{Path: cfg.FeedFile}, nil
	case cfg.SheetsURL != "":
		creds, err := os.ReadFile(cfg.SheetsCredentials)
		if err != nil {
			return nil, fmt.Errorf("read sheets credentials: %w", err)
		}
		a.logger.Debugw("Using Sheets API feed", "url", cfg.SheetsURL, "range", cfg.SheetsRange)
		return feed.NewSheetsSource(ctx, creds, cfg.SheetsURL, cfg.SheetsRange)
	default:
		a.logger.Debugw("Using CSV export feed", "url", cfg.FeedURL)
		return feed.NewExportSource(cfg.FeedURL, cfg.HTTPTimeout), nil
	}
}

func (a *app) rosterCache(ctx context.Context) (csc.Cache, error) {
	switch cfg.CacheBackend {
	case csc.BackendMemory:
		return csc.NewMemoryCache(cfg.CacheTTL), nil
	case csc.BackendSQLite:
		db, err := a.storage()
		if err != nil {
			return nil, err
		}
		return db.Cache(cfg.CacheTTL), nil
	case csc.BackendRedis:
		rc, err := csc.NewRedisCache(ctx, cfg.RedisURL, redisKeyPrefix, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc.Close)
		return rc, nil
	default:
		return csc.NopCache{}, nil
	}
}

// storage opens the SQLite file on first use.
func (a *app) storage() (*storage.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db.Close)
	return db, nil
}

// Close releases the database, the redis client and flushes the logger.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warnw("Close failed", "error", err)
		}
	}
	_ = a.logger.Sync()
}

func openDB() (*storage.DB, error) {
	if dir := filepath.Dir(cfg.DB); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := storage.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}
