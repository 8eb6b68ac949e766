package csc

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ethsmith/csc-manager/internal/model"
)

const (
	franchisesKey = "csc:franchises"
	playersKey    = "csc:players"
)

// CachedSource is a read-through cache in front of another Source. A cache
// failure is logged and treated as a miss, so callers see the same result
// with or without a working cache.
type CachedSource struct {
	src    Source
	cache  Cache
	logger *zap.SugaredLogger
}

// NewCachedSource wraps src with cache.
func NewCachedSource(src Source, cache Cache, logger *zap.SugaredLogger) *CachedSource {
	return &CachedSource{src: src, cache: cache, logger: logger}
}

func (s *CachedSource) Franchises(ctx context.Context) ([]model.Franchise, error) {
	return readThrough(ctx, s, franchisesKey, s.src.Franchises)
}

func (s *CachedSource) Players(ctx context.Context) ([]model.CscPlayer, error) {
	return readThrough(ctx, s, playersKey, s.src.Players)
}

// Invalidate drops every cached payload.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

func readThrough[T any](ctx context.Context, s *CachedSource, key string, fetch func(context.Context) (T, error)) (T, error) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnw("Cache read failed", "key", key, "error", err)
	}
	if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			s.logger.Debugw("Cache hit", "key", key)
			return v, nil
		}
		s.logger.Warnw("Discarding undecodable cache entry", "key", key)
	}

	s.logger.Debugw("Cache miss", "key", key)
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	raw, err = json.Marshal(v)
	if err == nil {
		err = s.cache.Set(ctx, key, raw)
	}
	if err != nil {
		s.logger.Warnw("Cache write failed", "key", key, "error", err)
	}
	return v, nil
}
