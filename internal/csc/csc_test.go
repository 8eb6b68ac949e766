package csc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ethsmith/csc-manager/internal/model"
)

const franchisesPayload = `{"data":{"franchises":[{
  "name":"Dragons","prefix":"DRG","logo":{"name":"drg.png"},"gm":{"name":"Gm"},"agms":[{"name":"Agm"}],
  "teams":[{"id":"t1","name":"Wyrms","captain":{"steam64Id":"1"},"tier":{"name":"Contender","mmrCap":4000},
    "players":[{"id":"p1","name":"A","discordId":"d1","steam64Id":"1","mmr":900}]}]}]}}`

const playersPayload = `{"data":{"players":[
  {"id":"p1","steam64Id":"1","name":"A","discordId":"d1","faceitName":null,"mmr":900,"avatarUrl":null,
   "contractDuration":2,"tier":{"name":"Contender"},"team":{"name":"Wyrms","franchise":{"name":"Dragons","prefix":"DRG"}},"type":"SIGNED"},
  {"id":"p2","steam64Id":"2","name":"B","discordId":"d2","mmr":700,"contractDuration":0,"tier":{"name":"Contender"},"team":null,"type":"FREE_AGENT"}]}}`

// graphQLServer answers the franchises and players queries and counts calls.
func graphQLServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var req graphQLRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		switch {
		case strings.Contains(req.Query, "franchises"):
			io.WriteString(w, franchisesPayload)
		case strings.Contains(req.Query, "players"):
			io.WriteString(w, playersPayload)
		default:
			http.Error(w, "unknown query", http.StatusBadRequest)
		}
	}))
}

func TestClient_Franchises(t *testing.T) {
	var calls int32
	srv := graphQLServer(t, &calls)
	defer srv.Close()

	fr, err := NewClient(srv.URL, 5*time.Second).Franchises(context.Background())
	require.NoError(t, err)
	require.Len(t, fr, 1)
	assert.Equal(t, "DRG", fr[0].Prefix)
	require.Len(t, fr[0].Teams, 1)
	team := fr[0].Teams[0]
	assert.Equal(t, "1", team.CaptainID())
	assert.Equal(t, 4000, team.Tier.MMRCap)
	assert.Equal(t, 900, team.RosterMMR())
}

func TestClient_Players(t *testing.T) {
	var calls int32
	srv := graphQLServer(t, &calls)
	defer srv.Close()

	ps, err := NewClient(srv.URL, 5*time.Second).Players(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Nil(t, ps[0].FaceitName)
	assert.Equal(t, "Dragons", ps[0].Team.Franchise.Name)
	assert.Nil(t, ps[1].Team)
	assert.True(t, ps[1].Type.IsFreeAgent())
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http status", http.StatusBadGateway, "bad gateway", "HTTP 502"},
		{"graphql errors", http.StatusOK, `{"data":null,"errors":[{"message":"boom"}]}`, "boom"},
		{"empty data", http.StatusOK, `{"data":null}`, "empty data"},
		{"bad json", http.StatusOK, `{`, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 5*time.Second).Franchises(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10 * time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(v))

	now = now.Add(9*time.Minute + 59*time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.True(t, ok, "entry should still be fresh")

	now = now.Add(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok, "entry should expire at the TTL")
}

func TestMemoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)
	require.NoError(t, c.Set(ctx, "a", []byte("1")))
	require.NoError(t, c.Invalidate(ctx))
	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestCachedSource_ReadThrough(t *testing.T) {
	var calls int32
	srv := graphQLServer(t, &calls)
	defer srv.Close()

	ctx := context.Background()
	src := NewCachedSource(NewClient(srv.URL, 5*time.Second), NewMemoryCache(time.Hour), zap.NewNop().Sugar())

	first, err := src.Franchises(ctx)
	require.NoError(t, err)
	second, err := src.Franchises(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "hit and fresh fetch must be indistinguishable")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	_, err = src.Players(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	require.NoError(t, src.Invalidate(ctx))
	_, err = src.Franchises(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestCachedSource_NopCacheAlwaysFetches(t *testing.T) {
	var calls int32
	srv := graphQLServer(t, &calls)
	defer srv.Close()

	src := NewCachedSource(NewClient(srv.URL, 5*time.Second), NopCache{}, zap.NewNop().Sugar())
	for i := 0; i < 3; i++ {
		_, err := src.Players(context.Background())
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}
func (brokenCache) Set(context.Context, string, []byte) error { return errors.New("cache down") }
func (brokenCache) Invalidate(context.Context) error         { return errors.New("cache down") }

func TestCachedSource_CacheFailureFallsThrough(t *testing.T) {
	var calls int32
	srv := graphQLServer(t, &calls)
	defer srv.Close()

	src := NewCachedSource(NewClient(srv.URL, 5*time.Second), brokenCache{}, zap.NewNop().Sugar())
	ps, err := src.Players(context.Background())
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

type failingSource struct{}

func (failingSource) Franchises(context.Context) ([]model.Franchise, error) {
	return nil, errors.New("offline")
}
func (failingSource) Players(context.Context) ([]model.CscPlayer, error) {
	return nil, errors.New("offline")
}

func TestCachedSource_FetchErrorNotCached(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)
	src := NewCachedSource(failingSource{}, cache, zap.NewNop().Sugar())
	_, err := src.Franchises(ctx)
	require.Error(t, err)
	_, ok, _ := cache.Get(ctx, franchisesKey)
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("CSCMGR_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CSCMGR_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, url, "cscmgr-test:", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(v))

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNormalizeBackend(t *testing.T) {
	assert.Equal(t, BackendMemory, NormalizeBackend(""))
	assert.Equal(t, BackendRedis, NormalizeBackend(" Redis "))
}
