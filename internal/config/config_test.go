package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethsmith/csc-manager/internal/csc"
	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

// isolate points the config search at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	c, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, feed.DefaultExportURL, c.FeedURL)
	assert.Equal(t, csc.DefaultEndpoint, c.CSCEndpoint)
	assert.Equal(t, csc.BackendSQLite, c.CacheBackend)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Equal(t, ":8080", c.Listen)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.Equal(t, model.ModeRegulation, c.DefaultMode())
	assert.Equal(t, "Stats!A:FD", c.SheetsRange)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("CSCMGR_CACHE_TTL", "90s")
	t.Setenv("CSCMGR_CACHE_BACKEND", "Redis")
	t.Setenv("CSCMGR_MODE", "scrim")

	c, err := Load(NewViper(""))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, c.CacheTTL)
	assert.Equal(t, csc.BackendRedis, c.CacheBackend)
	assert.Equal(t, model.ModeScrim, c.DefaultMode())
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yaml := "feed-file: stats.csv.zst\ncache-backend: none\nlisten: \":9000\"\ncors-origins:\n  - https://example.org\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	c, err := Load(NewViper(path))
	require.NoError(t, err)
	assert.Equal(t, "stats.csv.zst", c.FeedFile)
	assert.Equal(t, csc.BackendNone, c.CacheBackend)
	assert.Equal(t, ":9000", c.Listen)
	assert.Equal(t, []string{"https://example.org"}, c.CORSOrigins)
}

func TestLoad_SearchesWorkingDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".cscmgr.yaml", []byte("listen: \":7000\"\n"), 0o644))
	c, err := Load(NewViper(""))
	require.NoError(t, err)
	assert.Equal(t, ":7000", c.Listen)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			FeedURL:      feed.DefaultExportURL,
			CacheBackend: "memory",
			CacheTTL:     time.Minute,
			HTTPTimeout:  time.Second,
		}
	}
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad backend", func(c *Config) { c.CacheBackend = "memcached" }},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }},
		{"negative timeout", func(c *Config) { c.HTTPTimeout = -time.Second }},
		{"bad mode", func(c *Config) { c.Mode = "ranked" }},
		{"sheets without creds", func(c *Config) { c.SheetsURL = "https://docs.google.com/spreadsheets/d/x" }},
		{"no feed", func(c *Config) { c.FeedURL = "" }},
	}
	c := valid()
	require.NoError(t, c.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
