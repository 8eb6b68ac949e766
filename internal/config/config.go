// Package config resolves cscmgr settings from flags, environment, the
// optional .cscmgr.yaml file and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ethsmith/csc-manager/internal/csc"
	"github.com/ethsmith/csc-manager/internal/feed"
	"github.com/ethsmith/csc-manager/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. CSCMGR_CACHE_TTL.
const EnvPrefix = "CSCMGR"

// Config holds the validated settings.
type Config struct {
	DB string `mapstructure:"db"`

	FeedURL           string `mapstructure:"feed-url"`
	FeedFile          string `mapstructure:"feed-file"`
	SheetsCredentials string `mapstructure:"sheets-credentials"`
	SheetsURL         string `mapstructure:"sheets-url"`
	SheetsRange       string `mapstructure:"sheets-range"`

	CSCEndpoint  string        `mapstructure:"csc-endpoint"`
	CacheBackend string        `mapstructure:"cache-backend"`
	CacheTTL     time.Duration `mapstructure:"cache-ttl"`
	RedisURL     string        `mapstructure:"redis-url"`

	HTTPTimeout time.Duration `mapstructure:"http-timeout"`
	Listen      string        `mapstructure:"listen"`
	CORSOrigins []string      `mapstructure:"cors-origins"`
	Mode        string        `mapstructure:"mode"`
	Verbose     bool          `mapstructure:"verbose"`
}

// DefaultDBPath is ~/.cscmgr/cscmgr.db, or ./cscmgr.db without a home directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cscmgr.db"
	}
	return filepath.Join(home, ".cscmgr", "cscmgr.db")
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("db", DefaultDBPath())
	v.SetDefault("feed-url", feed.DefaultExportURL)
	v.SetDefault("feed-file", "")
	v.SetDefault("sheets-credentials", "")
	v.SetDefault("sheets-url", "")
	v.SetDefault("sheets-range", "Stats!A:FD")
	v.SetDefault("csc-endpoint", csc.DefaultEndpoint)
	v.SetDefault("cache-backend", csc.BackendSQLite)
	v.SetDefault("cache-ttl", csc.DefaultTTL)
	v.SetDefault("redis-url", "redis://localhost:6379/0")
	v.SetDefault("http-timeout", 30*time.Second)
	v.SetDefault("listen", ":8080")
	v.SetDefault("cors-origins", []string{"*"})
	v.SetDefault("mode", string(model.ModeRegulation))
	v.SetDefault("verbose", false)
}

// NewViper returns a viper instance with defaults and environment binding.
// configFile, when set, replaces the .cscmgr.yaml search.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".cscmgr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the config file if there is one, then unmarshals and validates
// everything v knows about.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate normalises and checks the settings.
func (c *Config) Validate() error {
	c.CacheBackend = csc.NormalizeBackend(c.CacheBackend)
	switch c.CacheBackend {
	case csc.BackendMemory, csc.BackendSQLite, csc.BackendRedis, csc.BackendNone:
	default:
		return fmt.Errorf("invalid cache-backend %q (want memory, sqlite, redis or none)", c.CacheBackend)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache-ttl must be positive, got %s", c.CacheTTL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http-timeout must be positive, got %s", c.HTTPTimeout)
	}
	if _, err := model.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.SheetsURL != "" && c.SheetsCredentials == "" {
		return fmt.Errorf("sheets-url requires sheets-credentials")
	}
	if c.FeedFile == "" && c.SheetsURL == "" && c.FeedURL == "" {
		return fmt.Errorf("no stats feed configured: set feed-url, feed-file or sheets-url")
	}
	return nil
}

// DefaultMode returns the configured mode.
func (c *Config) DefaultMode() model.Mode {
	m, _ := model.ParseMode(c.Mode)
	return m
}
