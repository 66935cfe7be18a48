package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DocStorePostgres = "postgres"
	DocStoreSQLite   = "sqlite"
	DocStoreMemory   = "memory"

	DraftCacheMemory = "memory"
	DraftCacheRedis  = "redis"
)

type Config struct {
	Host        string
	Port        int
	MetricsPort int `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// document store
	DocStoreDriver string `toml:"doc_store_driver"`
	DBHost         string `toml:"db_host"`
	DBPort         string `toml:"db_port"`
	DBName         string `toml:"db_name"`
	SQLitePath     string `toml:"sqlite_path"`
	// redis (sessions, rate limiting, shared drafts)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// drafts
	DraftCache       string `toml:"draft_cache"`
	DraftCacheSizeMB int    `toml:"draft_cache_size_mb"`
	// gymstats
	HistoryTimezone string `toml:"history_timezone"`
	WeekdayLocale   string `toml:"weekday_locale"`
	// http
	AllowedOrigins        []string `toml:"allowed_origins"`
	LoginRateLimitPerMin  int      `toml:"login_rate_limit_per_min"`
	CommitRateLimitPerMin int      `toml:"commit_rate_limit_per_min"`
	// telemetry
	SentryEnabled bool `toml:"sentry_enabled"`
	OtelEnabled   bool `toml:"otel_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s is missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.DocStoreDriver == "" {
		c.DocStoreDriver = DocStorePostgres
	}
	if c.DraftCache == "" {
		c.DraftCache = DraftCacheMemory
	}
	if c.DraftCacheSizeMB <= 0 {
		c.DraftCacheSizeMB = 16
	}
	if c.HistoryTimezone == "" {
		c.HistoryTimezone = "Local"
	}
	if c.WeekdayLocale == "" {
		c.WeekdayLocale = "es"
	}
	if c.LoginRateLimitPerMin <= 0 {
		c.LoginRateLimitPerMin = 10
	}
	if c.CommitRateLimitPerMin <= 0 {
		c.CommitRateLimitPerMin = 60
	}
}

func (c *Config) validate() error {
	switch c.DocStoreDriver {
	case DocStorePostgres, DocStoreSQLite, DocStoreMemory:
	default:
		return fmt.Errorf("unknown doc store driver: %s", c.DocStoreDriver)
	}
	if c.DocStoreDriver == DocStoreSQLite && c.SQLitePath == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite doc store")
	}

	switch c.DraftCache {
	case DraftCacheMemory, DraftCacheRedis:
	default:
		return fmt.Errorf("unknown draft cache: %s", c.DraftCache)
	}

	return nil
}
