package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var DefaultTrackedLifts = []string{"Bench Press", "Squat", "Deadlift"}

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// browser origins allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// domain
	WeekStartDay         string   `toml:"week_start_day"`
	TrackedLifts         []string `toml:"tracked_lifts"`
	FeedDefaultPageSize  int      `toml:"feed_default_page_size"`
	FeedMaxPageSize      int      `toml:"feed_max_page_size"`
	ExerciseCacheSizeMB  int      `toml:"exercise_cache_size_mb"`
	ExerciseCacheTTLSecs int      `toml:"exercise_cache_ttl_secs"`
	SessionTTLHours      int      `toml:"session_ttl_hours"`
	// rate limits
	LikeRateLimitPerMin   int `toml:"like_rate_limit_per_min"`
	FollowRateLimitPerMin int `toml:"follow_rate_limit_per_min"`
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
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(data, env string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.WeekStartDay == "" {
		c.WeekStartDay = "SUNDAY"
	}
	if len(c.TrackedLifts) == 0 {
		c.TrackedLifts = append([]string(nil), DefaultTrackedLifts...)
	}
	if c.FeedDefaultPageSize <= 0 {
		c.FeedDefaultPageSize = 20
	}
	if c.FeedMaxPageSize <= 0 {
		c.FeedMaxPageSize = 100
	}
	if c.ExerciseCacheSizeMB <= 0 {
		c.ExerciseCacheSizeMB = 10
	}
	if c.ExerciseCacheTTLSecs <= 0 {
		c.ExerciseCacheTTLSecs = 600
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
	if c.LikeRateLimitPerMin <= 0 {
		c.LikeRateLimitPerMin = 120
	}
	if c.FollowRateLimitPerMin <= 0 {
		c.FollowRateLimitPerMin = 30
	}
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
