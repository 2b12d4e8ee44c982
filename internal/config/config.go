// Package config provides configuration management for TruePedia.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Wiki      WikiConfig      `mapstructure:"wiki"`
	Translate TranslateConfig `mapstructure:"translate"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	River     RiverConfig     `mapstructure:"river"`
	Worker    WorkerConfig    `mapstructure:"worker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgxpool is shared by Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// WikiConfig contains Wikipedia API client settings.
type WikiConfig struct {
	// EndpointTemplate is the per-language Action API endpoint; %s is the
	// language code (e.g. "https://%s.wikipedia.org/w/api.php").
	EndpointTemplate string        `mapstructure:"endpoint_template"`
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SearchLimit      int           `mapstructure:"search_limit"`
}

// TranslateConfig contains translation provider settings.
type TranslateConfig struct {
	// Endpoint is a LibreTranslate-compatible /translate URL.
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// MaxChars caps the amount of text sent to the provider per request;
	// longer inputs are truncated (the provider is rate-limited).
	MaxChars int `mapstructure:"max_chars"`

	// RatePerSecond and Burst configure the client-side token bucket.
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`

	// CacheRetention bounds how long cached translations are kept.
	CacheRetention time.Duration `mapstructure:"cache_retention"`
}

// SnapshotConfig contains article snapshot cache settings.
type SnapshotConfig struct {
	// TTL is how long a snapshot is served before being refetched.
	// Zero disables cached reads (every read refetches) but snapshots
	// are still written for the background jobs.
	TTL time.Duration `mapstructure:"ttl"`

	// Retention is how long snapshots are kept before cleanup deletes them.
	Retention time.Duration `mapstructure:"retention"`

	// PrefetchLanguages enables background prefetch of language variants
	// after an article view.
	PrefetchLanguages bool `mapstructure:"prefetch_languages"`
}

// AuthConfig contains admin authentication settings.
type AuthConfig struct {
	// AdminUser and AdminPasswordHash (bcrypt) gate the admin endpoints.
	// Empty hash disables admin login entirely.
	AdminUser         string `mapstructure:"admin_user"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	SigningSecret string        `mapstructure:"signing_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize  int `mapstructure:"general_pool_size"`
	OutboundPoolSize int `mapstructure:"outbound_pool_size"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/truepedia")

	// Maps nested config: translate.max_chars → TRANSLATE_MAX_CHARS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Auth.SigningSecret == "" {
		return fmt.Errorf("auth.signing_secret must not be empty")
	}
	if len(c.Auth.SigningSecret) < 32 {
		return fmt.Errorf("auth.signing_secret must be at least 32 characters")
	}
	if !strings.Contains(c.Wiki.EndpointTemplate, "%s") {
		return fmt.Errorf("wiki.endpoint_template must contain a %%s language placeholder")
	}
	if c.Translate.MaxChars <= 0 {
		return fmt.Errorf("translate.max_chars must be positive")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets on first boot.
func (c *Config) ensureSecrets() error {
	if c.Auth.SigningSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate signing secret: %w", err)
		}
		c.Auth.SigningSecret = secret
		logBootstrapWarn(
			"auto-generated auth signing_secret; set AUTH_SIGNING_SECRET env var so tokens survive restarts",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "truepedia")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "truepedia")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 25)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Wikipedia API
	v.SetDefault("wiki.endpoint_template", "https://%s.wikipedia.org/w/api.php")
	v.SetDefault("wiki.user_agent", "TruePedia/1.0 (multilingual article reader)")
	v.SetDefault("wiki.timeout", "15s")
	v.SetDefault("wiki.search_limit", 10)

	// Translation provider
	v.SetDefault("translate.endpoint", "https://libretranslate.com/translate")
	v.SetDefault("translate.timeout", "30s")
	v.SetDefault("translate.max_chars", 3000)
	v.SetDefault("translate.rate_per_second", 1.0)
	v.SetDefault("translate.burst", 3)
	v.SetDefault("translate.cache_retention", "720h")

	// Snapshot cache
	v.SetDefault("snapshot.ttl", "1h")
	v.SetDefault("snapshot.retention", "168h")
	v.SetDefault("snapshot.prefetch_languages", true)

	// Auth
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("auth.token_ttl", "12h")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 5)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 50)
	v.SetDefault("worker.outbound_pool_size", 20)
}
