package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverValkey   = "valkey"
	DriverPostgres = "postgres"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Summarize SummarizeConfig `yaml:"summarize"`
	Page      PageConfig      `yaml:"page"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
}

// HTTPConfig controls the control plane server.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// SummarizeConfig points the handler at the summarization backend.
// RequestTimeout of zero means the request is never cut short.
type SummarizeConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// PageConfig names the input and output elements.
type PageConfig struct {
	InputElement  string `yaml:"inputElement"`
	OutputElement string `yaml:"outputElement"`
	TriggerName   string `yaml:"triggerName"`
}

// StoreConfig selects the element store backend.
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the shared page.
type ValkeyConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// AuthConfig guards the control plane with bearer tokens.
type AuthConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("SUMMARIZE_BASE_URL"); v != "" {
		cfg.Summarize.BaseURL = v
	}
	if v := os.Getenv("SUMMARIZE_REQUEST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Summarize.RequestTimeout = parsed
		}
	}
	if v := os.Getenv("PAGE_INPUT_ELEMENT"); v != "" {
		cfg.Page.InputElement = v
	}
	if v := os.Getenv("PAGE_OUTPUT_ELEMENT"); v != "" {
		cfg.Page.OutputElement = v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.Store.Driver = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("STORE_VALKEY_ADDR"); v != "" {
		cfg.Store.Valkey.Addr = v
	}
	if v := os.Getenv("STORE_VALKEY_PREFIX"); v != "" {
		cfg.Store.Valkey.Prefix = v
	}
	if v := os.Getenv("STORE_POSTGRES_DSN"); v != "" {
		cfg.Store.Postgres.DSN = v
	}
	if v := os.Getenv("STORE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Store.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("STORE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Store.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		cfg.Auth.Enabled = parseBool(v)
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Summarize: SummarizeConfig{
			BaseURL: "http://localhost:3000",
		},
		Page: PageConfig{
			InputElement:  "chatInput",
			OutputElement: "summaryOutput",
			TriggerName:   "summarizeBtn",
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			Valkey: ValkeyConfig{
				Prefix: "page",
			},
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Auth: AuthConfig{
			TokenTTL: 12 * time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ShutdownTimeout < 0 {
		return errors.New("http.shutdownTimeout cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	base := strings.TrimSpace(c.Summarize.BaseURL)
	if base == "" {
		return errors.New("summarize.baseUrl cannot be empty")
	}
	if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("summarize.baseUrl must be an absolute URL: %q", base)
	}
	if c.Summarize.RequestTimeout < 0 {
		return errors.New("summarize.requestTimeout cannot be negative")
	}
	if strings.TrimSpace(c.Page.InputElement) == "" || strings.TrimSpace(c.Page.OutputElement) == "" {
		return errors.New("page.inputElement and page.outputElement cannot be empty")
	}
	if c.Page.InputElement == c.Page.OutputElement {
		return errors.New("page.inputElement and page.outputElement must differ")
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverValkey:
		if strings.TrimSpace(c.Store.Valkey.Addr) == "" {
			return errors.New("store.valkey.addr cannot be empty when driver is valkey")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Store.Postgres.DSN) == "" {
			return errors.New("store.postgres.dsn cannot be empty when driver is postgres")
		}
	default:
		return fmt.Errorf("store.driver %q is not supported", c.Store.Driver)
	}
	if c.Auth.Enabled {
		if len(c.Auth.Secret) < 16 {
			return errors.New("auth.secret must be at least 16 bytes when auth is enabled")
		}
		if c.Auth.TokenTTL <= 0 {
			return errors.New("auth.tokenTtl must be positive")
		}
	}
	return nil
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
