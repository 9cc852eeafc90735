// Package config loads service configuration from an optional YAML file
// with an environment overlay. Environment variables always win, and a
// local .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/creatorscope/creatorscope/internal/source"
)

// Duration is a time.Duration that unmarshals from YAML duration strings
// such as "10s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full service configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	HTTP   HTTPConfig   `yaml:"http"`
	Cache  CacheConfig  `yaml:"cache"`
	DB     DBConfig     `yaml:"db"`
}

// SourceConfig holds the upstream API client settings.
type SourceConfig struct {
	BaseURL        string   `yaml:"base_url"`
	APIKey         string   `yaml:"api_key"`
	Network        string   `yaml:"network"`
	RequestTimeout Duration `yaml:"request_timeout"`
	RPS            float64  `yaml:"rps"`
	Burst          int      `yaml:"burst"`
}

// Client converts the settings into the source client's config type.
func (s SourceConfig) Client() source.Config {
	return source.Config{
		BaseURL:        s.BaseURL,
		APIKey:         s.APIKey,
		Network:        s.Network,
		RequestTimeout: s.RequestTimeout.Std(),
		RPS:            s.RPS,
		Burst:          s.Burst,
	}
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
}

// CacheConfig holds report cache settings. An empty RedisAddr selects the
// in-process cache.
type CacheConfig struct {
	RedisAddr string   `yaml:"redis_addr"`
	ReportTTL Duration `yaml:"report_ttl"`
}

// DBConfig holds the optional PostgreSQL report store settings. An empty
// DSN disables persistence.
type DBConfig struct {
	DSN     string   `yaml:"dsn"`
	Timeout Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	src := source.DefaultConfig()
	return Config{
		Source: SourceConfig{
			BaseURL:        src.BaseURL,
			Network:        src.Network,
			RequestTimeout: Duration(src.RequestTimeout),
			RPS:            src.RPS,
			Burst:          src.Burst,
		},
		HTTP: HTTPConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
			IdleTimeout:  Duration(60 * time.Second),
		},
		Cache: CacheConfig{
			ReportTTL: Duration(15 * time.Minute),
		},
		DB: DBConfig{
			Timeout: Duration(5 * time.Second),
		},
	}
}

// Load reads path (when non-empty and present) over the defaults, then
// applies the environment overlay.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables, loading a .env file first when
// one exists. Missing .env is not an error.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LUNARCRUSH_API_KEY"); v != "" {
		cfg.Source.APIKey = v
	}
	if v := os.Getenv("LUNARCRUSH_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.DB.DSN = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = p
		}
	}
	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.HTTP.Host = v
	}
}
