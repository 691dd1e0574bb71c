// Package config loads the todo CLI settings from an optional .env file
// and TODO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/adamwoolhether/todoapi/client"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TODO"

// Config holds the CLI configuration.
type Config struct {
	BaseEndpoint   string        `mapstructure:"base_endpoint"`
	TimeoutSeconds int64         `mapstructure:"timeout"`
	Timeout        time.Duration `mapstructure:"-"`
	RPS            int           `mapstructure:"rps"`
	Burst          int           `mapstructure:"burst"`
	UserAgent      string        `mapstructure:"user_agent"`
	LogLevel       string        `mapstructure:"log_level"`
}

// Load reads envFile, if it exists, then the environment. Variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("base_endpoint", "https://jsonplaceholder.typicode.com")
	v.SetDefault("timeout", 10) // seconds
	v.SetDefault("rps", 0)
	v.SetDefault("burst", 1)
	v.SetDefault("user_agent", "todoapi-cli/1.0")
	v.SetDefault("log_level", "warn")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.BaseEndpoint == "" {
		return nil, errors.New("invalid base_endpoint (must not be empty)")
	}
	if cfg.TimeoutSeconds < 0 {
		return nil, errors.New("invalid timeout (must not be negative seconds)")
	}
	if cfg.RPS < 0 || cfg.Burst < 0 {
		return nil, errors.New("invalid rps or burst (must not be negative)")
	}
	if cfg.RPS > 0 && cfg.Burst == 0 {
		return nil, errors.New("invalid burst (must be positive when rps is set)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

// Level maps LogLevel onto a slog level, defaulting to warn.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ClientOptions translates the configuration into transport options.
func (c *Config) ClientOptions(logger *slog.Logger) []client.Option {
	opts := []client.Option{
		client.WithTimeout(c.Timeout),
		client.WithLogger(logger),
		client.WithRequestID(),
	}

	if c.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.UserAgent))
	}

	if c.RPS > 0 {
		opts = append(opts, client.WithThrottle(c.RPS, c.Burst))
	}

	return opts
}
