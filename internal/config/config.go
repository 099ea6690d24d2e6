package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HTTPAddr        string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// fileConfig mirrors the optional TOML file. Empty fields keep defaults.
type fileConfig struct {
	HTTPAddr        string `toml:"http_addr"`
	LogLevel        string `toml:"log_level"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// Load builds the configuration from defaults, then the TOML file named by
// path (or CARDS_CONFIG when path is empty), then the environment.
func Load(path string) (Config, error) {
	raw := fileConfig{
		HTTPAddr:        ":3000",
		LogLevel:        "info",
		ShutdownTimeout: "10s",
	}

	if path == "" {
		path = os.Getenv("CARDS_CONFIG")
	}
	if path != "" {
		if err := decodeFile(path, &raw); err != nil {
			return Config{}, err
		}
	}

	raw.HTTPAddr = envOr("HTTP_ADDR", raw.HTTPAddr)
	raw.LogLevel = envOr("LOG_LEVEL", raw.LogLevel)
	raw.ShutdownTimeout = envOr("SHUTDOWN_TIMEOUT", raw.ShutdownTimeout)

	return raw.resolve()
}

func decodeFile(path string, into *fileConfig) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.HTTPAddr != "" {
		into.HTTPAddr = fc.HTTPAddr
	}
	if fc.LogLevel != "" {
		into.LogLevel = fc.LogLevel
	}
	if fc.ShutdownTimeout != "" {
		into.ShutdownTimeout = fc.ShutdownTimeout
	}
	return nil
}

func (fc fileConfig) resolve() (Config, error) {
	c := Config{HTTPAddr: fc.HTTPAddr}

	d, err := time.ParseDuration(fc.ShutdownTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid shutdown timeout %q: %w", fc.ShutdownTimeout, err)
	}
	c.ShutdownTimeout = d

	level, err := ParseLogLevel(fc.LogLevel)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
