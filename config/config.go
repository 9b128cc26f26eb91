// Package config loads server and CLI settings. Precedence, lowest first:
// compiled defaults, the YAML file, a .env file, the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names the YAML file to read.
	EnvConfigPath     = "STORYBOARD_CONFIG"
	DefaultConfigPath = "storyboard.yaml"
)

type Config struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
	ExportDir       string
	LogLevel        slog.Level
	LogFormat       string
}

type configFile struct {
	Server struct {
		Port                   string `yaml:"port"`
		RequestTimeoutSeconds  int    `yaml:"request_timeout_seconds"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
		MaxBodyBytes           int64  `yaml:"max_body_bytes"`
	} `yaml:"server"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaults() Config {
	return Config{
		Port:            "8080",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		MaxBodyBytes:    64 << 10,
		ExportDir:       "_output",
		LogLevel:        slog.LevelInfo,
		LogFormat:       "text",
	}
}

// Load reads configuration. An empty path falls back to $STORYBOARD_CONFIG,
// then storyboard.yaml. A missing YAML or .env file is not an error.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.applyFile(raw); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: Failed to load .env file: %v", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}
	if f.Server.Port != "" {
		c.Port = f.Server.Port
	}
	if f.Server.RequestTimeoutSeconds > 0 {
		c.RequestTimeout = time.Duration(f.Server.RequestTimeoutSeconds) * time.Second
	}
	if f.Server.ShutdownTimeoutSeconds > 0 {
		c.ShutdownTimeout = time.Duration(f.Server.ShutdownTimeoutSeconds) * time.Second
	}
	if f.Server.MaxBodyBytes > 0 {
		c.MaxBodyBytes = f.Server.MaxBodyBytes
	}
	if f.Export.Dir != "" {
		c.ExportDir = f.Export.Dir
	}
	if f.Log.Level != "" {
		level, err := parseLevel(f.Log.Level)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	if f.Log.Format != "" {
		c.LogFormat = strings.ToLower(f.Log.Format)
	}
	return c.validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"REQUEST_TIMEOUT_SECONDS", &c.RequestTimeout},
		{"SHUTDOWN_TIMEOUT_SECONDS", &c.ShutdownTimeout},
	} {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", d.key, v)
		}
		*d.dst = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", v)
		}
		c.MaxBodyBytes = n
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// NewLogger builds the process logger described by the config.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
