package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings swcrawl reads at startup.
type Config struct {
	APIBase        string
	RequestTimeout time.Duration
	Concurrency    int
	LogPath        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/swcrawl/config.toml"
	defaultAPIBase        = "https://swapi.dev/api/"
	defaultRequestTimeout = 15 * time.Second
	defaultLogPath        = "~/.local/state/swcrawl/swcrawl.log"
	defaultLogLevel       = "info"
)

// envOverrides holds the SWCRAWL_* variables. Unset variables leave the
// file values alone.
type envOverrides struct {
	APIBase        string         `env:"SWCRAWL_API_BASE"`
	RequestTimeout *time.Duration `env:"SWCRAWL_REQUEST_TIMEOUT"`
	Concurrency    *int           `env:"SWCRAWL_CONCURRENCY"`
	LogPath        string         `env:"SWCRAWL_LOG_PATH"`
	LogLevel       string         `env:"SWCRAWL_LOG_LEVEL"`
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		APIBase:        defaultAPIBase,
		RequestTimeout: defaultRequestTimeout,
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       defaultLogLevel,
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := cfg.readFile(resolved); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		RequestTimeout string `toml:"request_timeout"`
		Concurrency    *int   `toml:"concurrency"`
		LogPath        string `toml:"log_path"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		c.APIBase = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if raw.Concurrency != nil {
		c.Concurrency = *raw.Concurrency
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		c.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var over envOverrides
	if err := env.Parse(&over); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(over.APIBase); v != "" {
		c.APIBase = v
	}
	if over.RequestTimeout != nil {
		c.RequestTimeout = *over.RequestTimeout
	}
	if over.Concurrency != nil {
		c.Concurrency = *over.Concurrency
	}
	if v := strings.TrimSpace(over.LogPath); v != "" {
		c.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(over.LogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func (c Config) validate() error {
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative")
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
