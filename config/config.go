// Package config resolves runtime settings from an optional YAML file, a
// .env file in the working directory and environment variables, in that
// order of increasing precedence. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig    = "SHOWTIME_CONFIG"
	EnvMapsKey   = "SHOWTIME_MAPS_API_KEY"
	EnvCity      = "SHOWTIME_CITY"
	EnvDebug     = "SHOWTIME_DEBUG"
	EnvAddr      = "SHOWTIME_ADDR"
	DefaultAddr  = "127.0.0.1:8080"
	dotEnvFile   = ".env"
	defaultLevel = "info"
)

// mapsKeyChain is the lookup order for the map API key.
var mapsKeyChain = []string{EnvMapsKey, "GOOGLE_MAPS_API_KEY", "VITE_GOOGLE_MAPS_API_KEY"}

type Config struct {
	// MapsAPIKey enables the interactive map. Empty degrades the map panel.
	MapsAPIKey string `yaml:"maps_api_key"`

	// MapsEndpoint overrides the map script address.
	MapsEndpoint string `yaml:"maps_endpoint"`

	// DefaultCity is the city key selected at startup.
	DefaultCity string `yaml:"default_city"`

	// InitialPath is the route opened at startup, e.g. /cinemas/cgv-vincom.
	InitialPath string `yaml:"initial_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// ListenAddr is the address for the serve command.
	ListenAddr string `yaml:"listen_addr"`

	// DetectCity selects the nearest supported city from IP geolocation.
	DetectCity bool `yaml:"detect_city"`
}

func Default() *Config {
	return &Config{
		InitialPath: "/",
		LogLevel:    defaultLevel,
		ListenAddr:  DefaultAddr,
	}
}

// Load builds the configuration. path may be empty, in which case
// SHOWTIME_CONFIG is consulted; with neither set no file is read. A missing
// .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	for _, key := range mapsKeyChain {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			c.MapsAPIKey = v
			break
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCity)); v != "" {
		c.DefaultCity = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.ListenAddr = v
	}
	if strings.TrimSpace(os.Getenv(EnvDebug)) != "" {
		c.LogLevel = "debug"
	}
}

// Validate checks fields with a fixed domain.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.New("listen_addr must not be empty")
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	text := strings.TrimSpace(c.LogLevel)
	if text == "" {
		text = defaultLevel
	}
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
