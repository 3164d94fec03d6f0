// Package config loads settings for the serve command.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the serve command's configuration. Zero fields fall back to Default.
type Config struct {
	Addr        string `yaml:"addr"`
	PersistPath string `yaml:"persist_path"`
	LogLevel    string `yaml:"log_level"`
	Metrics     bool   `yaml:"metrics"`
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Metrics:     true,
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.PersistPath == "" {
		cfg.PersistPath = Default().PersistPath
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseLevel maps debug|info|warn|error to a slog level; empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf("unknown log level %q", s)
}
