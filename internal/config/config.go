package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the presenter's runtime settings.
type Config struct {
	DeckFile         string
	APIBind          string
	LogFile          string
	LogLevel         string
	SwipeThreshold   int
	AutoAdvance      time.Duration
	StrictNavigation bool
	RemoteEnabled    bool
}

const (
	defaultConfigPath     = "~/.config/covid-presenter/config.toml"
	defaultLogFile        = "~/.local/state/covid-presenter/presenter.log"
	defaultAPIBind        = "127.0.0.1:7690"
	defaultLogLevel       = "info"
	defaultSwipeThreshold = 8
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBind:        defaultAPIBind,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		SwipeThreshold: defaultSwipeThreshold,
		RemoteEnabled:  true,
	}
}

// Load locates and parses the presenter config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DeckFile         string `toml:"deck_file"`
		APIBind          string `toml:"api_bind"`
		LogFile          string `toml:"log_file"`
		LogLevel         string `toml:"log_level"`
		SwipeThreshold   int    `toml:"swipe_threshold"`
		AutoAdvance      string `toml:"auto_advance"`
		StrictNavigation bool   `toml:"strict_navigation"`
		RemoteEnabled    *bool  `toml:"remote_enabled"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if deck := strings.TrimSpace(raw.DeckFile); deck != "" {
		cfg.DeckFile = mustExpand(deck)
	}
	if bind := strings.TrimSpace(raw.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	if raw.SwipeThreshold > 0 {
		cfg.SwipeThreshold = raw.SwipeThreshold
	}
	if every := strings.TrimSpace(raw.AutoAdvance); every != "" {
		d, err := time.ParseDuration(every)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: auto_advance: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: auto_advance must not be negative")
		}
		cfg.AutoAdvance = d
	}
	cfg.StrictNavigation = raw.StrictNavigation
	if raw.RemoteEnabled != nil {
		cfg.RemoteEnabled = *raw.RemoteEnabled
	}

	return cfg, nil
}

// ExpandPath resolves "~" and relative paths to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
