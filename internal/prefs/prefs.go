// Package prefs handles presenter user preferences persistence.
// Preferences are stored in ~/.config/covid-presenter/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences that survive restarts.
type Prefs struct {
	Theme     string `toml:"theme"`
	Language  string `toml:"language"`
	LastSlide string `toml:"last_slide,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/covid-presenter/prefs.toml"
	defaultLanguage  = "en"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// hasDarkBackground is swapped in tests; termenv queries the terminal.
var hasDarkBackground = termenv.HasDarkBackground

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns preferences for a first run. The theme follows the
// terminal background.
func Default() Prefs {
	theme := ThemeLight
	if hasDarkBackground() {
		theme = ThemeDark
	}
	return Prefs{Theme: theme, Language: defaultLanguage}
}

// Load reads preferences from the given path, falling back to defaults if missing.
// Unreadable or corrupt files are not errors.
func Load(path string) (Prefs, error) {
	prefs := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs, nil // Graceful degradation
	}

	switch theme := strings.ToLower(strings.TrimSpace(stored.Theme)); theme {
	case ThemeDark, ThemeLight:
		prefs.Theme = theme
	}
	switch lang := strings.ToLower(strings.TrimSpace(stored.Language)); lang {
	case "en", "fa":
		prefs.Language = lang
	}
	prefs.LastSlide = strings.TrimSpace(stored.LastSlide)

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// NextTheme toggles between the dark and light themes.
func NextTheme(current string) string {
	if current == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
