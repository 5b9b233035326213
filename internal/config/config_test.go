package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.SwipeThreshold != defaultSwipeThreshold {
		t.Fatalf("SwipeThreshold = %d, want %d", cfg.SwipeThreshold, defaultSwipeThreshold)
	}
	if !cfg.RemoteEnabled {
		t.Fatalf("RemoteEnabled = false, want true")
	}
	if cfg.AutoAdvance != 0 {
		t.Fatalf("AutoAdvance = %v, want 0", cfg.AutoAdvance)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
deck_file = "  ~/decks/covid.yaml "
api_bind = "  0.0.0.0:9000  "
log_file = " ~/logs/p.log "
log_level = " DEBUG "
swipe_threshold = 4
auto_advance = "45s"
strict_navigation = true
remote_enabled = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != "0.0.0.0:9000" {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, "0.0.0.0:9000")
	}
	if cfg.DeckFile != filepath.Join(home, "decks/covid.yaml") {
		t.Fatalf("DeckFile = %q, want it under HOME %q", cfg.DeckFile, home)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SwipeThreshold != 4 {
		t.Fatalf("SwipeThreshold = %d, want 4", cfg.SwipeThreshold)
	}
	if cfg.AutoAdvance != 45*time.Second {
		t.Fatalf("AutoAdvance = %v, want 45s", cfg.AutoAdvance)
	}
	if !cfg.StrictNavigation {
		t.Fatalf("StrictNavigation = false, want true")
	}
	if cfg.RemoteEnabled {
		t.Fatalf("RemoteEnabled = true, want false")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_bind = "   "
log_level = ""
swipe_threshold = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.SwipeThreshold != defaultSwipeThreshold {
		t.Fatalf("SwipeThreshold = %d, want %d", cfg.SwipeThreshold, defaultSwipeThreshold)
	}
	if cfg.DeckFile != "" {
		t.Fatalf("DeckFile = %q, want empty", cfg.DeckFile)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_bind = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidAutoAdvanceFails(t *testing.T) {
	for _, value := range []string{"soon", "-5s"} {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`auto_advance = "`+value+`"`), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("Load(auto_advance=%q) returned nil error", value)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
