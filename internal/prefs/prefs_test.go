package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func stubBackground(t *testing.T, dark bool) {
	t.Helper()
	prev := hasDarkBackground
	hasDarkBackground = func() bool { return dark }
	t.Cleanup(func() { hasDarkBackground = prev })
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	stubBackground(t, true)
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeDark)
	}
	if p.Language != defaultLanguage {
		t.Fatalf("Language = %q, want %q", p.Language, defaultLanguage)
	}
	if p.LastSlide != "" {
		t.Fatalf("LastSlide = %q, want empty", p.LastSlide)
	}
}

func TestDefault_LightBackgroundPicksLightTheme(t *testing.T) {
	stubBackground(t, false)

	if got := Default().Theme; got != ThemeLight {
		t.Fatalf("Theme = %q, want %q", got, ThemeLight)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	stubBackground(t, true)
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "covid-presenter")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	content := "theme = \"light\"\nlanguage = \"fa\"\nlast_slide = \"hall-2\"\n"
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeLight)
	}
	if p.Language != "fa" {
		t.Fatalf("Language = %q, want fa", p.Language)
	}
	if p.LastSlide != "hall-2" {
		t.Fatalf("LastSlide = %q, want hall-2", p.LastSlide)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	stubBackground(t, true)
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	p := Prefs{Theme: ThemeLight, Language: "fa", LastSlide: "future-1"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != p {
		t.Fatalf("Load = %+v, want %+v", loaded, p)
	}
}

func TestLoad_UnknownValuesFallBackToDefaults(t *testing.T) {
	stubBackground(t, true)
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Dracula\"\nlanguage = \"de\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeDark)
	}
	if p.Language != defaultLanguage {
		t.Fatalf("Language = %q, want %q", p.Language, defaultLanguage)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	stubBackground(t, false)
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeLight)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme(ThemeDark); got != ThemeLight {
		t.Fatalf("NextTheme(dark) = %q, want light", got)
	}
	if got := NextTheme(ThemeLight); got != ThemeDark {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
}
