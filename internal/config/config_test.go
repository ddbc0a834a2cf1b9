package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReturnsErrNotConfiguredWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.Theme = "Light"
	cfg.Language = "ru-RU"
	cfg.Profile.Name = "Ada"
	cfg.Chat.TypingDelayMS = 200
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.Theme != ThemeLight {
		t.Fatalf("expected theme %q, got %q", ThemeLight, loaded.Theme)
	}
	if loaded.Language != "ru" {
		t.Fatalf("expected language %q, got %q", "ru", loaded.Language)
	}
	if loaded.Profile.Name != "Ada" {
		t.Fatalf("expected profile name %q, got %q", "Ada", loaded.Profile.Name)
	}
	if loaded.Chat.TypingDelayMS != 200 {
		t.Fatalf("expected typing delay 200, got %d", loaded.Chat.TypingDelayMS)
	}
	if loaded.Chat.StreamChunk != DefaultStreamChunk {
		t.Fatalf("expected default stream chunk, got %d", loaded.Chat.StreamChunk)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config path: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected config perm 0600, got %o", perm)
	}
}

func TestLoadFillsMissingKeysFromDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("theme = \"auto\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Theme != ThemeAuto {
		t.Fatalf("expected theme auto, got %q", cfg.Theme)
	}
	if cfg.Language != "en" || cfg.Profile.Email != "user@example.com" {
		t.Fatalf("expected defaults for missing keys, got %+v", cfg)
	}
	if cfg.Chat.TypingDelayMS != DefaultTypingDelayMS {
		t.Fatalf("expected default typing delay, got %d", cfg.Chat.TypingDelayMS)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(path, []byte("theme = [oops"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}

	if err := os.WriteFile(path, []byte("theme = \"neon\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("save config: %v", err)
	}

	t.Setenv("CLI_ASSISTANT_THEME", "light")
	t.Setenv("CLI_ASSISTANT_LANGUAGE", "es")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Theme != ThemeLight || cfg.Language != "es" {
		t.Fatalf("expected env overrides applied, got theme=%q language=%q", cfg.Theme, cfg.Language)
	}

	t.Setenv("CLI_ASSISTANT_LANGUAGE", "klingon-xx-yy-zz")
	if _, err := Load(); !errors.Is(err, ErrInvalidLang) {
		t.Fatalf("expected ErrInvalidLang, got %v", err)
	}
}

func TestLoadPathReadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("theme = \"light\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CLI_ASSISTANT_LANGUAGE", "zh")

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatalf("load path: %v", err)
	}
	if cfg.Theme != ThemeLight || cfg.Language != "zh" {
		t.Fatalf("expected file theme and env language, got theme=%q language=%q", cfg.Theme, cfg.Language)
	}

	if _, err := LoadPath(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSaveChangesKeepsEnvOverridesOutOfFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("save config: %v", err)
	}
	t.Setenv("CLI_ASSISTANT_THEME", "light")

	prev, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	next := prev
	next.Language = "es"
	if err := SaveChanges(prev, next); err != nil {
		t.Fatalf("save changes: %v", err)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	stored, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if stored.Theme != ThemeDark || stored.Language != "es" {
		t.Fatalf("expected file theme dark and language es, got theme=%q language=%q", stored.Theme, stored.Language)
	}
}

func TestSaveChangesWritesDefaultsOnFirstSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	prev := DefaultConfig()
	next := prev
	next.Theme = ThemeLight
	if err := SaveChanges(prev, next); err != nil {
		t.Fatalf("save changes: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != next {
		t.Fatalf("expected %+v, got %+v", next, cfg)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: "en"},
		{input: "EN", want: "en"},
		{input: "ru-RU", want: "ru"},
		{input: "zh-Hans", want: "zh"},
		{input: "pt", wantErr: true},
		{input: "not a tag", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeLanguage(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeLanguage(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeLanguage(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("ru"); got != "русский" {
		t.Fatalf("expected русский, got %q", got)
	}
	if got := LanguageName("en"); got != "English" {
		t.Fatalf("expected English, got %q", got)
	}
}

func TestNormalizeFillsZeroChat(t *testing.T) {
	cfg := Config{}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Chat != DefaultConfig().Chat {
		t.Fatalf("expected default chat settings, got %+v", cfg.Chat)
	}
	if cfg.Theme != ThemeDark || cfg.Profile.Name != "User" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveConfigDirCreationError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, configDirName)
	if err := os.WriteFile(configDir, []byte("blocking file"), 0o644); err != nil {
		t.Fatalf("write blocking file: %v", err)
	}

	var buf bytes.Buffer
	oldLogger := log
	log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer func() { log = oldLogger }()

	err := Save(DefaultConfig())
	if err == nil {
		t.Fatal("expected error when config dir path is blocked by a file")
	}
	if !strings.Contains(err.Error(), "create config dir") {
		t.Errorf("error should mention config dir creation, got: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no success log on failure, got %q", buf.String())
	}
}
