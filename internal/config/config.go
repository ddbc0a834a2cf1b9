// Package config loads and saves the user settings of cli-assistant.
//
// Settings live in ~/.cli-assistant/config.toml. Values missing from the file
// fall back to DefaultConfig, and the CLI_ASSISTANT_THEME and
// CLI_ASSISTANT_LANGUAGE environment variables override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/treykane/cli-assistant/internal/logging"
)

const (
	configDirName  = ".cli-assistant"
	configFileName = "config.toml"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Defaults for the simulated reply timing.
const (
	DefaultTypingDelayMS    = 1500
	DefaultStreamChunk      = 6
	DefaultStreamIntervalMS = 30
)

var (
	ErrNotConfigured = errors.New("cli-assistant is not configured")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrInvalidLang   = errors.New("unsupported language")
)

var log = logging.New("config")

// Themes lists the accepted theme values in display order.
var Themes = []string{ThemeLight, ThemeDark, ThemeAuto}

// Languages lists the supported interface languages in display order.
var Languages = []string{"ru", "en", "es", "zh"}

// Config stores user-defined settings.
type Config struct {
	Theme    string  `toml:"theme"`
	Language string  `toml:"language"`
	Profile  Profile `toml:"profile"`
	Chat     Chat    `toml:"chat"`
}

// Profile is the user card shown on the profile page.
type Profile struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Chat controls the simulated reply timing.
type Chat struct {
	// TypingDelayMS is the pause before a reply starts streaming.
	TypingDelayMS int `toml:"typing_delay_ms"`
	// StreamChunk is the number of runes revealed per stream tick.
	StreamChunk int `toml:"stream_chunk"`
	// StreamIntervalMS is the delay between stream ticks.
	StreamIntervalMS int `toml:"stream_interval_ms"`
}

// DefaultConfig returns the settings used on first run.
func DefaultConfig() Config {
	return Config{
		Theme:    ThemeDark,
		Language: "en",
		Profile: Profile{
			Name:  "User",
			Email: "user@example.com",
		},
		Chat: Chat{
			TypingDelayMS:    DefaultTypingDelayMS,
			StreamChunk:      DefaultStreamChunk,
			StreamIntervalMS: DefaultStreamIntervalMS,
		},
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads, fills, and validates the saved configuration. Environment
// overrides are applied after the file is read.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadPath(path)
}

// LoadPath reads configuration from path and applies environment overrides.
func LoadPath(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads configuration from path without environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	log.Debug("loaded config", "path", path, "theme", cfg.Theme, "language", cfg.Language)
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# cli-assistant configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// SaveChanges persists the settings that differ between prev and next. The
// rest of the file is left as stored, so values that came from environment
// overrides in prev are never written back.
func SaveChanges(prev, next Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	stored, err := LoadFile(path)
	if errors.Is(err, ErrNotConfigured) {
		stored, err = DefaultConfig(), nil
	}
	if err != nil {
		return err
	}
	return Save(mergeChanges(stored, prev, next))
}

func mergeChanges(stored, prev, next Config) Config {
	if next.Theme != prev.Theme {
		stored.Theme = next.Theme
	}
	if next.Language != prev.Language {
		stored.Language = next.Language
	}
	if next.Profile != prev.Profile {
		stored.Profile = next.Profile
	}
	if next.Chat != prev.Chat {
		stored.Chat = next.Chat
	}
	return stored
}

// Normalize fills zero values with defaults and validates enumerations.
func (c *Config) Normalize() error {
	def := DefaultConfig()

	theme, err := NormalizeTheme(c.Theme)
	if err != nil {
		return err
	}
	c.Theme = theme

	lang, err := NormalizeLanguage(c.Language)
	if err != nil {
		return err
	}
	c.Language = lang

	if strings.TrimSpace(c.Profile.Name) == "" {
		c.Profile.Name = def.Profile.Name
	}
	c.Profile.Email = strings.TrimSpace(c.Profile.Email)
	if c.Chat.TypingDelayMS < 0 {
		c.Chat.TypingDelayMS = 0
	}
	if c.Chat.TypingDelayMS == 0 && c.Chat.StreamChunk == 0 && c.Chat.StreamIntervalMS == 0 {
		c.Chat = def.Chat
	}
	if c.Chat.StreamChunk <= 0 {
		c.Chat.StreamChunk = def.Chat.StreamChunk
	}
	if c.Chat.StreamIntervalMS <= 0 {
		c.Chat.StreamIntervalMS = def.Chat.StreamIntervalMS
	}
	return nil
}

// NormalizeTheme lower-cases and validates a theme name. Empty means dark.
func NormalizeTheme(value string) (string, error) {
	theme := strings.ToLower(strings.TrimSpace(value))
	if theme == "" {
		return ThemeDark, nil
	}
	for _, t := range Themes {
		if theme == t {
			return theme, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
}

// NormalizeLanguage parses a BCP 47 tag and maps it to a supported base
// language. Empty means English.
func NormalizeLanguage(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "en", nil
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLang, value)
	}
	base, _ := tag.Base()
	for _, l := range Languages {
		if base.String() == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLang, value)
}

// LanguageName returns the self-name of a supported language, e.g. "русский".
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CLI_ASSISTANT_THEME"); v != "" {
		theme, err := NormalizeTheme(v)
		if err != nil {
			return fmt.Errorf("CLI_ASSISTANT_THEME: %w", err)
		}
		c.Theme = theme
	}
	if v := os.Getenv("CLI_ASSISTANT_LANGUAGE"); v != "" {
		lang, err := NormalizeLanguage(v)
		if err != nil {
			return fmt.Errorf("CLI_ASSISTANT_LANGUAGE: %w", err)
		}
		c.Language = lang
	}
	return nil
}
