// Package config handles a11ytree configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mj1618/a11ytree/internal/input"
)

// Config is the contents of config.toml.
type Config struct {
	// Scene is a built-in scene name. File takes precedence when set.
	Scene string `toml:"scene"`

	// File is a scene description: .yaml, .md or .html.
	File string `toml:"file"`

	// AppName is reported as the root element's name.
	AppName string `toml:"app_name"`

	// IDBits selects 64 or 32 bit element ids.
	IDBits int `toml:"id_bits"`

	Layout   LayoutConfig   `toml:"layout"`
	Viewport ViewportConfig `toml:"viewport"`
	Log      LogConfig      `toml:"log"`
	Keys     KeysConfig     `toml:"keys"`
	Server   ServerConfig   `toml:"server"`
	UI       UIConfig       `toml:"ui"`
}

// LayoutConfig controls automatic element rectangles.
type LayoutConfig struct {
	Enabled    bool `toml:"enabled"`
	Width      int  `toml:"width"`
	LineHeight int  `toml:"line_height"`
	Indent     int  `toml:"indent"`
}

// ViewportConfig is the window client area and its screen position.
type ViewportConfig struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Level   string `toml:"level"`
}

// KeysConfig lists key chords such as "shift+tab" per command.
type KeysConfig struct {
	Next     []string `toml:"next"`
	Prev     []string `toml:"prev"`
	Activate []string `toml:"activate"`
}

type ServerConfig struct {
	Transport string `toml:"transport"`
	Port      int    `toml:"port"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an ANSI color code ("0" to "255") or a hex color ("#RRGGBB").
	Accent string `toml:"accent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Scene:   "srfirst",
		AppName: "a11ytree",
		IDBits:  64,
		Layout:  LayoutConfig{Enabled: true, Width: 1200, LineHeight: 20, Indent: 10},
		Viewport: ViewportConfig{
			Width:  1200,
			Height: 800,
		},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Transport: "stdio", Port: 8080},
		UI:     UIConfig{Accent: "#A78BFA"},
	}
}

// Load loads the configuration from the default location.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path. Keys missing from
// the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.IDBits != 32 && c.IDBits != 64 {
		return fmt.Errorf("id_bits must be 32 or 64, got %d", c.IDBits)
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport size must not be negative")
	}
	if c.Layout.Enabled && (c.Layout.Width <= 0 || c.Layout.LineHeight <= 0 || c.Layout.Indent < 0) {
		return fmt.Errorf("layout width and line_height must be positive")
	}
	if _, err := input.ParseBindings(c.Keys.Next, c.Keys.Prev, c.Keys.Activate); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	switch c.Server.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("unsupported server transport %q (use stdio or streamable-http)", c.Server.Transport)
	}
	return nil
}

// Encode renders the config as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write saves the config to path, creating parent directories.
func (c *Config) Write(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config file path.
// Checks ~/.config/a11ytree/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "a11ytree", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "a11ytree", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}
