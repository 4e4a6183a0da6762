// Package config loads the desktop host's YAML settings.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kjkrol/goquad/internal/platform"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "quad.yml"

// Prevent a stray large file from being parsed.
const maxConfigSize = 1024 * 1024

type Config struct {
	Window   Window   `yaml:"window"`
	Renderer Renderer `yaml:"renderer"`
	// Keys maps key labels to trigger names or palette colors. When set it
	// replaces the default bindings.
	Keys map[string]string `yaml:"keys"`
}

type Window struct {
	Title  string `yaml:"title"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Border int    `yaml:"border"`
}

type Renderer struct {
	// ProgramCache is the number of linked programs kept per color; 0 selects
	// gfx.DefaultProgramCache and a negative value disables caching.
	ProgramCache int    `yaml:"program_cache"`
	LogLevel     string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Quad",
			Width:  640,
			Height: 480,
			Border: 1,
		},
		Renderer: Renderer{
			LogLevel: "info",
		},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "stat config")
	}
	if info.Size() > maxConfigSize {
		return cfg, errors.Errorf("config %s too large: %d bytes", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	slog.Debug("loaded config", "path", path, "size", info.Size())
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Border < 0 {
		return errors.Errorf("window border %d is negative", c.Window.Border)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	_, err := c.Bindings()
	return err
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Renderer.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Renderer.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, "log level %q", c.Renderer.LogLevel)
	}
	return level, nil
}

// Bindings resolves Keys into gfx.KeyBindings, or the defaults when Keys is
// empty.
func (c Config) Bindings() (gfx.KeyBindings, error) {
	if len(c.Keys) == 0 {
		return gfx.DefaultKeyBindings(), nil
	}
	kb := make(gfx.KeyBindings, len(c.Keys))
	for label, name := range c.Keys {
		t, err := gfx.ParseTrigger(name)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", label)
		}
		if len([]rune(label)) == 1 {
			label = strings.ToLower(label)
		}
		kb[label] = t
	}
	return kb, nil
}

func (c Config) PlatformWindow() platform.WindowConfig {
	return platform.WindowConfig{
		PositionX:   c.Window.X,
		PositionY:   c.Window.Y,
		Width:       c.Window.Width,
		Height:      c.Window.Height,
		BorderWidth: c.Window.Border,
		Title:       c.Window.Title,
	}
}

func (c Config) RendererConfig(logger *slog.Logger) gfx.RendererConfig {
	return gfx.RendererConfig{
		ProgramCache: c.Renderer.ProgramCache,
		Logger:       logger,
	}
}
