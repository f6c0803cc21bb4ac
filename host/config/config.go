package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nobonobo/prepass-viewer/host/input"
)

const Filename = "prepass.yml"

// Config holds the user adjustable settings of the viewer.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets string       `yaml:"assets"`
	Keys   KeysConfig   `yaml:"keys"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type KeysConfig struct {
	Reset   string `yaml:"reset"`
	Advance string `yaml:"advance"`
	Retreat string `yaml:"retreat"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Prepass Viewer",
			Width:  1024,
			Height: 1024,
			VSync:  false,
		},
		Assets: "./assets",
		Keys: KeysConfig{
			Reset:   "r",
			Advance: "space",
			Retreat: "backspace",
		},
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Assets == "" {
		return errors.New("assets directory must not be empty")
	}
	if _, err := c.Keymap(); err != nil {
		return err
	}
	return nil
}

func (c Config) Keymap() (input.Keymap, error) {
	return input.NewKeymap(c.Keys.Reset, c.Keys.Advance, c.Keys.Retreat)
}
