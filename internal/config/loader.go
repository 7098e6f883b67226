package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader resolves configuration files by name.
// Search order: custom path -> Dir (default ~/.pico/configs) -> ./configs ->
// embedded default -> hardcoded default. Files overlay the hardcoded
// defaults, so they only need the keys they change.
type Loader struct {
	// Dir replaces the per-user config directory when set.
	Dir string
}

// LoadConsole loads the console configuration with the default loader.
func LoadConsole(customPath string) (ConsoleConfig, error) {
	return Loader{}.Console(customPath)
}

// LoadFlappy loads the Flappy configuration with the default loader.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return Loader{}.Flappy(customPath)
}

// Console loads console.yaml.
func (l Loader) Console(customPath string) (ConsoleConfig, error) {
	cfg, err := load(l, "console", customPath, DefaultConsoleConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid console config: %w", err)
	}
	return cfg, nil
}

// Flappy loads flappy.yaml.
func (l Loader) Flappy(customPath string) (FlappyConfig, error) {
	cfg, err := load(l, "flappy", customPath, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flappy config: %w", err)
	}
	return cfg, nil
}

// load walks the search order for name.yaml. Only an explicit custom path
// fails loudly; unreadable or malformed files elsewhere fall through.
func load[T any](l Loader, name, customPath string, fallback func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, fallback)
		if err != nil {
			return fallback(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := name + ".yaml"
	for _, path := range []string{l.userPath(file), filepath.Join("configs", file)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, fallback); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(DefaultYAML(name), fallback); err == nil {
		return cfg, nil
	}
	return fallback(), nil
}

// decode overlays data onto the hardcoded defaults. Unknown keys are errors
// so typos do not silently fall back to defaults.
func decode[T any](data []byte, fallback func() T) (T, error) {
	cfg := fallback()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fallback(), err
	}
	return cfg, nil
}

// userPath returns the per-user path for file, or empty if home is unavailable.
func (l Loader) userPath(file string) string {
	if l.Dir != "" {
		return filepath.Join(l.Dir, file)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pico", "configs", file)
}
