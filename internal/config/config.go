// Package config loads rtlil.toml, the optional per-project settings file.
//
// Файл ищется от стартового каталога вверх до корня; флаги командной строки
// перекрывают значения из файла.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up by Find.
const FileName = "rtlil.toml"

type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// Path is the file the values came from; empty for Default().
	Path string `toml:"-"`
}

type ParseConfig struct {
	// MaxDepth bounds switch and concatenation nesting; 0 means unlimited.
	MaxDepth int `toml:"max_depth"`
}

type CheckConfig struct {
	Jobs       int      `toml:"jobs"`
	Cache      bool     `toml:"cache"`
	Extensions []string `toml:"extensions"`
}

type OutputConfig struct {
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the settings used when no rtlil.toml exists.
func Default() Config {
	return Config{
		Check: CheckConfig{
			Cache:      true,
			Extensions: []string{".il", ".rtlil"},
		},
		Output: OutputConfig{
			Color:          "auto",
			MaxDiagnostics: 100,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Find walks from startDir up to the filesystem root looking for rtlil.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path over Default(); keys missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("check", "extensions") && len(cfg.Check.Extensions) == 0 {
		return Config{}, fmt.Errorf("%s: [check].extensions must not be empty", path)
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

// Discover is Find followed by Load; without a file it returns Default().
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	where := c.Path
	if where == "" {
		where = "config"
	}
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("%s: [parse].max_depth must not be negative", where)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%s: [check].jobs must not be negative", where)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [output].color must be auto, on or off, got %q", where, c.Output.Color)
	}
	for _, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%s: extension %q must start with '.'", where, ext)
		}
	}
	return nil
}
