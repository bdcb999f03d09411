// Package config loads tabula settings from defaults, a TOML file and
// TABULA_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Bounds for UI layout settings.
const (
	MinColWidth = 4
	MaxColWidth = 64
	MinRowLines = 2 // a row needs an upper and a lower half for drag placement
	MaxRowLines = 4
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Grid    GridConfig    `toml:"grid"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig says where tables are kept.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
	Key    string `toml:"key"` // store key of the table, e.g. "savedTable"
}

// GridConfig holds the dimensions of a freshly created table.
type GridConfig struct {
	Columns int `toml:"columns"`
	Rows    int `toml:"rows"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme    string `toml:"theme"`
	ColWidth int    `toml:"col_width"` // characters per column
	RowLines int    `toml:"row_lines"` // terminal lines per body row
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{DBPath: homePath("tabula.db", ".local", "share", "tabula"), Key: "savedTable"},
		Grid:    GridConfig{Columns: 3, Rows: 3},
		UI:      UIConfig{Theme: "mocha", ColWidth: 16, RowLines: 2},
	}
}

// DefaultConfigPath returns ~/.config/tabula/config.toml.
func DefaultConfigPath() string {
	return homePath("config.toml", ".config", "tabula")
}

// homePath joins dirs and name under the home directory, or returns name
// alone when there is no home directory.
func homePath(name string, dirs ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(append(append([]string{home}, dirs...), name)...)
}

// Load reads the configuration from DefaultConfigPath.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom reads the configuration from path. A missing file is not an
// error; the defaults and environment still apply.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	for _, v := range envVars {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		if err := v.apply(cfg, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}
	}
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type envVar struct {
	name  string
	apply func(*Config, string) error
}

var envVars = []envVar{
	{"TABULA_DB_PATH", setString(func(c *Config) *string { return &c.Storage.DBPath })},
	{"TABULA_KEY", setString(func(c *Config) *string { return &c.Storage.Key })},
	{"TABULA_THEME", setString(func(c *Config) *string { return &c.UI.Theme })},
	{"TABULA_COL_WIDTH", setInt(func(c *Config) *int { return &c.UI.ColWidth })},
	{"TABULA_ROW_LINES", setInt(func(c *Config) *int { return &c.UI.RowLines })},
}

func setString(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, raw string) error {
		*field(c) = raw
		return nil
	}
}

func setInt(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

// expandPath expands a leading ~/ to the home directory.
func expandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Storage.DBPath != "", "db_path must be set")
	check(strings.TrimSpace(c.Storage.Key) != "", "key must be set")
	check(c.Grid.Columns >= 1, "columns must be at least 1, got %d", c.Grid.Columns)
	check(c.Grid.Rows >= 1, "rows must be at least 1, got %d", c.Grid.Rows)
	check(c.UI.ColWidth >= MinColWidth && c.UI.ColWidth <= MaxColWidth,
		"col_width must be between %d and %d, got %d", MinColWidth, MaxColWidth, c.UI.ColWidth)
	check(c.UI.RowLines >= MinRowLines && c.UI.RowLines <= MaxRowLines,
		"row_lines must be between %d and %d, got %d", MinRowLines, MaxRowLines, c.UI.RowLines)
	return errors.Join(errs...)
}

// SaveTo writes the configuration to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
