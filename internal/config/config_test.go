package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// isolateEnv clears every TABULA_* override for the duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v.name, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Key != "savedTable" {
		t.Errorf("key = %q, want savedTable", cfg.Storage.Key)
	}
	if cfg.Grid.Columns != 3 || cfg.Grid.Rows != 3 {
		t.Errorf("grid = %dx%d, want 3x3", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if cfg.UI != (UIConfig{Theme: "mocha", ColWidth: 16, RowLines: 2}) {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if !strings.HasSuffix(cfg.Storage.DBPath, filepath.Join("tabula", "tabula.db")) {
		t.Errorf("db path = %q", cfg.Storage.DBPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			content: `
[storage]
db_path = "/tmp/test.db"
key = "budget"

[grid]
columns = 5
rows = 2

[ui]
theme = "latte"
col_width = 20
row_lines = 3
`,
			check: func(t *testing.T, cfg *Config) {
				want := Config{
					Storage: StorageConfig{DBPath: "/tmp/test.db", Key: "budget"},
					Grid:    GridConfig{Columns: 5, Rows: 2},
					UI:      UIConfig{Theme: "latte", ColWidth: 20, RowLines: 3},
				}
				if *cfg != want {
					t.Errorf("config = %+v, want %+v", *cfg, want)
				}
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "[ui]\ntheme = \"frappe\"\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.UI.Theme != "frappe" {
					t.Errorf("theme = %q", cfg.UI.Theme)
				}
				if cfg.UI.RowLines != 2 || cfg.Grid.Columns != 3 || cfg.Storage.Key != "savedTable" {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	isolateEnv(t)
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.ColWidth != 16 {
		t.Errorf("col_width = %d, want the default", cfg.UI.ColWidth)
	}
}

func TestLoadFromEnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "[storage]\ndb_path = \"/tmp/test.db\"\nkey = \"fromfile\"\n")
	t.Setenv("TABULA_KEY", "fromenv")
	t.Setenv("TABULA_DB_PATH", "/tmp/env.db")
	t.Setenv("TABULA_THEME", "macchiato")
	t.Setenv("TABULA_COL_WIDTH", "24")
	t.Setenv("TABULA_ROW_LINES", "4")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	want := StorageConfig{DBPath: "/tmp/env.db", Key: "fromenv"}
	if cfg.Storage != want {
		t.Errorf("storage = %+v, want %+v", cfg.Storage, want)
	}
	if cfg.UI != (UIConfig{Theme: "macchiato", ColWidth: 24, RowLines: 4}) {
		t.Errorf("ui = %+v", cfg.UI)
	}
}

func TestLoadFromErrors(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{name: "bad env number", env: map[string]string{"TABULA_ROW_LINES": "two"}, wantErr: "TABULA_ROW_LINES"},
		{name: "invalid toml", content: "[storage\nkey =", wantErr: "parsing config file"},
		{name: "out of range", content: "[ui]\nrow_lines = 1\n", wantErr: "row_lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want one mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got, want := expandPath("~/data/tabula.db"), filepath.Join(home, "data", "tabula.db"); got != want {
		t.Errorf("expandPath = %s, want %s", got, want)
	}
	if got := expandPath("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed: %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "empty db path", modify: func(c *Config) { c.Storage.DBPath = "" }, wantErr: "db_path"},
		{name: "blank key", modify: func(c *Config) { c.Storage.Key = "  " }, wantErr: "key"},
		{name: "zero columns", modify: func(c *Config) { c.Grid.Columns = 0 }, wantErr: "columns"},
		{name: "zero rows", modify: func(c *Config) { c.Grid.Rows = 0 }, wantErr: "rows"},
		{name: "narrow columns", modify: func(c *Config) { c.UI.ColWidth = 2 }, wantErr: "col_width"},
		{name: "wide columns", modify: func(c *Config) { c.UI.ColWidth = 100 }, wantErr: "col_width"},
		{name: "single line rows", modify: func(c *Config) { c.UI.RowLines = 1 }, wantErr: "row_lines"},
		{name: "tall rows", modify: func(c *Config) { c.UI.RowLines = 9 }, wantErr: "row_lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want one containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Grid.Rows = 0
	cfg.UI.ColWidth = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"rows", "col_width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("err = %v, missing %q", err, want)
		}
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Storage = StorageConfig{DBPath: "/tmp/saved.db", Key: "saved"}
	cfg.UI.RowLines = 3

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded = %+v, want %+v", *loaded, *cfg)
	}
}
