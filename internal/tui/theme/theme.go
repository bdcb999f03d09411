// Package theme loads the color themes bundled with tabula.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured or the configured one
// does not exist.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var bundled embed.FS

// Theme is the set of hex colors a theme file defines. Only the base colors
// are required; the rest fall back to one of them.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // header row, footer bar
	BgSelection string `toml:"bg_selection"` // cursor cell
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"`
	Warning     string `toml:"warning"`

	Border string `toml:"border"` // grid lines
	Header string `toml:"header"` // header labels
	Error  string `toml:"error"`

	DialogBg     string `toml:"dialog_bg"`
	DialogBorder string `toml:"dialog_border"`
}

// Load returns the bundled theme called name, case-insensitively. Unknown
// names load the default theme.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !Exists(name) {
		name = DefaultName
	}
	data, err := bundled.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return t.resolved(), nil
}

// resolved returns a copy of t with every optional color filled in.
func (t Theme) resolved() *Theme {
	first := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}
	t.Border = first(t.Border, t.FgMuted)
	t.Header = first(t.Header, t.Accent)
	t.Error = first(t.Error, t.Warning)
	t.DialogBg = first(t.DialogBg, t.BgHighlight, t.Bg)
	t.DialogBorder = first(t.DialogBorder, t.Accent)
	return &t
}

// Names lists the bundled themes in alphabetical order.
func Names() []string {
	entries, _ := fs.ReadDir(bundled, "embedded")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	return names
}

// Exists reports whether a bundled theme is called name, ignoring case.
func Exists(name string) bool {
	return slices.Contains(Names(), strings.ToLower(name))
}
