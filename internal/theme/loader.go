// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/parley-edit/parley/internal/logger"
)

// styleDef is the TOML shape of one named style.
type styleDef struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

// themeFile is the TOML shape of a theme definition.
type themeFile struct {
	Name   string              `toml:"name"`
	IsDark bool                `toml:"is_dark"`
	Styles map[string]styleDef `toml:"styles"`
}

// LoadFromFile reads a theme definition from a TOML file. Color values are
// anything tcell.GetColor understands (names or #rrggbb). A missing file is
// reported as an error; the caller decides whether to fall back.
func LoadFromFile(path string) (*Theme, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", path, err)
	}

	var tf themeFile
	metadata, err := toml.DecodeFile(path, &tf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", path, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme file '%s': Unrecognized keys: %v", path, metadata.Undecoded())
	}

	t := &Theme{
		Name:   tf.Name,
		IsDark: tf.IsDark,
		Styles: make(map[string]tcell.Style, len(tf.Styles)),
	}
	for name, def := range tf.Styles {
		style := tcell.StyleDefault
		if def.Foreground != "" {
			style = style.Foreground(tcell.GetColor(def.Foreground))
		}
		if def.Background != "" {
			style = style.Background(tcell.GetColor(def.Background))
		}
		style = style.Bold(def.Bold).Italic(def.Italic).Underline(def.Underline)
		t.Styles[name] = style
	}

	// A theme without a Default style renders unpainted cells oddly; borrow
	// the built-in one.
	if _, ok := t.Styles["Default"]; !ok {
		t.Styles["Default"] = TranscriptDark.GetStyle("Default")
	}
	return t, nil
}
