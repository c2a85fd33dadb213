// internal/theme/theme.go
package theme

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Theme maps named UI elements to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to "Default" and then to
// the tcell default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}
	return tcell.StyleDefault
}

// TranscriptDark is the built-in theme.
var TranscriptDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	dimmed := tcell.NewHexColor(0x5c6370)
	amber := tcell.NewHexColor(0xe5c07b)
	blue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	TranscriptDark = Theme{
		Name:   "Transcript Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":           baseStyle,
			"LineNumber":        baseStyle.Foreground(dimmed),
			"Speaker":           baseStyle.Foreground(blue).Bold(true),
			"Content":           baseStyle,
			"StatusBar":         tcell.StyleDefault.Background(background).Foreground(foreground),
			"StatusBarMessage":  tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
			"StatusBarModified": tcell.StyleDefault.Background(background).Foreground(amber),
		},
	}
}

var (
	currentTheme   *Theme = &TranscriptDark
	currentThemeMu sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() *Theme {
	currentThemeMu.RLock()
	defer currentThemeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t *Theme) {
	if t == nil {
		return
	}
	currentThemeMu.Lock()
	defer currentThemeMu.Unlock()
	currentTheme = t
}
