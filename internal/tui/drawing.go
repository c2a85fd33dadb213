// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/core"
	"github.com/parley-edit/parley/internal/theme"
	"github.com/parley-edit/parley/internal/types"
)

// drawString paints s starting at (x, y), clipping at maxX. Returns the x
// position after the last cell written.
func drawString(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// DrawEditor paints the visible slice of the display table: a right-aligned
// row-number gutter, the fixed-width speaker column and the wrapped content
// column, one display segment per screen row.
func DrawEditor(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	speakerStyle := activeTheme.GetStyle("Speaker")
	contentStyle := activeTheme.GetStyle("Content")

	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	visibleRows := height - config.StatusBarHeight
	if visibleRows <= 0 || width <= 0 {
		return
	}

	table := editor.Table()
	scroll := editor.Scroll()
	store := editor.Store()

	speakerX := config.LineNumWidth + config.ColSep
	contentX := config.LineNumWidth + config.SpeakerWidth + 2*config.ColSep

	for screenY := 0; screenY < visibleRows; screenY++ {
		for fillX := 0; fillX < width; fillX++ {
			screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		rowIdx := scroll + screenY
		if rowIdx < 0 || rowIdx >= len(table) {
			continue
		}
		seg := table[rowIdx]
		rec := store.Record(seg.Record)

		lineNum := fmt.Sprintf("%*d", config.LineNumWidth, rowIdx+1)
		drawString(screen, 0, screenY, config.LineNumWidth, lineNum, lineNumberStyle)

		speaker := runewidth.FillRight(runewidth.Truncate(rec.Speaker, config.SpeakerWidth, ""), config.SpeakerWidth)
		drawString(screen, speakerX, screenY, speakerX+config.SpeakerWidth, speaker, speakerStyle)

		drawString(screen, contentX, screenY, width, seg.Text, contentStyle)
	}
}

// DrawCursor positions the hardware cursor over the active field.
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	screen := tuiManager.GetScreen()
	width, height := tuiManager.Size()
	visibleRows := height - config.StatusBarHeight

	cursor := editor.Cursor()

	var x int
	if cursor.Field == types.FieldSpeaker {
		x = config.LineNumWidth + config.ColSep + cursor.Col
	} else {
		x = config.LineNumWidth + config.SpeakerWidth + 2*config.ColSep + cursor.Col
	}
	if x >= width {
		x = width - 1
	}

	y := cursor.Row - editor.Scroll()
	if y < 0 {
		y = 0
	} else if y >= visibleRows {
		y = visibleRows - 1
	}

	if visibleRows <= 0 || width <= 0 {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(x, y)
}
