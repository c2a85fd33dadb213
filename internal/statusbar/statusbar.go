// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/theme"
	"github.com/parley-edit/parley/internal/types"
	"github.com/rivo/uniseg"
)

// StatusBar is the one-line UI component at the bottom of the screen. It
// shows file and cursor info by default and temporary messages (statuses,
// save confirmations, diagnostics) for a configured duration.
type StatusBar struct {
	mu sync.RWMutex

	messageTimeout time.Duration

	filePath   string
	isModified bool
	cursor     types.Cursor
	record     int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a StatusBar with the default message timeout.
func New() *StatusBar {
	return &StatusBar{
		messageTimeout: config.MessageTimeout,
	}
}

// SetFileInfo updates the file path and modified indicator.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(cursor types.Cursor, record int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursor = cursor
	sb.record = record
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, or "" if none (or expired).
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.tempMessageTime.IsZero() || time.Since(sb.tempMessageTime) > sb.messageTimeout {
		return ""
	}
	return sb.tempMessage
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Entry: %d, Row: %d, Col: %d (%s)",
		fPath, modifiedIndicator, sb.record+1, sb.cursor.Row+1, sb.cursor.Col, sb.cursor.Field)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.messageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	if isTempMsgActive {
		text = sb.tempMessage
		style = activeTheme.GetStyle("StatusBarMessage")
	} else {
		text = sb.getDefaultDisplayText()
		style = activeTheme.GetStyle("StatusBar")
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg so cluster widths stay correct.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}
		currentX += clusterWidth
	}
}
