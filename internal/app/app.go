// internal/app/app.go
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/controller"
	"github.com/parley-edit/parley/internal/core"
	"github.com/parley-edit/parley/internal/event"
	"github.com/parley-edit/parley/internal/input"
	"github.com/parley-edit/parley/internal/logger"
	"github.com/parley-edit/parley/internal/statusbar"
	"github.com/parley-edit/parley/internal/store"
	"github.com/parley-edit/parley/internal/theme"
	"github.com/parley-edit/parley/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	controller   *controller.Controller
	activeTheme  *theme.Theme

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	st := store.New()
	loadStatus := ""
	if filePath != "" {
		if loadErr := st.Load(filePath); loadErr != nil {
			logger.Warnf("App: error loading '%s': %v", filePath, loadErr)
			loadStatus = fmt.Sprintf("Error loading file: %v", loadErr)
		}
	}

	// One-time load normalization; edits never re-trigger it.
	if merged := st.Normalize(); merged > 0 {
		logger.Infof("App: auto-merged %d same-speaker record(s) on load", merged)
	}

	editor := core.NewEditor(st, cfg.Editor.UndoDepth)

	inputProcessor := input.NewProcessor()
	statusBar := statusbar.New()
	eventManager := event.NewManager()
	quitChan := make(chan struct{})

	ctrl := controller.New(controller.Config{
		Editor:           editor,
		InputProcessor:   inputProcessor,
		EventManager:     eventManager,
		StatusBar:        statusBar,
		QuitSignal:       quitChan,
		AutosaveInterval: cfg.Editor.AutosaveInterval,
	})

	appInstance := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		controller:    ctrl,
		activeTheme:   loadTheme(),
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeCursorMoved, appInstance.handleCursorMovedForStatus)
	eventManager.Subscribe(event.TypeRecordsModified, appInstance.handleRecordsModifiedForStatus)
	eventManager.Subscribe(event.TypeFileSaved, appInstance.handleFileSavedForStatus)

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	if loadStatus != "" {
		statusBar.SetTemporaryMessage(loadStatus)
	} else if filePath != "" {
		eventManager.Dispatch(event.TypeFileLoaded, event.FileLoadedData{FilePath: filePath})
	}

	return appInstance, nil
}

// loadTheme picks up a user theme from the config directory, falling back to
// the built-in one.
func loadTheme() *theme.Theme {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return theme.GetCurrentTheme()
	}
	path := filepath.Join(configDir, config.ConfigDirName, config.DefaultThemeFileName)
	t, err := theme.LoadFromFile(path)
	if err != nil {
		logger.Debugf("App: no user theme (%v), using built-in", err)
		return theme.GetCurrentTheme()
	}
	theme.SetCurrentTheme(t)
	return t
}

// Run starts the application's event and drawing loops and blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("parley -- ` save | ~ quit | Tab field | Del undo")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.Store().IsModified() {
				logger.Warnf("App: exited with unsaved changes")
			}
			logger.Infof("App: exiting")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.editor.SetViewSize(w, h)
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating key events to the Controller.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.controller.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawEditor(a.tuiManager, a.editor, a.activeTheme)
	a.statusBar.Draw(screen, width, height, a.activeTheme)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	st := a.editor.Store()
	a.statusBar.SetFileInfo(st.FilePath(), st.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor(), a.editor.CurrentRecord())
}

// --- Event handlers (App reacts to events) ---

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.Cursor, data.Record)
	}
	return false
}

func (a *App) handleRecordsModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

func (a *App) handleFileSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}
