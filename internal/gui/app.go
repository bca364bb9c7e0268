// Package gui shows the clipboard history in a small fyne window.
package gui

import (
	"context"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/berrythewa/clipcycle/internal/config"
	"github.com/berrythewa/clipcycle/internal/gui/theme"
	"github.com/berrythewa/clipcycle/internal/gui/views"
	"github.com/berrythewa/clipcycle/internal/types"
)

// AppID identifies the application to fyne preferences storage
const AppID = "com.berrythewa.clipcycle"

// Source provides history snapshots to render
type Source interface {
	Snapshot() types.Snapshot
}

// Controller performs the actions offered by the window
type Controller interface {
	Clear()
}

// App represents the main GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	mainView   *views.MainView

	config     config.WindowConfig
	source     Source
	controller Controller
	logger     *zap.Logger

	refresh chan struct{}
	stop    context.CancelFunc
	closed  atomic.Bool
	quit    func()
}

// NewApp creates the window for a history of the given capacity
func NewApp(cfg config.WindowConfig, capacity int, source Source, controller Controller, logger *zap.Logger) *App {
	return newApp(app.NewWithID(AppID), cfg, capacity, source, controller, logger)
}

func newApp(fyneApp fyne.App, cfg config.WindowConfig, capacity int, source Source, controller Controller, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	fyneApp.Settings().SetTheme(theme.NewCustomTheme())

	a := &App{
		fyneApp:    fyneApp,
		mainWindow: fyneApp.NewWindow(cfg.Title),
		config:     cfg,
		source:     source,
		controller: controller,
		logger:     logger,
		refresh:    make(chan struct{}, 1),
	}
	a.quit = fyneApp.Quit

	a.mainView = views.NewMainView(cfg.Title, capacity, a.clearHistory)
	a.setupMainWindow()
	return a
}

// setupMainWindow configures the main application window
func (a *App) setupMainWindow() {
	a.mainWindow.SetContent(a.mainView.Content())
	a.mainWindow.Resize(fyne.NewSize(a.config.Width, a.config.Height))
	a.mainWindow.SetFixedSize(true)
	a.mainWindow.SetMaster()
	a.mainWindow.SetOnClosed(a.windowClosed)
	a.render()
}

// Refresh asks for a redraw. It never blocks; requests made while one is
// pending are merged.
func (a *App) Refresh() {
	select {
	case a.refresh <- struct{}{}:
	default:
	}
}

// Run shows the window and blocks in the fyne event loop until the window is
// closed or ctx is cancelled. Closing the window calls stop. Must be called
// from the main goroutine.
func (a *App) Run(ctx context.Context, stop context.CancelFunc) {
	a.stop = stop

	go a.refreshLoop(ctx)

	a.mainWindow.ShowAndRun()
}

// refreshLoop redraws on every tick and on every Refresh request
func (a *App) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(a.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.shutdown()
			return
		case <-ticker.C:
		case <-a.refresh:
		}
		fyne.Do(a.render)
	}
}

// windowClosed runs once the event loop is ending because the user closed
// the window
func (a *App) windowClosed() {
	a.logger.Info("Window closed")
	a.closed.Store(true)
	if a.stop != nil {
		a.stop()
	}
}

// shutdown ends the event loop unless closing the window already did
func (a *App) shutdown() {
	if a.closed.Load() {
		return
	}
	fyne.Do(a.quit)
}

// render must run on the fyne thread
func (a *App) render() {
	a.mainView.Update(views.RenderSlots(a.source.Snapshot(), a.config.PreviewLength))
}

// clearHistory handles the "Clear History" button
func (a *App) clearHistory() {
	a.controller.Clear()
	a.render()
}
