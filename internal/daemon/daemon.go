// Package daemon owns the clipboard history and runs the poller, the hotkey
// dispatcher and the console sink under a single context.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/berrythewa/clipcycle/internal/clipboard"
	"github.com/berrythewa/clipcycle/internal/config"
	"github.com/berrythewa/clipcycle/internal/hotkey"
	"github.com/berrythewa/clipcycle/internal/types"
	"github.com/berrythewa/clipcycle/pkg/format"
)

// Options configures a Daemon
type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Clipboard overrides the backend selected by Config.Monitor.Backend
	Clipboard clipboard.Clipboard
	// Registrar registers the global hotkeys. Binaries pass the native
	// registrar; when nil, hotkey registration fails and the daemon runs
	// without hotkeys.
	Registrar hotkey.Registrar
	// Console receives the history stack after hotkey actions. Nil disables
	// console output.
	Console io.Writer
}

// Daemon wires one ClipboardHistory to its producers and consumers
type Daemon struct {
	id     string
	cfg    *config.Config
	logger *zap.Logger

	history    *clipboard.ClipboardHistory
	clip       clipboard.Clipboard
	monitor    *clipboard.Monitor
	dispatcher *hotkey.Dispatcher
	console    *ConsoleSink

	closeOnce sync.Once
	closeErr  error
}

// New builds a daemon from opts. The clipboard backend is opened here, so a
// missing clipboard is reported before anything starts.
func New(opts Options) (*Daemon, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("instance", id))

	bindings := hotkey.Bindings{}
	if cfg.Hotkeys.Enabled {
		var err error
		if bindings, err = cfg.Bindings(); err != nil {
			return nil, err
		}
	}

	clip := opts.Clipboard
	if clip == nil {
		var err error
		clip, err = clipboard.New(cfg.Monitor.Backend, logger.Named("clipboard"))
		if err != nil {
			return nil, fmt.Errorf("failed to open clipboard: %w", err)
		}
	}

	registrar := opts.Registrar
	if registrar == nil {
		registrar = hotkey.Unavailable{Reason: "no hotkey registrar configured"}
	}

	history := clipboard.NewClipboardHistory(cfg.History.Capacity,
		clipboard.WithIgnoreBlank(cfg.History.IgnoreBlank))
	monitor := clipboard.NewMonitor(clip, history, logger.Named("monitor"), cfg.Monitor.PollInterval)
	dispatcher := hotkey.NewDispatcher(registrar, history, monitor, bindings, logger.Named("dispatcher"))

	d := &Daemon{
		id:         id,
		cfg:        cfg,
		logger:     logger,
		history:    history,
		clip:       clip,
		monitor:    monitor,
		dispatcher: dispatcher,
	}

	if opts.Console != nil {
		d.console = NewConsoleSink(opts.Console, cfg.Console, history.Snapshot)
		dispatcher.Subscribe(d.console.HandleEvent)
		if cfg.Console.PrintOnCopy {
			monitor.OnCopy(func(string) { d.console.PrintStack() })
		}
	}

	return d, nil
}

// ID returns the instance id attached to every log line of this run
func (d *Daemon) ID() string { return d.id }

// History returns the shared clipboard history
func (d *Daemon) History() *clipboard.ClipboardHistory { return d.history }

// Dispatcher returns the hotkey dispatcher. Its Cycle and Clear methods may
// be called directly, e.g. from a GUI button, even when hotkeys are disabled.
func (d *Daemon) Dispatcher() *hotkey.Dispatcher { return d.dispatcher }

// Monitor returns the clipboard poller
func (d *Daemon) Monitor() *clipboard.Monitor { return d.monitor }

// Snapshot returns a copy of the current history
func (d *Daemon) Snapshot() types.Snapshot { return d.history.Snapshot() }

// Run starts polling and hotkeys and blocks until ctx is cancelled. A hotkey
// registration failure is logged and the daemon keeps running without them.
//
// Teardown order: hotkeys are unregistered and the poller is waited for,
// then the clipboard backend is closed and the logger synced.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("Starting clipcycle",
		zap.Int("capacity", d.history.Capacity()),
		zap.String("backend", d.clip.Name()),
		zap.Bool("hotkeys", d.cfg.Hotkeys.Enabled))

	if d.console != nil {
		d.console.PrintBanner(d.banner())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.monitor.Run(gctx)
	})
	if d.cfg.Hotkeys.Enabled {
		g.Go(func() error {
			d.runHotkeys(gctx)
			return nil
		})
	}

	err := g.Wait()

	if cerr := d.Close(); cerr != nil && err == nil {
		err = cerr
	}

	if d.console != nil {
		d.console.PrintStats(d.monitor.Stats())
		d.console.PrintExit()
	}
	d.logger.Info("clipcycle stopped")
	_ = d.logger.Sync()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runHotkeys holds the global hotkeys until ctx is done. Failing to register
// them is not fatal: polling and the sinks keep running.
func (d *Daemon) runHotkeys(ctx context.Context) {
	if err := d.dispatcher.Run(ctx); err != nil {
		d.logger.Error("Global hotkeys unavailable, continuing without them", zap.Error(err))
		if d.console != nil {
			d.console.PrintWarning(err.Error())
		}
	}
}

// Close releases the clipboard backend. It is safe to call more than once.
func (d *Daemon) Close() error {
	d.closeOnce.Do(func() {
		d.dispatcher.Stop()
		if err := d.clip.Close(); err != nil {
			d.closeErr = fmt.Errorf("failed to close clipboard: %w", err)
		}
	})
	return d.closeErr
}

func (d *Daemon) banner() format.Banner {
	return format.Banner{
		Slots:              d.history.Capacity(),
		CycleHotkey:        d.cfg.Hotkeys.Cycle,
		ClearHotkey:        d.cfg.Hotkeys.Clear,
		HotkeysEnabled:     d.cfg.Hotkeys.Enabled,
		NeedsAccessibility: config.GetPlatformDefaults().NeedsAccessibility,
		Backend:            d.clip.Name(),
	}
}
