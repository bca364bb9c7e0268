package hotkey

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrRegistration is returned when a global hotkey cannot be registered.
var ErrRegistration = errors.New("hotkey registration failed")

// Handle is a registered hotkey
type Handle interface {
	Unregister() error
}

// Registrar is the global hotkey capability. fn is invoked on a background
// goroutine every time the combination is pressed.
type Registrar interface {
	Register(b Binding, fn func()) (Handle, error)
}

// Unavailable is a Registrar for builds or platforms without global hotkeys
type Unavailable struct {
	Reason string
}

func (u Unavailable) Register(_ Binding, _ func()) (Handle, error) {
	return nil, errors.New(u.Reason)
}

// History is the part of the clipboard history the dispatcher mutates
type History interface {
	CycleActive() (string, bool)
	Clear()
}

// Activator writes an entry back to the system clipboard. The clipboard
// monitor implements it so its lastSeen state is updated atomically.
type Activator interface {
	Activate(text string) error
}

// Action identifies what a hotkey did
type Action string

const (
	ActionCycle Action = "cycle"
	ActionClear Action = "clear"
)

// Event describes a completed dispatcher action
type Event struct {
	Action Action
	// Entry is the newly active text for ActionCycle
	Entry string
	// OK is false when a cycle found no entry
	OK bool
}

// Bindings holds the two key combinations
type Bindings struct {
	Cycle Binding
	Clear Binding
}

// Dispatcher binds the cycle and clear actions to global hotkeys.
type Dispatcher struct {
	registrar Registrar
	history   History
	activator Activator
	bindings  Bindings
	logger    *zap.Logger

	mu        sync.Mutex
	handles   []Handle
	listeners []func(Event)
}

// NewDispatcher creates a dispatcher. Nothing is registered until Start.
func NewDispatcher(registrar Registrar, history History, activator Activator, bindings Bindings, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		registrar: registrar,
		history:   history,
		activator: activator,
		bindings:  bindings,
		logger:    logger,
	}
}

// Subscribe registers fn to receive every dispatcher event
func (d *Dispatcher) Subscribe(fn func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

// Start registers both bindings. If either fails, any binding already
// registered is released and an error wrapping ErrRegistration is returned.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.handles) > 0 {
		return nil
	}

	for _, bind := range []struct {
		name    string
		binding Binding
		fn      func()
	}{
		{"cycle", d.bindings.Cycle, func() { d.Cycle() }},
		{"clear", d.bindings.Clear, d.Clear},
	} {
		h, err := d.registrar.Register(bind.binding, bind.fn)
		if err != nil {
			d.unregisterLocked()
			return fmt.Errorf("%w: %s (%s): %v; %s",
				ErrRegistration, bind.name, bind.binding, err, RegistrationHint())
		}
		d.handles = append(d.handles, h)
		d.logger.Info("Hotkey registered",
			zap.String("action", bind.name),
			zap.Stringer("binding", bind.binding))
	}
	return nil
}

// Run registers both bindings and holds them until ctx is done. A
// registration failure is returned immediately.
func (d *Dispatcher) Run(ctx context.Context) error {
	if err := d.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	d.Stop()
	return nil
}

// Stop unregisters every binding. It is safe to call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unregisterLocked()
}

func (d *Dispatcher) unregisterLocked() {
	for _, h := range d.handles {
		if err := h.Unregister(); err != nil {
			d.logger.Warn("Failed to unregister hotkey", zap.Error(err))
		}
	}
	d.handles = nil
}

// Cycle makes the next history entry active and puts it on the system
// clipboard. It returns the new active entry, or false on an empty history.
func (d *Dispatcher) Cycle() (string, bool) {
	text, ok := d.history.CycleActive()
	if !ok {
		d.logger.Debug("No items to cycle")
		d.emit(Event{Action: ActionCycle})
		return "", false
	}

	if err := d.activator.Activate(text); err != nil {
		// history already moved; the next cycle or copy will resync
		d.logger.Warn("Failed to put entry on clipboard", zap.Error(err))
	}
	d.emit(Event{Action: ActionCycle, Entry: text, OK: true})
	return text, true
}

// Clear empties the history without touching the system clipboard.
func (d *Dispatcher) Clear() {
	d.history.Clear()
	d.logger.Info("History cleared")
	d.emit(Event{Action: ActionClear, OK: true})
}

func (d *Dispatcher) emit(ev Event) {
	d.mu.Lock()
	listeners := d.listeners
	d.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// Active reports whether hotkeys are currently registered
func (d *Dispatcher) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handles) > 0
}
