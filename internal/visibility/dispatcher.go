package visibility

import (
	"fmt"
	"sync"
)

// WindowEventKind tags a window-level event.
type WindowEventKind int

const (
	WindowCloseRequested WindowEventKind = iota
	WindowFocusChanged
)

// CloseRequest lets a handler suppress the host's default close action.
type CloseRequest struct {
	mu        sync.Mutex
	prevented bool
}

// PreventDefault stops the host from closing the window.
func (r *CloseRequest) PreventDefault() {
	r.mu.Lock()
	r.prevented = true
	r.mu.Unlock()
}

// Prevented reports whether PreventDefault was called.
func (r *CloseRequest) Prevented() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prevented
}

// WindowEvent is delivered by the window host. Close is set for
// WindowCloseRequested; Focused is set for WindowFocusChanged.
type WindowEvent struct {
	Kind    WindowEventKind
	Focused bool
	Close   *CloseRequest
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// ButtonTransition is the edge of a button event.
type ButtonTransition int

const (
	TransitionPress ButtonTransition = iota
	TransitionRelease
)

// PointerEvent is a tray icon pointer event.
type PointerEvent struct {
	Button     MouseButton
	Transition ButtonTransition
}

// WindowEventSource delivers window-level events.
type WindowEventSource interface {
	OnWindowEvent(handler func(WindowEvent))
}

// TraySource delivers tray icon pointer events and tray menu selections.
type TraySource interface {
	OnPointer(handler func(PointerEvent))
	OnMenuSelect(handler func(id string))
}

// ClickPolicy selects how a tray icon click is interpreted.
type ClickPolicy int

const (
	// ClickDebounce shows the window unless the click follows a focus-loss
	// hide too closely.
	ClickDebounce ClickPolicy = iota
	// ClickToggle flips visibility and does not consult the debounce clock.
	ClickToggle
)

// ParseClickPolicy parses "debounce" or "toggle". Empty means debounce.
func ParseClickPolicy(s string) (ClickPolicy, error) {
	switch s {
	case "", "debounce":
		return ClickDebounce, nil
	case "toggle":
		return ClickToggle, nil
	default:
		return ClickDebounce, fmt.Errorf("unknown click policy %q", s)
	}
}

func (p ClickPolicy) String() string {
	if p == ClickToggle {
		return "toggle"
	}
	return "debounce"
}

// Dispatcher routes host events for the single main window to a Controller.
// Handlers run one at a time, whichever goroutine the host delivers on.
type Dispatcher struct {
	mu     sync.Mutex
	ctrl   *Controller
	window Window
	policy ClickPolicy
}

// NewDispatcher binds ctrl to the main window.
func NewDispatcher(ctrl *Controller, window Window, policy ClickPolicy) *Dispatcher {
	return &Dispatcher{
		ctrl:   ctrl,
		window: window,
		policy: policy,
	}
}

// Register installs one handler on each event source. Either may be nil.
func (d *Dispatcher) Register(ws WindowEventSource, ts TraySource) {
	if ws != nil {
		ws.OnWindowEvent(d.HandleWindowEvent)
	}
	if ts != nil {
		ts.OnPointer(d.HandlePointer)
		ts.OnMenuSelect(d.HandleMenuSelect)
	}
}

// HandleWindowEvent handles close requests and focus changes.
func (d *Dispatcher) HandleWindowEvent(ev WindowEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev.Kind {
	case WindowCloseRequested:
		d.ctrl.OnCloseRequested(d.window)
		if ev.Close != nil {
			ev.Close.PreventDefault()
		}
	case WindowFocusChanged:
		if !ev.Focused {
			d.ctrl.OnFocusLost(d.window)
		}
	}
}

// HandlePointer handles tray icon pointer events. Only a left-button
// release counts as a click.
func (d *Dispatcher) HandlePointer(ev PointerEvent) {
	if ev.Button != ButtonLeft || ev.Transition != TransitionRelease {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.policy == ClickToggle {
		d.ctrl.OnTrayToggle(d.window)
		return
	}
	d.ctrl.OnTrayClick(d.window)
}

// HandleMenuSelect handles a tray menu selection.
func (d *Dispatcher) HandleMenuSelect(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctrl.OnMenuSelect(d.window, id)
}

// Quit destroys the window, e.g. on process shutdown.
func (d *Dispatcher) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctrl.OnDestroyRequested(d.window)
}
