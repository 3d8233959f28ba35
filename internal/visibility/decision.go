// Package visibility decides whether the main window is shown, hidden or
// destroyed in response to window, tray and menu events.
//
// There is exactly one main window per process. The debounce clock is shared
// process-wide and is not keyed by window.
package visibility

import (
	"errors"
	"time"
)

// DebounceThreshold is how long after a focus-loss hide a tray click is
// treated as fallout of that hide and ignored.
const DebounceThreshold = 200 * time.Millisecond

// ErrWindowNotFound is returned by a Window whose underlying resource no
// longer exists. The controller treats it as a successful no-op.
var ErrWindowNotFound = errors.New("window not found")

// Window is the main window as seen by the controller. It is borrowed for
// the duration of one call and never retained.
type Window interface {
	IsVisible() (bool, error)
	IsMinimised() (bool, error)
	MoveToTray() error
	Unminimise() error
	Show() error
	Focus() error
	Hide() error
	Destroy() error
}

// Action is the single thing a decision does to the window.
type Action int

const (
	ActionIgnore Action = iota
	ActionShow
	ActionHide
	ActionDestroy
)

func (a Action) String() string {
	switch a {
	case ActionShow:
		return "show"
	case ActionHide:
		return "hide"
	case ActionDestroy:
		return "destroy"
	default:
		return "ignore"
	}
}

// Event is what triggered a decision.
type Event int

const (
	EventCloseRequested Event = iota
	EventFocusLost
	EventTrayClick
	EventTrayToggle
	EventMenuOpen
	EventMenuQuit
	EventDestroyRequested
)

func (e Event) String() string {
	switch e {
	case EventCloseRequested:
		return "close-requested"
	case EventFocusLost:
		return "focus-lost"
	case EventTrayClick:
		return "tray-click"
	case EventTrayToggle:
		return "tray-toggle"
	case EventMenuOpen:
		return "menu-open"
	case EventMenuQuit:
		return "menu-quit"
	case EventDestroyRequested:
		return "destroy-requested"
	default:
		return "unknown"
	}
}

// Observation is a fresh read of the window's visible and minimised flags.
// Err is set when either query failed.
type Observation struct {
	Visible   bool
	Minimised bool
	Err       error
}

// Observe queries w. Both flags are read on every call; nothing is cached.
func Observe(w Window) Observation {
	visible, err := w.IsVisible()
	if err != nil {
		return Observation{Err: err}
	}
	minimised, err := w.IsMinimised()
	if err != nil {
		return Observation{Visible: visible, Err: err}
	}
	return Observation{Visible: visible, Minimised: minimised}
}

// State is the logical window state derived from an Observation.
type State int

const (
	StateHidden State = iota
	StateVisible
	StateMinimised
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateMinimised:
		return "minimised"
	case StateDestroyed:
		return "destroyed"
	default:
		return "hidden"
	}
}

// DeriveState maps an observation to a State. An observation that failed
// because the window is gone is Destroyed; any other failure reads as Hidden.
func DeriveState(obs Observation) State {
	switch {
	case errors.Is(obs.Err, ErrWindowNotFound):
		return StateDestroyed
	case obs.Err != nil, !obs.Visible:
		return StateHidden
	case obs.Minimised:
		return StateMinimised
	default:
		return StateVisible
	}
}

// Decide is the pure decision table. elapsed and recorded come from
// DebounceClock.ElapsedSince; obs is only consulted for toggles.
func Decide(ev Event, obs Observation, elapsed time.Duration, recorded bool) Action {
	switch ev {
	case EventCloseRequested, EventFocusLost:
		return ActionHide
	case EventTrayClick:
		if recorded && elapsed < DebounceThreshold {
			return ActionIgnore
		}
		return ActionShow
	case EventTrayToggle:
		if obs.Err != nil || !obs.Visible || obs.Minimised {
			return ActionShow
		}
		return ActionHide
	case EventMenuOpen:
		return ActionShow
	case EventMenuQuit, EventDestroyRequested:
		return ActionDestroy
	default:
		return ActionIgnore
	}
}
