package visibility

import (
	"errors"
	"log"
)

// Tray menu identifiers.
const (
	MenuOpen  = "open"
	MenuClear = "clear"
	MenuQuit  = "quit"
)

// TaskClearer empties the task store and persists the result.
type TaskClearer interface {
	Clear() error
}

// Controller maps events to window actions and performs them.
type Controller struct {
	clock  *DebounceClock
	tasks  TaskClearer
	quit   func()
	now    func() Timestamp
	logger *log.Logger
}

// ControllerOption customises a Controller.
type ControllerOption func(*Controller)

// WithClock replaces the time source used for debouncing.
func WithClock(now func() Timestamp) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller. quit is called after the window has
// been destroyed from the tray menu and is expected to end the process.
func NewController(clock *DebounceClock, tasks TaskClearer, quit func(), opts ...ControllerOption) *Controller {
	if clock == nil {
		clock = &DebounceClock{}
	}
	c := &Controller{
		clock:  clock,
		tasks:  tasks,
		quit:   quit,
		now:    Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clock returns the debounce clock shared by this controller's handlers.
func (c *Controller) Clock() *DebounceClock {
	return c.clock
}

// OnCloseRequested hides the window. Suppressing the host's default close
// is the caller's job.
func (c *Controller) OnCloseRequested(w Window) Action {
	return c.apply(w, Decide(EventCloseRequested, Observation{}, 0, false))
}

// OnFocusLost records the hide in the debounce clock, then hides the window.
func (c *Controller) OnFocusLost(w Window) Action {
	c.clock.RecordHide(c.now())
	return c.apply(w, Decide(EventFocusLost, Observation{}, 0, false))
}

// OnTrayClick shows the window unless the click lands within
// DebounceThreshold of the last focus-loss hide.
func (c *Controller) OnTrayClick(w Window) Action {
	elapsed, recorded := c.clock.ElapsedSince(c.now())
	action := Decide(EventTrayClick, Observation{}, elapsed, recorded)
	if action == ActionIgnore {
		c.logger.Printf("[Visibility] Tray click %dms after focus-loss hide, ignored", elapsed.Milliseconds())
	}
	return c.apply(w, action)
}

// OnTrayToggle flips visibility based on a fresh read of the window flags.
// A failed read shows the window.
func (c *Controller) OnTrayToggle(w Window) Action {
	obs := Observe(w)
	if obs.Err != nil && !errors.Is(obs.Err, ErrWindowNotFound) {
		c.logger.Printf("[Visibility] Failed to query window state, showing: %v", obs.Err)
	}
	return c.apply(w, Decide(EventTrayToggle, obs, 0, false))
}

// OnMenuSelect handles a tray menu selection.
func (c *Controller) OnMenuSelect(w Window, id string) Action {
	switch id {
	case MenuOpen:
		return c.apply(w, Decide(EventMenuOpen, Observation{}, 0, false))
	case MenuClear:
		if c.tasks == nil {
			c.logger.Printf("[Visibility] No task store attached, nothing to clear")
			return ActionIgnore
		}
		if err := c.tasks.Clear(); err != nil {
			c.logger.Printf("[Visibility] Failed to clear tasks: %v", err)
		}
		return ActionIgnore
	case MenuQuit:
		action := c.apply(w, Decide(EventMenuQuit, Observation{}, 0, false))
		if c.quit != nil {
			c.quit()
		}
		return action
	default:
		c.logger.Printf("[Visibility] Menu item %q not handled", id)
		return ActionIgnore
	}
}

// OnDestroyRequested tears the window down. Calling it again is a no-op.
func (c *Controller) OnDestroyRequested(w Window) Action {
	return c.apply(w, Decide(EventDestroyRequested, Observation{}, 0, false))
}

func (c *Controller) apply(w Window, action Action) Action {
	switch action {
	case ActionShow:
		c.show(w)
	case ActionHide:
		c.step("hide", w.Hide)
	case ActionDestroy:
		c.step("destroy", w.Destroy)
	}
	return action
}

// show runs every step even if an earlier one failed.
func (c *Controller) show(w Window) {
	c.step("move to tray", w.MoveToTray)
	c.step("unminimise", w.Unminimise)
	c.step("show", w.Show)
	c.step("focus", w.Focus)
}

func (c *Controller) step(name string, fn func() error) {
	err := fn()
	if err == nil || errors.Is(err, ErrWindowNotFound) {
		return
	}
	c.logger.Printf("[Visibility] Window %s failed: %v", name, err)
}
