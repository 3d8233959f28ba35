package desktop

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/awsl-project/entrainde/internal/visibility"
)

// ErrWindowNotReady is returned before the Wails runtime context is attached.
var ErrWindowNotReady = errors.New("window runtime not ready")

var errNoScreen = errors.New("no screen reported")

// MainWindow adapts the Wails main window to visibility.Window.
//
// Wails v2 cannot report whether the window is shown, so the window keeps
// that flag itself, updated by its own Show and Hide. Minimised is always
// asked of the runtime.
type MainWindow struct {
	mu        sync.Mutex
	ctx       context.Context
	anchor    Anchor
	visible   bool
	destroyed bool
}

var _ visibility.Window = (*MainWindow)(nil)

// NewMainWindow creates the adapter. visible is the window's state at
// startup (false when started hidden).
func NewMainWindow(anchor Anchor, visible bool) *MainWindow {
	return &MainWindow{anchor: anchor, visible: visible}
}

// Attach binds the window to the runtime context received in OnStartup.
func (w *MainWindow) Attach(ctx context.Context) {
	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()
}

// Destroyed reports whether Destroy has been called.
func (w *MainWindow) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

func (w *MainWindow) runtimeCtx() (context.Context, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return nil, visibility.ErrWindowNotFound
	}
	if w.ctx == nil {
		return nil, ErrWindowNotReady
	}
	return w.ctx, nil
}

func (w *MainWindow) IsVisible() (bool, error) {
	if _, err := w.runtimeCtx(); err != nil {
		return false, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, nil
}

func (w *MainWindow) IsMinimised() (bool, error) {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return false, err
	}
	return runtime.WindowIsMinimised(ctx), nil
}

// MoveToTray places the window in the tray corner of the current screen.
func (w *MainWindow) MoveToTray() error {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return err
	}
	screens, err := runtime.ScreenGetAll(ctx)
	if err != nil {
		return err
	}
	screen, ok := pickScreen(toScreenInfo(screens))
	if !ok {
		return errNoScreen
	}
	width, height := runtime.WindowGetSize(ctx)
	x, y := w.anchor.Place(screen.width, screen.height, width, height)
	runtime.WindowSetPosition(ctx, x, y)
	return nil
}

func (w *MainWindow) Unminimise() error {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return err
	}
	runtime.WindowUnminimise(ctx)
	return nil
}

func (w *MainWindow) Show() error {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return err
	}
	runtime.WindowShow(ctx)
	w.setVisible(true)
	return nil
}

// Focus brings the window to the front. Wails v2 has no focus call; toggling
// always-on-top raises the window on every platform.
func (w *MainWindow) Focus() error {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return err
	}
	runtime.WindowSetAlwaysOnTop(ctx, true)
	runtime.WindowSetAlwaysOnTop(ctx, false)
	return nil
}

func (w *MainWindow) Hide() error {
	ctx, err := w.runtimeCtx()
	if err != nil {
		return err
	}
	runtime.WindowHide(ctx)
	w.setVisible(false)
	return nil
}

// Destroy hides the window for good. Every later call reports
// visibility.ErrWindowNotFound; a second Destroy is a no-op.
func (w *MainWindow) Destroy() error {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return nil
	}
	w.destroyed = true
	w.visible = false
	ctx := w.ctx
	w.mu.Unlock()

	if ctx != nil {
		runtime.WindowHide(ctx)
	}
	return nil
}

func (w *MainWindow) setVisible(v bool) {
	w.mu.Lock()
	w.visible = v
	w.mu.Unlock()
}

type screenInfo struct {
	current bool
	primary bool
	width   int
	height  int
}

func toScreenInfo(screens []runtime.Screen) []screenInfo {
	out := make([]screenInfo, len(screens))
	for i, s := range screens {
		out[i] = screenInfo{
			current: s.IsCurrent,
			primary: s.IsPrimary,
			width:   s.Size.Width,
			height:  s.Size.Height,
		}
	}
	return out
}

// pickScreen prefers the screen holding the window, then the primary one.
func pickScreen(screens []screenInfo) (screenInfo, bool) {
	for _, s := range screens {
		if s.current {
			return s, true
		}
	}
	for _, s := range screens {
		if s.primary {
			return s, true
		}
	}
	if len(screens) > 0 {
		return screens[0], true
	}
	return screenInfo{}, false
}
