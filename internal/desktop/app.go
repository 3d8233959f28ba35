package desktop

import (
	"context"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/awsl-project/entrainde/internal/visibility"
)

// FocusEvent is emitted by the frontend on window focus and blur with a
// single boolean payload.
const FocusEvent = "window:focus"

// App 负责 Wails 生命周期，并把窗口事件转交给可见性控制器
type App struct {
	ctx    context.Context
	window *MainWindow

	// hideToTray is false when no tray icon is hosted; the window must then
	// stay reachable, so close exits and focus loss does nothing.
	hideToTray bool

	mu         sync.RWMutex
	handlers   []func(visibility.WindowEvent)
	onShutdown []func()

	ready     chan struct{}
	readyOnce sync.Once
}

var _ visibility.WindowEventSource = (*App)(nil)

func NewApp(window *MainWindow, hideToTray bool) *App {
	return &App{
		window:     window,
		hideToTray: hideToTray,
		ready:      make(chan struct{}),
	}
}

// OnWindowEvent registers a handler for close and focus events.
func (a *App) OnWindowEvent(handler func(visibility.WindowEvent)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers = append(a.handlers, handler)
}

// OnShutdown registers fn to run when the Wails app shuts down.
func (a *App) OnShutdown(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onShutdown = append(a.onShutdown, fn)
}

// Ready is closed once Startup has run.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Startup 保存 runtime context 并订阅前端焦点事件
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.window.Attach(ctx)
	runtime.EventsOn(ctx, FocusEvent, a.handleFocusEvent)
	log.Println("[Window] Runtime attached")
	a.readyOnce.Do(func() { close(a.ready) })
}

func (a *App) DomReady(ctx context.Context) {
	log.Println("[Window] DOM ready")
}

// BeforeClose hides the window instead of closing it. Once the window has
// been destroyed from the tray, or when there is no tray, the close goes
// through.
func (a *App) BeforeClose(ctx context.Context) bool {
	if !a.hideToTray {
		log.Println("[Window] Close requested, no tray icon - exiting")
		return false
	}
	if a.window.Destroyed() {
		log.Println("[Window] Close requested after quit, exiting")
		return false
	}
	req := &visibility.CloseRequest{}
	a.emit(visibility.WindowEvent{Kind: visibility.WindowCloseRequested, Close: req})
	if req.Prevented() {
		log.Println("[Window] Close requested - hidden to tray")
	}
	return req.Prevented()
}

func (a *App) Shutdown(ctx context.Context) {
	log.Println("[Window] Shutting down")
	a.mu.RLock()
	fns := append([]func(){}, a.onShutdown...)
	a.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// Quit ends the Wails run loop. It returns immediately; the runtime may
// call back into BeforeClose and Shutdown from its own thread.
func (a *App) Quit() {
	if a.ctx == nil {
		log.Println("[Window] Quit before startup, ignored")
		return
	}
	go runtime.Quit(a.ctx)
}

func (a *App) handleFocusEvent(data ...interface{}) {
	if !a.hideToTray {
		return
	}
	focused, ok := parseFocusPayload(data)
	if !ok {
		log.Printf("[Window] Ignoring malformed %s payload: %v", FocusEvent, data)
		return
	}
	a.emit(visibility.WindowEvent{Kind: visibility.WindowFocusChanged, Focused: focused})
}

func (a *App) emit(ev visibility.WindowEvent) {
	a.mu.RLock()
	handlers := append([]func(visibility.WindowEvent){}, a.handlers...)
	a.mu.RUnlock()
	for _, h := range handlers {
		h(ev)
	}
}

func parseFocusPayload(data []interface{}) (bool, bool) {
	if len(data) == 0 {
		return false, false
	}
	switch v := data[0].(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}
