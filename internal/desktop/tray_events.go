package desktop

import (
	"sync"

	"github.com/awsl-project/entrainde/internal/visibility"
)

// TrayEvents fans tray host callbacks out to registered handlers. The tray
// host calls Emit*; the dispatcher registers through visibility.TraySource.
type TrayEvents struct {
	mu      sync.RWMutex
	pointer []func(visibility.PointerEvent)
	menu    []func(string)
}

var _ visibility.TraySource = (*TrayEvents)(nil)

func NewTrayEvents() *TrayEvents {
	return &TrayEvents{}
}

func (e *TrayEvents) OnPointer(handler func(visibility.PointerEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pointer = append(e.pointer, handler)
}

func (e *TrayEvents) OnMenuSelect(handler func(string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu = append(e.menu, handler)
}

// EmitPointer delivers a pointer event on the icon.
func (e *TrayEvents) EmitPointer(ev visibility.PointerEvent) {
	e.mu.RLock()
	handlers := append([]func(visibility.PointerEvent){}, e.pointer...)
	e.mu.RUnlock()
	for _, h := range handlers {
		h(ev)
	}
}

// EmitMenu delivers a menu selection.
func (e *TrayEvents) EmitMenu(id string) {
	e.mu.RLock()
	handlers := append([]func(string){}, e.menu...)
	e.mu.RUnlock()
	for _, h := range handlers {
		h(id)
	}
}
