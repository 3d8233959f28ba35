// Package tray runs the system tray icon and its menu.
package tray

import (
	_ "embed"
	"log"
	"sync/atomic"

	"github.com/awsl-project/entrainde/internal/visibility"
)

//go:embed icon.ico
var iconData []byte

const (
	title   = "Entrainde"
	tooltip = "Entrainde - suivi des tâches"
)

// Emitter receives tray callbacks.
type Emitter interface {
	EmitPointer(ev visibility.PointerEvent)
	EmitMenu(id string)
}

type menuEntry struct {
	id      string
	label   string
	tooltip string
}

// menuEntries is the tray menu, top to bottom.
var menuEntries = []menuEntry{
	{visibility.MenuOpen, "Ouvrir", "Afficher la fenêtre principale"},
	{visibility.MenuClear, "Effacer toutes les tâches", "Supprimer toutes les tâches enregistrées"},
	{visibility.MenuQuit, "Quitter", "Quitter l'application"},
}

// Tray 管理系统托盘
type Tray struct {
	events  Emitter
	started atomic.Bool
}

func New(events Emitter) *Tray {
	return &Tray{events: events}
}

// Start runs the tray loop and blocks until Quit.
func (t *Tray) Start() {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	run(t.onReady, t.onExit)
}

// Quit stops the tray loop. It is a no-op if Start never ran.
func (t *Tray) Quit() {
	if t.started.Load() {
		quit()
	}
}

func (t *Tray) click() {
	t.events.EmitPointer(visibility.PointerEvent{
		Button:     visibility.ButtonLeft,
		Transition: visibility.TransitionRelease,
	})
}

func (t *Tray) selectItem(id string) {
	log.Printf("[Tray] Menu %q clicked", id)
	t.events.EmitMenu(id)
}

func (t *Tray) onExit() {
	log.Println("[Tray] System tray exited")
}
