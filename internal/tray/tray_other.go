//go:build !windows

package tray

import "log"

// Supported reports whether this platform hosts a tray icon. Off Windows the
// tray library would run a second native UI loop beside Wails, so no icon is
// shown and the window stays the app's only surface.
const Supported = false

func run(onReady, onExit func()) {
	log.Println("[Tray] System tray not supported on this platform")
}

func quit() {}

func (t *Tray) onReady() {}
