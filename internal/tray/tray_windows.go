//go:build windows

package tray

import (
	"log"

	"github.com/energye/systray"
)

// Supported reports whether this platform hosts a tray icon.
const Supported = true

func run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	log.Println("[Tray] Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle(title)
	systray.SetTooltip(tooltip)

	// Left click goes to the visibility controller; the menu lives on the
	// right button.
	systray.SetOnClick(func(menu systray.IMenu) {
		t.click()
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if menu == nil {
			return
		}
		if err := menu.ShowMenu(); err != nil {
			log.Printf("[Tray] Failed to show menu: %v", err)
		}
	})

	for i, entry := range menuEntries {
		if i == len(menuEntries)-1 {
			systray.AddSeparator()
		}
		id := entry.id
		item := systray.AddMenuItem(entry.label, entry.tooltip)
		item.Click(func() { t.selectItem(id) })
	}
}
