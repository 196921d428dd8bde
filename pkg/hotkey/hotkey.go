package hotkey

import (
	"time"

	"golang.design/x/hotkey"

	"github.com/dixieflatline76/Pique/util/log"
)

// StartListener registers the global open-picker shortcut (Ctrl+Alt+O,
// Cmd+Option+O on macOS) and invokes openPicker on every press. It is a
// no-op on platforms without global hotkey support.
func StartListener(openPicker func()) {
	if !supported {
		log.Println("Global hotkeys not supported on this platform")
		return
	}
	if !HasAccessibility() {
		log.Println("Accessibility permission missing, global hotkey disabled")
		return
	}

	hkOpen := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyO)

	if err := hkOpen.Register(); err != nil {
		log.Printf("Failed to register open-picker hotkey: %v", err)
		return
	}
	log.Printf("Registered hotkey: Open Picker")

	go func() {
		for range hkOpen.Keydown() {
			log.Debugf("Hotkey pressed: Open Picker")
			openPicker()
			// Swallow key repeat while the dialog comes up
			time.Sleep(200 * time.Millisecond)
		}
	}()
}
