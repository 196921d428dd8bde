//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

const (
	supported = false

	modCtrl = hotkey.Modifier(0) // Dummy for default
	modAlt  = hotkey.Modifier(0)

	keyO = hotkey.Key(0)
)

func HasAccessibility() bool {
	return true
}
