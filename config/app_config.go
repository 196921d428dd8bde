package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// UpdateCheckEnabledKey is the key for the update check enabled preference
const UpdateCheckEnabledKey = "update_check_enabled"

// HotkeyEnabledKey is the key for the global hotkey enabled preference
const HotkeyEnabledKey = "hotkey_enabled"

// DecodeTimeoutSecsKey is the key for the image decode timeout preference
const DecodeTimeoutSecsKey = "decode_timeout_secs"

// MaxFileBytesKey is the key for the optional selection size cap preference
const MaxFileBytesKey = "max_file_bytes"

// DefaultDecodeTimeout is applied when no decode timeout preference is set.
const DefaultDecodeTimeout = 30 * time.Second

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetUpdateCheckEnabled returns whether the application should check for updates
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(UpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(UpdateCheckEnabledKey, enabled)
}

// GetHotkeyEnabled returns whether the global open-picker shortcut is active
func (c *AppConfig) GetHotkeyEnabled() bool {
	return c.prefs.BoolWithFallback(HotkeyEnabledKey, true)
}

// SetHotkeyEnabled sets whether the global open-picker shortcut is active
func (c *AppConfig) SetHotkeyEnabled(enabled bool) {
	c.prefs.SetBool(HotkeyEnabledKey, enabled)
}

// GetDecodeTimeout returns how long a single read/decode pass may run before
// it is abandoned. Zero disables the timeout.
func (c *AppConfig) GetDecodeTimeout() time.Duration {
	secs := c.prefs.IntWithFallback(DecodeTimeoutSecsKey, int(DefaultDecodeTimeout/time.Second))
	return time.Duration(secs) * time.Second
}

// SetDecodeTimeout sets the read/decode timeout, rounded down to seconds.
func (c *AppConfig) SetDecodeTimeout(d time.Duration) {
	c.prefs.SetInt(DecodeTimeoutSecsKey, int(d/time.Second))
}

// GetMaxFileBytes returns the selection size cap in bytes. Zero means the
// advertised limit stays advisory and no size check is performed.
func (c *AppConfig) GetMaxFileBytes() int {
	return c.prefs.IntWithFallback(MaxFileBytesKey, 0)
}

// SetMaxFileBytes sets the selection size cap in bytes.
func (c *AppConfig) SetMaxFileBytes(n int) {
	c.prefs.SetInt(MaxFileBytesKey, n)
}
