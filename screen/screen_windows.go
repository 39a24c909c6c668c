//go:build windows

package screen

import (
	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// Size returns the primary display extents in pixels
func Size() (width, height int) {
	w, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	h, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))

	if w == 0 || h == 0 {
		return fallbackWidth, fallbackHeight
	}

	return int(w), int(h)
}
