//go:build windows

package ui

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// The toolkit has no window positioning API, so placement, dragging and the
// periodic raise go through user32 directly, addressed by window title.

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	hwndTopmost = ^uintptr(0) // (HWND)-1
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW         = user32.NewProc("FindWindowW")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procGetWindowRect       = user32.NewProc("GetWindowRect")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

type rect struct {
	left, top, right, bottom int32
}

func findWindow(title string) uintptr {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0
	}
	h, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	return h
}

// windowPos returns the current top-left corner of the titled window
func windowPos(title string) (x, y int, ok bool) {
	h := findWindow(title)
	if h == 0 {
		return 0, 0, false
	}

	var r rect
	ret, _, _ := procGetWindowRect.Call(h, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0, false
	}

	return int(r.left), int(r.top), true
}

// moveWindow places the titled window at the given screen coordinates,
// keeping it topmost
func moveWindow(title string, x, y int) bool {
	h := findWindow(title)
	if h == 0 {
		return false
	}

	ret, _, _ := procSetWindowPos.Call(h, hwndTopmost,
		uintptr(x), uintptr(y), 0, 0, swpNoSize)
	return ret != 0
}

// raiseWindow re-asserts the titled window as topmost without stealing focus
func raiseWindow(title string) {
	h := findWindow(title)
	if h == 0 {
		return
	}

	procSetWindowPos.Call(h, hwndTopmost, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	procSetForegroundWindow.Call(h)
}
