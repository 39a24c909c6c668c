//go:build !windows

package screen

// Size returns the primary display extents in pixels. Non-Windows builds
// have no metrics API wired up and report a fixed full-HD display.
func Size() (width, height int) {
	return fallbackWidth, fallbackHeight
}
