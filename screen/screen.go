// Package screen queries the primary display size, used to key saved window
// positions by resolution and to clamp restored positions on-screen.
package screen

const (
	fallbackWidth  = 1920
	fallbackHeight = 1080
)
