package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// shortcutEntry is the single-line input box. It routes right-clicks to the
// application context menu instead of the default clipboard menu, and turns
// drags into window moves while move mode is on.
type shortcutEntry struct {
	widget.Entry
	onMenu     func(pos fyne.Position)
	onMoveDrag func(dx, dy float32)
	moveMode   func() bool
}

func newShortcutEntry() *shortcutEntry {
	e := &shortcutEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TappedSecondary implements fyne.SecondaryTappable
func (e *shortcutEntry) TappedSecondary(ev *fyne.PointEvent) {
	if e.onMenu != nil {
		e.onMenu(ev.AbsolutePosition)
	}
}

// Dragged implements fyne.Draggable
func (e *shortcutEntry) Dragged(ev *fyne.DragEvent) {
	if e.moveMode != nil && e.moveMode() && e.onMoveDrag != nil {
		e.onMoveDrag(ev.Dragged.DX, ev.Dragged.DY)
		return
	}
	e.Entry.Dragged(ev)
}
