package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusLabel is a custom widget that displays a one-line status message
// with a colored background, used as the report surface for launch failures
type StatusLabel struct {
	widget.BaseWidget
	text      string
	bgColor   color.Color
	textColor color.Color
	textObj   *canvas.Text
	bgRect    *canvas.Rectangle
	container *fyne.Container
}

// NewStatusLabel creates a new status label
func NewStatusLabel() *StatusLabel {
	sl := &StatusLabel{
		bgColor:   color.Transparent,
		textColor: color.White,
	}
	sl.ExtendBaseWidget(sl)
	return sl
}

// SetInfo shows an informational message
func (sl *StatusLabel) SetInfo(text string) {
	sl.setState(text, color.Transparent, color.White)
}

// SetError shows an error message on a red background
func (sl *StatusLabel) SetError(text string) {
	sl.setState(text, color.NRGBA{R: 0x99, G: 0x1b, B: 0x1b, A: 0xff}, color.White)
}

// Clear removes the current message
func (sl *StatusLabel) Clear() {
	sl.setState("", color.Transparent, color.White)
}

func (sl *StatusLabel) setState(text string, bgColor, textColor color.Color) {
	sl.text = text
	sl.bgColor = bgColor
	sl.textColor = textColor
	sl.Refresh()
}

// CreateRenderer implements fyne.Widget
func (sl *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	sl.textObj = canvas.NewText(sl.text, sl.textColor)
	sl.textObj.TextSize = 11
	sl.textObj.Alignment = fyne.TextAlignLeading

	sl.bgRect = canvas.NewRectangle(sl.bgColor)

	sl.container = container.NewStack(sl.bgRect, sl.textObj)

	return &statusLabelRenderer{
		label:     sl,
		container: sl.container,
		bgRect:    sl.bgRect,
		textObj:   sl.textObj,
	}
}

// statusLabelRenderer implements fyne.WidgetRenderer
type statusLabelRenderer struct {
	label     *StatusLabel
	container *fyne.Container
	bgRect    *canvas.Rectangle
	textObj   *canvas.Text
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *statusLabelRenderer) Refresh() {
	r.textObj.Text = r.label.text
	r.textObj.Color = r.label.textColor
	r.bgRect.FillColor = r.label.bgColor
	r.textObj.Refresh()
	r.bgRect.Refresh()
}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *statusLabelRenderer) Destroy() {
	// Nothing to destroy
}
