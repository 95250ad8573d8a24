// Package ui displays a node tree in a Fyne window and forwards style
// signals to Fyne canvas objects.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/DD2480-Group22-2025/toga/style"
)

// WidgetApplicator receives style signals for one node and applies them to
// its canvas objects: a background rectangle and an optional text label.
type WidgetApplicator struct {
	box   *canvas.Rectangle
	label *canvas.Text

	// onRefresh is invoked when a geometry property changes and the whole
	// tree needs to be laid out again.
	onRefresh func()
}

// NewWidgetApplicator wires an applicator to its canvas objects. The label
// may be nil for nodes without text.
func NewWidgetApplicator(box *canvas.Rectangle, label *canvas.Text, onRefresh func()) *WidgetApplicator {
	return &WidgetApplicator{box: box, label: label, onRefresh: onRefresh}
}

// SetTextAlign applies horizontal text alignment to the label.
func (a *WidgetApplicator) SetTextAlign(align style.TextAlign) {
	if a.label == nil {
		return
	}
	switch align {
	case style.TextAlignRight:
		a.label.Alignment = fyne.TextAlignTrailing
	case style.TextAlignCenter:
		a.label.Alignment = fyne.TextAlignCenter
	default:
		// Justified text is not supported by the canvas; fall back to
		// leading alignment.
		a.label.Alignment = fyne.TextAlignLeading
	}
	a.label.Refresh()
}

// SetColor applies the foreground color to the label.
func (a *WidgetApplicator) SetColor(c style.Color) {
	if a.label == nil {
		return
	}
	if rgba, ok := style.ParseColor(c); ok {
		a.label.Color = rgba
	} else {
		a.label.Color = color.Black
	}
	a.label.Refresh()
}

// SetBackgroundColor applies the background fill to the rectangle.
func (a *WidgetApplicator) SetBackgroundColor(c style.Color) {
	if a.box == nil {
		return
	}
	if rgba, ok := style.ParseColor(c); ok {
		a.box.FillColor = rgba
	} else {
		a.box.FillColor = color.Transparent
	}
	a.box.Refresh()
}

// SetHidden shows or hides the node's canvas objects.
func (a *WidgetApplicator) SetHidden(hidden bool) {
	objects := []fyne.CanvasObject{}
	if a.box != nil {
		objects = append(objects, a.box)
	}
	if a.label != nil {
		objects = append(objects, a.label)
	}
	for _, o := range objects {
		if hidden {
			o.Hide()
		} else {
			o.Show()
		}
	}
}

// SetFont applies the resolved font to the label. Small caps and oblique
// have no canvas equivalent and degrade to the nearest style.
func (a *WidgetApplicator) SetFont(f style.Font) {
	if a.label == nil {
		return
	}
	a.label.TextStyle = fyne.TextStyle{
		Bold:      f.Weight == style.FontWeightBold,
		Italic:    f.Style == style.FontStyleItalic || f.Style == style.FontStyleOblique,
		Monospace: f.Family == style.FontFamilyMonospace,
	}
	if f.Size > 0 {
		a.label.TextSize = float32(f.Size)
	}
	a.label.Refresh()
}

// Refresh asks the owning viewer to lay the tree out again.
func (a *WidgetApplicator) Refresh() {
	if a.onRefresh != nil {
		a.onRefresh()
	}
}
