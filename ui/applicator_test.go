package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/DD2480-Group22-2025/toga/style"
)

func TestSetBackgroundColor(t *testing.T) {
	box := canvas.NewRectangle(color.Transparent)
	a := NewWidgetApplicator(box, nil, nil)

	a.SetBackgroundColor("red")
	if box.FillColor != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("fill = %v, want red", box.FillColor)
	}

	a.SetBackgroundColor("")
	if box.FillColor != color.Transparent {
		t.Errorf("fill = %v, want transparent", box.FillColor)
	}
}

func TestSetHidden(t *testing.T) {
	box := canvas.NewRectangle(color.Transparent)
	label := canvas.NewText("hello", color.Black)
	a := NewWidgetApplicator(box, label, nil)

	a.SetHidden(true)
	if box.Visible() || label.Visible() {
		t.Error("objects still visible after hide")
	}
	a.SetHidden(false)
	if !box.Visible() || !label.Visible() {
		t.Error("objects not visible after show")
	}
}

func TestSetTextAlign(t *testing.T) {
	label := canvas.NewText("hello", color.Black)
	a := NewWidgetApplicator(nil, label, nil)

	a.SetTextAlign(style.TextAlignCenter)
	if label.Alignment != fyne.TextAlignCenter {
		t.Errorf("alignment = %v, want center", label.Alignment)
	}
	a.SetTextAlign(style.TextAlignRight)
	if label.Alignment != fyne.TextAlignTrailing {
		t.Errorf("alignment = %v, want trailing", label.Alignment)
	}
	a.SetTextAlign(style.TextAlignJustify)
	if label.Alignment != fyne.TextAlignLeading {
		t.Errorf("alignment = %v, justify should degrade to leading", label.Alignment)
	}
}

func TestSetFont(t *testing.T) {
	label := canvas.NewText("hello", color.Black)
	a := NewWidgetApplicator(nil, label, nil)

	a.SetFont(style.Font{
		Family: style.FontFamilyMonospace,
		Size:   18,
		Style:  style.FontStyleItalic,
		Weight: style.FontWeightBold,
	})
	if !label.TextStyle.Bold || !label.TextStyle.Italic || !label.TextStyle.Monospace {
		t.Errorf("text style = %+v", label.TextStyle)
	}
	if label.TextSize != 18 {
		t.Errorf("text size = %v, want 18", label.TextSize)
	}

	a.SetFont(style.Font{Family: style.FontFamilySystem, Size: style.SystemDefaultFontSize})
	if label.TextStyle.Bold || label.TextStyle.Monospace {
		t.Errorf("text style not reset: %+v", label.TextStyle)
	}
	if label.TextSize != 18 {
		t.Error("system default size should leave the previous size untouched")
	}
}

func TestApplyDispatchesThroughStyle(t *testing.T) {
	box := canvas.NewRectangle(color.Transparent)
	refreshed := 0
	a := NewWidgetApplicator(box, nil, func() { refreshed++ })

	p := style.NewPack()
	p.SetApplicator(a)
	p.BackgroundColor = "navy"
	p.Apply("background_color")
	if box.FillColor != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("fill = %v, want navy", box.FillColor)
	}

	p.Width = style.Fixed(100)
	p.Apply("width")
	if refreshed != 1 {
		t.Errorf("refresh count = %d, want 1", refreshed)
	}
}

func TestNilObjectsAreTolerated(t *testing.T) {
	a := NewWidgetApplicator(nil, nil, nil)
	a.SetTextAlign(style.TextAlignCenter)
	a.SetColor("red")
	a.SetBackgroundColor("red")
	a.SetHidden(true)
	a.SetFont(style.Font{})
	a.Refresh()
}
