// Package render paints a laid-out tree to a raster image.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/style"
)

// Renderer paints node boxes in tree order, parents before children.
type Renderer struct {
	// Background fills the canvas before any box is painted. Defaults to
	// white when unset.
	Background style.Color

	// Outlines draws a thin border around every box, including boxes with
	// no background color. Useful when inspecting layout output.
	Outlines bool
}

// Draw lays out the tree for the given canvas size and paints it.
func (r *Renderer) Draw(root *layout.Node, width, height int) image.Image {
	layout.Layout(root, width, height)
	return r.Paint(root, width, height)
}

// Paint renders an already laid-out tree onto a fresh canvas. Nodes with
// display none were never laid out and are skipped; hidden subtrees keep
// their space but paint nothing.
func (r *Renderer) Paint(root *layout.Node, width, height int) image.Image {
	dc := gg.NewContext(width, height)

	bg := color.RGBA{255, 255, 255, 255}
	if c, ok := style.ParseColor(r.Background); ok {
		bg = c
	}
	dc.SetColor(bg)
	dc.Clear()

	r.paintNode(dc, root, 0, 0)
	return dc.Image()
}

func (r *Renderer) paintNode(dc *gg.Context, node *layout.Node, originLeft, originTop int) {
	s := node.Style
	if s.Display == style.DisplayNone || s.Hidden() {
		return
	}

	left := originLeft + node.Layout.ContentLeft
	top := originTop + node.Layout.ContentTop
	w := node.Layout.ContentWidth
	h := node.Layout.ContentHeight

	if c, ok := style.ParseColor(s.BackgroundColor); ok && c.A > 0 {
		dc.SetColor(c)
		dc.DrawRectangle(float64(left), float64(top), float64(w), float64(h))
		dc.Fill()
	}
	if r.Outlines {
		dc.SetColor(color.RGBA{128, 128, 128, 255})
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(left)+0.5, float64(top)+0.5, float64(w)-1, float64(h)-1)
		dc.Stroke()
	}

	for _, child := range node.Children {
		r.paintNode(dc, child, left, top)
	}
}

// SavePNG lays out and paints the tree, then writes it as a PNG file.
func (r *Renderer) SavePNG(path string, root *layout.Node, width, height int) error {
	img := r.Draw(root, width, height)
	return gg.SavePNG(path, img)
}
