// Package term renders a laid-out tree onto a terminal screen, one layout
// unit per character cell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/style"
)

// Renderer draws node boxes as colored cell regions.
type Renderer struct {
	// Borders draws box-drawing outlines around every box.
	Borders bool
}

// Draw lays the tree out for the current screen size and paints it. The
// caller remains responsible for screen.Show.
func (r *Renderer) Draw(screen tcell.Screen, root *layout.Node) {
	width, height := screen.Size()
	layout.Layout(root, width, height)

	screen.Clear()
	r.drawNode(screen, root, 0, 0)
}

func (r *Renderer) drawNode(screen tcell.Screen, node *layout.Node, originLeft, originTop int) {
	s := node.Style
	if s.Display == style.DisplayNone || s.Hidden() {
		return
	}

	left := originLeft + node.Layout.ContentLeft
	top := originTop + node.Layout.ContentTop
	w := node.Layout.ContentWidth
	h := node.Layout.ContentHeight

	if c, ok := style.ParseColor(s.BackgroundColor); ok && c.A > 0 {
		cell := tcell.StyleDefault.Background(
			tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		for y := top; y < top+h; y++ {
			for x := left; x < left+w; x++ {
				screen.SetContent(x, y, ' ', nil, cell)
			}
		}
	}
	if r.Borders && w > 1 && h > 1 {
		drawBorder(screen, left, top, w, h)
	}

	for _, child := range node.Children {
		r.drawNode(screen, child, left, top)
	}
}

func drawBorder(screen tcell.Screen, left, top, w, h int) {
	st := tcell.StyleDefault
	right, bottom := left+w-1, top+h-1

	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, st)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, st)
		screen.SetContent(right, y, tcell.RuneVLine, nil, st)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, st)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, st)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, st)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
}

// Run shows the tree in an interactive terminal session, relaying out on
// every resize, until the user presses Escape, q, or Ctrl-C.
func (r *Renderer) Run(root *layout.Node) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		r.Draw(screen, root)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
