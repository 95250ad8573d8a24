package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/style"
)

// Viewer shows a node tree in a window, one rectangle per node, re-running
// the layout whenever the window is resized.
type Viewer struct {
	app    fyne.App
	window fyne.Window

	root    *layout.Node
	content *fyne.Container
	boxes   map[*layout.Node]*canvas.Rectangle
}

// NewViewer builds a viewer for the tree.
func NewViewer(title string, root *layout.Node) *Viewer {
	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(800, 600))

	v := &Viewer{
		app:    a,
		window: w,
		root:   root,
		boxes:  make(map[*layout.Node]*canvas.Rectangle),
	}

	objects := v.buildObjects(root)
	v.content = container.New(&treeLayout{viewer: v}, objects...)
	w.SetContent(v.content)
	return v
}

// buildObjects creates one rectangle per visible node, depth first so
// parents are painted behind their children. Display none subtrees get no
// objects at all.
func (v *Viewer) buildObjects(node *layout.Node) []fyne.CanvasObject {
	if node.Style.Display == style.DisplayNone {
		return nil
	}

	box := canvas.NewRectangle(color.Transparent)
	v.boxes[node] = box

	applicator := NewWidgetApplicator(box, nil, v.relayout)
	node.Style.SetApplicator(applicator)
	node.Style.ApplyAll()

	objects := []fyne.CanvasObject{box}
	for _, child := range node.Children {
		objects = append(objects, v.buildObjects(child)...)
	}
	return objects
}

func (v *Viewer) relayout() {
	if v.content != nil {
		v.content.Refresh()
	}
}

// Run shows the window and blocks until it is closed.
func (v *Viewer) Run() {
	v.window.ShowAndRun()
}

// treeLayout adapts the layout engine to Fyne's layout interface. Fyne
// calls Layout with the container size on every resize.
type treeLayout struct {
	viewer *Viewer
}

func (t *treeLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	root := t.viewer.root
	layout.Layout(root, int(size.Width), int(size.Height))

	for node, box := range t.viewer.boxes {
		left, top := node.AbsolutePosition()
		box.Move(fyne.NewPos(float32(left), float32(top)))
		box.Resize(fyne.NewSize(
			float32(node.Layout.ContentWidth),
			float32(node.Layout.ContentHeight)))
	}
}

func (t *treeLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	root := t.viewer.root
	return fyne.NewSize(
		float32(root.Layout.MinContentWidth),
		float32(root.Layout.MinContentHeight))
}
