package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/manifest"
	"github.com/DD2480-Group22-2025/toga/render"
	"github.com/DD2480-Group22-2025/toga/term"
	"github.com/DD2480-Group22-2025/toga/ui"
	"github.com/DD2480-Group22-2025/toga/web"
)

func main() {
	width := flag.Int("width", 640, "viewport width")
	height := flag.Int("height", 480, "viewport height")
	pngPath := flag.String("png", "", "render the tree to a PNG file")
	htmlPath := flag.String("html", "", "write the tree as an HTML document")
	terminal := flag.Bool("term", false, "show the tree in the terminal")
	window := flag.Bool("window", false, "show the tree in a window")
	outlines := flag.Bool("outlines", false, "draw box outlines in PNG output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: packview [flags] manifest.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	root, err := manifest.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "packview: %v\n", err)
		os.Exit(1)
	}

	if err := run(root, *width, *height, *pngPath, *htmlPath, *terminal, *window, *outlines); err != nil {
		fmt.Fprintf(os.Stderr, "packview: %v\n", err)
		os.Exit(1)
	}
}

func run(root *layout.Node, width, height int, pngPath, htmlPath string, terminal, window, outlines bool) error {
	if pngPath != "" {
		r := &render.Renderer{Outlines: outlines}
		if err := r.SavePNG(pngPath, root, width, height); err != nil {
			return fmt.Errorf("write %s: %w", pngPath, err)
		}
	}

	if htmlPath != "" {
		f, err := os.Create(htmlPath)
		if err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
		defer f.Close()
		if err := web.Render(f, root); err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
	}

	if terminal {
		return (&term.Renderer{Borders: true}).Run(root)
	}
	if window {
		ui.NewViewer("packview", root).Run()
		return nil
	}

	if pngPath == "" && htmlPath == "" {
		layout.Layout(root, width, height)
		printTree(root, 0)
	}
	return nil
}

func printTree(node *layout.Node, depth int) {
	left, top := node.AbsolutePosition()
	fmt.Printf("%*s%dx%d at (%d, %d)\n",
		depth*2, "",
		node.Layout.ContentWidth, node.Layout.ContentHeight, left, top)
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}
