// Package web projects a node tree to an HTML document, carrying each
// node's style as inline CSS. The output is a plain nested set of divs
// that a flexbox-capable browser lays out the same way the layout engine
// does.
package web

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/style"
)

// The stock declarations every rendered box starts from. Individual node
// styles append to these.
const baseBoxStyle = "display: flex; box-sizing: border-box; margin: 0; padding: 0;"

// Document builds a standalone HTML document for the tree. Nodes with
// display none are omitted along with their subtrees.
func Document(root *layout.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, "")
	doc.AppendChild(htmlEl)

	head := element(atom.Head, "")
	htmlEl.AppendChild(head)
	head.AppendChild(element(atom.Meta, "")) // charset
	head.LastChild.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}

	body := element(atom.Body, "margin: 0;")
	htmlEl.AppendChild(body)

	if box := Element(root); box != nil {
		body.AppendChild(box)
	}
	return doc
}

// Element builds the div subtree for a single node, or nil when the node
// is display none.
func Element(node *layout.Node) *html.Node {
	if node.Style.Display == style.DisplayNone {
		return nil
	}

	div := element(atom.Div, boxStyle(node.Style))
	for _, child := range node.Children {
		if el := Element(child); el != nil {
			div.AppendChild(el)
		}
	}
	return div
}

// Render writes the tree as a complete HTML document.
func Render(w io.Writer, root *layout.Node) error {
	return html.Render(w, Document(root))
}

// String renders the tree to a string, for tests and debugging.
func String(root *layout.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func boxStyle(s *style.Pack) string {
	if css := s.CSS(); css != "" {
		return baseBoxStyle + " " + css
	}
	return baseBoxStyle
}

func element(a atom.Atom, styleAttr string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if styleAttr != "" {
		n.Attr = []html.Attribute{{Key: "style", Val: styleAttr}}
	}
	return n
}
