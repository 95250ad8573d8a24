// Package layout computes content boxes for a retained tree of visual
// nodes. Each node carries a resolved style record and an externally
// supplied intrinsic size; the engine writes a Box per node describing its
// final content size, minimum content size, and position relative to the
// parent's content origin.
package layout

import (
	"github.com/DD2480-Group22-2025/toga/style"
)

// Box holds the computed layout for a single node. Sizes and positions are
// in integer pixels; margins are never part of the content dimensions.
type Box struct {
	ContentWidth  int
	ContentHeight int

	// The smallest content size the node could have been given the same
	// allocation constraints; ancestors use these to decide how much a
	// subtree can be squeezed.
	MinContentWidth  int
	MinContentHeight int

	// Position of the content box relative to the parent's content origin.
	ContentTop  int
	ContentLeft int
}

// Node is one element of the layout tree. The tree is built and owned by
// the caller; the engine mutates only the Layout field.
type Node struct {
	Style     *style.Pack
	Intrinsic IntrinsicSize
	Parent    *Node
	Children  []*Node
	Layout    Box
}

// NewNode assembles a node from a style record and optional children,
// wiring parent pointers and the style's owner hook. A nil style gets
// default values.
func NewNode(s *style.Pack, children ...*Node) *Node {
	if s == nil {
		s = style.NewPack()
	}
	n := &Node{Style: s, Children: children}
	s.SetOwner(n)
	for _, child := range children {
		child.Parent = n
	}
	return n
}

// ParentStyle returns the style of the parent node, or nil at the root.
// It satisfies style.Owner so visibility can be resolved along the tree.
func (n *Node) ParentStyle() *style.Pack {
	if n.Parent == nil {
		return nil
	}
	return n.Parent.Style
}

// AbsolutePosition accumulates content offsets up the tree, yielding the
// node's content origin relative to the viewport origin.
func (n *Node) AbsolutePosition() (left, top int) {
	for cur := n; cur != nil; cur = cur.Parent {
		left += cur.Layout.ContentLeft
		top += cur.Layout.ContentTop
	}
	return left, top
}
