package layout

import (
	"github.com/DD2480-Group22-2025/toga/style"
)

// Layout computes the layout of the whole tree rooted at root within a
// viewport of the given size. The root always uses all available space on
// both axes; afterwards its content box sits at its own margin offsets
// relative to the viewport origin.
//
// The computation is synchronous and deterministic. Only the Layout field
// of each node is written; styles and intrinsic sizes are read-only inputs.
func Layout(root *Node, viewportWidth, viewportHeight int) {
	layoutNode(root, float64(viewportWidth), float64(viewportHeight), true, true)

	root.Layout.ContentTop = root.Style.MarginTop
	root.Layout.ContentLeft = root.Style.MarginLeft
}

// layoutNode resolves one node's content box within an allocation. The
// useAll flags tell the node to stretch its children's extent to the full
// allocation on that axis rather than shrink-wrapping them.
func layoutNode(node *Node, allocWidth, allocHeight float64, useAllWidth, useAllHeight bool) {
	s := node.Style

	// Establish available width. An explicit width pins both the available
	// and minimum width. Otherwise start from the allocation minus margins;
	// a fixed intrinsic width replaces it (natural size is exact), while a
	// flexible intrinsic width only raises it to at least the lower bound.
	var availableWidth, minWidth float64
	if !s.Width.IsAuto() {
		availableWidth = float64(s.Width.Value())
		minWidth = availableWidth
	} else {
		availableWidth = allocWidth - float64(s.MarginLeft+s.MarginRight)
		if availableWidth < 0 {
			availableWidth = 0
		}
		if node.Intrinsic.Width.IsSet() {
			v := float64(node.Intrinsic.Width.Value())
			minWidth = v
			if node.Intrinsic.Width.IsFlexible() {
				if v > availableWidth {
					availableWidth = v
				}
			} else {
				availableWidth = v
			}
		}
	}

	// Establish available height, symmetrically.
	var availableHeight, minHeight float64
	if !s.Height.IsAuto() {
		availableHeight = float64(s.Height.Value())
		minHeight = availableHeight
	} else {
		availableHeight = allocHeight - float64(s.MarginTop+s.MarginBottom)
		if availableHeight < 0 {
			availableHeight = 0
		}
		if node.Intrinsic.Height.IsSet() {
			v := float64(node.Intrinsic.Height.Value())
			minHeight = v
			if node.Intrinsic.Height.IsFlexible() {
				if v > availableHeight {
					availableHeight = v
				}
			} else {
				availableHeight = v
			}
		}
	}

	var width, height float64
	if len(node.Children) > 0 {
		if s.Direction == style.Column {
			minWidth, width, minHeight, height = layoutColumnChildren(
				node, availableWidth, availableHeight, useAllWidth, useAllHeight)
		} else {
			minWidth, width, minHeight, height = layoutRowChildren(
				node, availableWidth, availableHeight, useAllWidth, useAllHeight)
		}
	} else {
		width = availableWidth
		height = availableHeight
	}

	// An explicit size overrides whatever child layout produced.
	if !s.Width.IsAuto() {
		width = float64(s.Width.Value())
		minWidth = width
	}
	if !s.Height.IsAuto() {
		height = float64(s.Height.Value())
		minHeight = height
	}

	node.Layout.ContentWidth = int(width)
	node.Layout.ContentHeight = int(height)
	node.Layout.MinContentWidth = int(minWidth)
	node.Layout.MinContentHeight = int(minHeight)
}

// layoutRowChildren lays out children along the horizontal main axis and
// returns the node's (minWidth, width, minHeight, height).
func layoutRowChildren(node *Node, availableWidth, availableHeight float64, useAllWidth, useAllHeight bool) (float64, float64, float64, float64) {
	// Pass 1: lay out every child whose width does not depend on the
	// flexible space distribution, collecting the flex total of the rest.
	flexTotal := 0.0
	minFlex := 0.0
	width := 0.0
	minWidth := 0.0
	remainingWidth := availableWidth
	for _, child := range node.Children {
		cs := child.Style
		var childContentWidth, minChildContentWidth float64

		switch {
		case !cs.Width.IsAuto():
			// Fixed width: lay out immediately, non-greedy. An explicit
			// size is not further minimizable.
			layoutNode(child, remainingWidth, availableHeight, false, cs.Direction == style.Row)
			childContentWidth = float64(child.Layout.ContentWidth)
			minChildContentWidth = childContentWidth

		case child.Intrinsic.Width.IsSet() && child.Intrinsic.Width.IsFlexible() && cs.Flex > 0:
			// Flexible intrinsic width on a flex child: final size comes
			// in pass 2. Until then the lower bound is the best estimate.
			flexTotal += cs.Flex
			v := float64(child.Intrinsic.Width.Value())
			childContentWidth = v
			minChildContentWidth = v
			minFlex += float64(cs.MarginLeft) + v + float64(cs.MarginRight)

		case child.Intrinsic.Width.IsSet() && child.Intrinsic.Width.IsFlexible():
			// Flexible intrinsic width without flex weight: force minimal
			// sizing, which pins the child at its lower bound.
			layoutNode(child, 0, availableHeight, false, cs.Direction == style.Row)
			childContentWidth = float64(child.Layout.ContentWidth)
			minChildContentWidth = childContentWidth

		case child.Intrinsic.Width.IsSet():
			// Fixed intrinsic width: the allocation is immaterial, the
			// intrinsic size is exact. The intrinsic size also makes the
			// subtree's own minimum irrelevant.
			layoutNode(child, remainingWidth, availableHeight, false, cs.Direction == style.Row)
			childContentWidth = float64(child.Layout.ContentWidth)
			minChildContentWidth = childContentWidth

		case cs.Flex > 0:
			// No width hint at all on a flex child: defer entirely.
			flexTotal += cs.Flex
			childContentWidth = 0
			minChildContentWidth = 0

		default:
			// No hint, no flex: take what is left, but track how small
			// the subtree could have been.
			layoutNode(child, remainingWidth, availableHeight, false, cs.Direction == style.Row)
			childContentWidth = float64(child.Layout.ContentWidth)
			minChildContentWidth = float64(child.Layout.MinContentWidth)
		}

		childWidth := float64(cs.MarginLeft) + childContentWidth + float64(cs.MarginRight)
		width += childWidth
		remainingWidth -= childWidth

		minWidth += float64(cs.MarginLeft) + minChildContentWidth + float64(cs.MarginRight)
	}

	// Flex children with a flexible minimum larger than their ideal share
	// of a balanced distribution would starve their siblings; take them out
	// of the flex accounting and size them at their minimum instead.
	quantum := 0.0
	if flexTotal > 0 {
		quantum = (remainingWidth + minFlex) / flexTotal
		for _, child := range node.Children {
			cs := child.Style
			if cs.Flex > 0 && child.Intrinsic.Width.IsSet() && child.Intrinsic.Width.IsFlexible() {
				v := float64(child.Intrinsic.Width.Value())
				if v > quantum*cs.Flex {
					flexTotal -= cs.Flex
					minFlex -= float64(cs.MarginLeft) + v + float64(cs.MarginRight)
				}
			}
		}
		if flexTotal > 0 {
			quantum = (remainingWidth + minFlex) / flexTotal
		} else {
			quantum = 0
		}
	}

	// Pass 2: lay out the deferred flex children.
	for _, child := range node.Children {
		cs := child.Style
		if !cs.Width.IsAuto() || cs.Flex <= 0 {
			continue // finalized in pass 1
		}

		if child.Intrinsic.Width.IsSet() {
			if !child.Intrinsic.Width.IsFlexible() {
				continue // fixed intrinsic width, finalized in pass 1
			}
			v := float64(child.Intrinsic.Width.Value())
			childAllocWidth := float64(cs.MarginLeft) + v + float64(cs.MarginRight)
			if ideal := quantum * cs.Flex; ideal > childAllocWidth {
				childAllocWidth = ideal
			}
			layoutNode(child, childAllocWidth, availableHeight, true, cs.Direction == style.Row)
			// The running totals counted this child at its intrinsic
			// value; swap in the laid-out sizes, which may have grown
			// because the subtree has now been laid out for real.
			width += float64(child.Layout.ContentWidth) - v
			minWidth += float64(child.Layout.MinContentWidth) - v
		} else {
			var childAllocWidth float64
			if quantum != 0 {
				childAllocWidth = quantum * cs.Flex
			} else {
				childAllocWidth = float64(cs.MarginLeft + cs.MarginRight)
			}
			layoutNode(child, childAllocWidth, availableHeight, true, cs.Direction == style.Row)
			width += float64(child.Layout.ContentWidth)
			minWidth += float64(child.Layout.MinContentWidth)
		}
	}

	if useAllWidth && availableWidth > width {
		width = availableWidth
	}

	// Pass 3: horizontal positions, and the row's cross-axis extent. RTL
	// places children from the right edge inward.
	offset := 0.0
	height := 0.0
	minHeight := 0.0
	for _, child := range node.Children {
		cs := child.Style
		if node.Style.TextDirection == style.RTL {
			offset += float64(child.Layout.ContentWidth + cs.MarginRight)
			child.Layout.ContentLeft = int(width - offset)
			offset += float64(cs.MarginLeft)
		} else {
			offset += float64(cs.MarginLeft)
			child.Layout.ContentLeft = int(offset)
			offset += float64(child.Layout.ContentWidth + cs.MarginRight)
		}

		childHeight := float64(cs.MarginTop + child.Layout.ContentHeight + cs.MarginBottom)
		if childHeight > height {
			height = childHeight
		}
		minChildHeight := float64(cs.MarginTop + child.Layout.MinContentHeight + cs.MarginBottom)
		if minChildHeight > minHeight {
			minHeight = minChildHeight
		}
	}
	if useAllHeight && availableHeight > height {
		height = availableHeight
	}

	// Pass 4: vertical position of each child within the row.
	for _, child := range node.Children {
		cs := child.Style
		extra := height - float64(child.Layout.ContentHeight+cs.MarginTop+cs.MarginBottom)
		switch node.Style.AlignItems {
		case style.AlignEnd:
			child.Layout.ContentTop = int(extra) + cs.MarginTop
		case style.AlignCenter:
			child.Layout.ContentTop = int(extra/2) + cs.MarginTop
		default:
			child.Layout.ContentTop = cs.MarginTop
		}
	}

	return minWidth, width, minHeight, height
}

// layoutColumnChildren is the vertical mirror of layoutRowChildren: the
// main axis is vertical, the cross axis horizontal. Text direction never
// affects the vertical axis, but it decides which horizontal alignment
// keyword means the trailing edge in pass 4.
func layoutColumnChildren(node *Node, availableWidth, availableHeight float64, useAllWidth, useAllHeight bool) (float64, float64, float64, float64) {
	// Pass 1: lay out every child whose height does not depend on the
	// flexible space distribution, collecting the flex total of the rest.
	flexTotal := 0.0
	minFlex := 0.0
	height := 0.0
	minHeight := 0.0
	remainingHeight := availableHeight
	for _, child := range node.Children {
		cs := child.Style
		var childContentHeight, minChildContentHeight float64

		switch {
		case !cs.Height.IsAuto():
			layoutNode(child, availableWidth, remainingHeight, cs.Direction == style.Column, false)
			childContentHeight = float64(child.Layout.ContentHeight)
			minChildContentHeight = childContentHeight

		case child.Intrinsic.Height.IsSet() && child.Intrinsic.Height.IsFlexible() && cs.Flex > 0:
			flexTotal += cs.Flex
			v := float64(child.Intrinsic.Height.Value())
			childContentHeight = v
			minChildContentHeight = v
			minFlex += float64(cs.MarginTop) + v + float64(cs.MarginBottom)

		case child.Intrinsic.Height.IsSet() && child.Intrinsic.Height.IsFlexible():
			layoutNode(child, availableWidth, 0, cs.Direction == style.Column, false)
			childContentHeight = float64(child.Layout.ContentHeight)
			minChildContentHeight = childContentHeight

		case child.Intrinsic.Height.IsSet():
			layoutNode(child, availableWidth, remainingHeight, cs.Direction == style.Column, false)
			childContentHeight = float64(child.Layout.ContentHeight)
			minChildContentHeight = childContentHeight

		case cs.Flex > 0:
			flexTotal += cs.Flex
			childContentHeight = 0
			minChildContentHeight = 0

		default:
			layoutNode(child, availableWidth, remainingHeight, cs.Direction == style.Column, false)
			childContentHeight = float64(child.Layout.ContentHeight)
			minChildContentHeight = float64(child.Layout.MinContentHeight)
		}

		childHeight := float64(cs.MarginTop) + childContentHeight + float64(cs.MarginBottom)
		height += childHeight
		remainingHeight -= childHeight

		minHeight += float64(cs.MarginTop) + minChildContentHeight + float64(cs.MarginBottom)
	}

	quantum := 0.0
	if flexTotal > 0 {
		quantum = (remainingHeight + minFlex) / flexTotal
		for _, child := range node.Children {
			cs := child.Style
			if cs.Flex > 0 && child.Intrinsic.Height.IsSet() && child.Intrinsic.Height.IsFlexible() {
				v := float64(child.Intrinsic.Height.Value())
				if v > quantum*cs.Flex {
					flexTotal -= cs.Flex
					minFlex -= float64(cs.MarginTop) + v + float64(cs.MarginBottom)
				}
			}
		}
		if flexTotal > 0 {
			quantum = (minFlex + remainingHeight) / flexTotal
		} else {
			quantum = 0
		}
	}

	// Pass 2: lay out the deferred flex children.
	for _, child := range node.Children {
		cs := child.Style
		if !cs.Height.IsAuto() || cs.Flex <= 0 {
			continue
		}

		if child.Intrinsic.Height.IsSet() {
			if !child.Intrinsic.Height.IsFlexible() {
				continue
			}
			v := float64(child.Intrinsic.Height.Value())
			childAllocHeight := float64(cs.MarginTop) + v + float64(cs.MarginBottom)
			if ideal := quantum * cs.Flex; ideal > childAllocHeight {
				childAllocHeight = ideal
			}
			layoutNode(child, availableWidth, childAllocHeight, cs.Direction == style.Column, true)
			height += float64(child.Layout.ContentHeight) - v
			minHeight += float64(child.Layout.MinContentHeight) - v
		} else {
			var childAllocHeight float64
			if quantum != 0 {
				childAllocHeight = quantum * cs.Flex
			} else {
				childAllocHeight = float64(cs.MarginTop + cs.MarginBottom)
			}
			layoutNode(child, availableWidth, childAllocHeight, cs.Direction == style.Column, true)
			height += float64(child.Layout.ContentHeight)
			minHeight += float64(child.Layout.MinContentHeight)
		}
	}

	if useAllHeight && availableHeight > height {
		height = availableHeight
	}

	// Pass 3: vertical positions, always top to bottom, and the column's
	// cross-axis extent.
	offset := 0.0
	width := 0.0
	minWidth := 0.0
	for _, child := range node.Children {
		cs := child.Style
		offset += float64(cs.MarginTop)
		child.Layout.ContentTop = int(offset)
		offset += float64(child.Layout.ContentHeight + cs.MarginBottom)

		childWidth := float64(cs.MarginLeft + child.Layout.ContentWidth + cs.MarginRight)
		if childWidth > width {
			width = childWidth
		}
		minChildWidth := float64(cs.MarginLeft + child.Layout.MinContentWidth + cs.MarginRight)
		if minChildWidth > minWidth {
			minWidth = minChildWidth
		}
	}
	if useAllWidth && availableWidth > width {
		width = availableWidth
	}

	// Pass 4: horizontal position of each child. Text direction flips
	// which alignment keyword means the trailing edge.
	for _, child := range node.Children {
		cs := child.Style
		extra := width - float64(child.Layout.ContentWidth+cs.MarginLeft+cs.MarginRight)
		td, align := node.Style.TextDirection, node.Style.AlignItems
		switch {
		case (td == style.LTR && align == style.AlignEnd) ||
			(td == style.RTL && align == style.AlignStart):
			child.Layout.ContentLeft = int(extra) + cs.MarginLeft
		case align == style.AlignCenter:
			child.Layout.ContentLeft = int(extra/2) + cs.MarginLeft
		default:
			child.Layout.ContentLeft = cs.MarginLeft
		}
	}

	return minWidth, width, minHeight, height
}
