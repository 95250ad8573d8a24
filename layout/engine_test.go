package layout

import (
	"testing"

	"github.com/DD2480-Group22-2025/toga/style"
)

func fixedStyle(w, h int) *style.Pack {
	s := style.NewPack()
	s.Width = style.Fixed(w)
	s.Height = style.Fixed(h)
	return s
}

func TestRootFillsViewport(t *testing.T) {
	root := NewNode(style.NewPack())
	Layout(root, 640, 480)

	if root.Layout.ContentWidth != 640 || root.Layout.ContentHeight != 480 {
		t.Errorf("root content = %dx%d, want 640x480",
			root.Layout.ContentWidth, root.Layout.ContentHeight)
	}
	if root.Layout.ContentLeft != 0 || root.Layout.ContentTop != 0 {
		t.Errorf("root origin = (%d, %d), want (0, 0)",
			root.Layout.ContentLeft, root.Layout.ContentTop)
	}
}

func TestRootMarginsOffsetOrigin(t *testing.T) {
	s := style.NewPack()
	s.SetMargin(10, 5, 0, 20)
	root := NewNode(s)
	Layout(root, 100, 100)

	if root.Layout.ContentTop != 10 || root.Layout.ContentLeft != 20 {
		t.Errorf("root origin = (%d, %d), want (20, 10)",
			root.Layout.ContentLeft, root.Layout.ContentTop)
	}
	if root.Layout.ContentWidth != 75 {
		t.Errorf("content width = %d, want 75", root.Layout.ContentWidth)
	}
	if root.Layout.ContentHeight != 90 {
		t.Errorf("content height = %d, want 90", root.Layout.ContentHeight)
	}
}

func TestExplicitSizeOverridesViewport(t *testing.T) {
	root := NewNode(fixedStyle(50, 40))
	Layout(root, 640, 480)

	if root.Layout.ContentWidth != 50 || root.Layout.ContentHeight != 40 {
		t.Errorf("content = %dx%d, want 50x40",
			root.Layout.ContentWidth, root.Layout.ContentHeight)
	}
	if root.Layout.MinContentWidth != 50 || root.Layout.MinContentHeight != 40 {
		t.Errorf("min content = %dx%d, want 50x40",
			root.Layout.MinContentWidth, root.Layout.MinContentHeight)
	}
}

func TestRowFixedChildrenPackLeftToRight(t *testing.T) {
	a := NewNode(fixedStyle(30, 20))
	b := NewNode(fixedStyle(40, 50))
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentLeft != 0 || b.Layout.ContentLeft != 30 {
		t.Errorf("lefts = %d, %d, want 0, 30",
			a.Layout.ContentLeft, b.Layout.ContentLeft)
	}
	if a.Layout.ContentTop != 0 || b.Layout.ContentTop != 0 {
		t.Errorf("tops = %d, %d, want 0, 0",
			a.Layout.ContentTop, b.Layout.ContentTop)
	}
	// The row stretches to the full allocation at the root.
	if root.Layout.ContentWidth != 200 {
		t.Errorf("row width = %d, want 200", root.Layout.ContentWidth)
	}
	if root.Layout.ContentHeight != 100 {
		t.Errorf("row height = %d, want 100", root.Layout.ContentHeight)
	}
}

func TestRowMarginsSeparateChildren(t *testing.T) {
	a := NewNode(fixedStyle(30, 20))
	a.Style.SetMargin(0, 5, 0, 10)
	b := NewNode(fixedStyle(40, 20))
	b.Style.SetMargin(0, 0, 0, 7)
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentLeft != 10 {
		t.Errorf("a left = %d, want 10", a.Layout.ContentLeft)
	}
	// 10 + 30 + 5 + 7
	if b.Layout.ContentLeft != 52 {
		t.Errorf("b left = %d, want 52", b.Layout.ContentLeft)
	}
}

func TestRowRTLMirrorsPositions(t *testing.T) {
	a := NewNode(fixedStyle(30, 20))
	b := NewNode(fixedStyle(40, 20))
	s := style.NewPack()
	s.TextDirection = style.RTL
	s.Width = style.Fixed(100)
	root := NewNode(s, a, b)
	Layout(root, 100, 100)

	// First child hugs the right edge, second sits to its left.
	if a.Layout.ContentLeft != 70 {
		t.Errorf("a left = %d, want 70", a.Layout.ContentLeft)
	}
	if b.Layout.ContentLeft != 30 {
		t.Errorf("b left = %d, want 30", b.Layout.ContentLeft)
	}
}

func TestFlexSharesAreProportional(t *testing.T) {
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	b := NewNode(style.NewPack())
	b.Style.Flex = 3
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 400, 100)

	if a.Layout.ContentWidth != 100 {
		t.Errorf("a width = %d, want 100", a.Layout.ContentWidth)
	}
	if b.Layout.ContentWidth != 300 {
		t.Errorf("b width = %d, want 300", b.Layout.ContentWidth)
	}
	if b.Layout.ContentLeft != 100 {
		t.Errorf("b left = %d, want 100", b.Layout.ContentLeft)
	}
}

func TestFlexIgnoredWithExplicitMainAxisSize(t *testing.T) {
	a := NewNode(fixedStyle(50, 20))
	a.Style.Flex = 5
	b := NewNode(style.NewPack())
	b.Style.Flex = 1
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentWidth != 50 {
		t.Errorf("a width = %d, want 50", a.Layout.ContentWidth)
	}
	if b.Layout.ContentWidth != 150 {
		t.Errorf("b width = %d, want 150", b.Layout.ContentWidth)
	}
}

func TestFlexRespectsFlexibleIntrinsicMinimum(t *testing.T) {
	// a's lower bound exceeds its balanced share, so it takes its minimum
	// and the rest is redistributed among the remaining flex children.
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	a.Intrinsic.Width = AtLeast(150)
	b := NewNode(style.NewPack())
	b.Style.Flex = 1
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentWidth != 150 {
		t.Errorf("a width = %d, want 150", a.Layout.ContentWidth)
	}
	if b.Layout.ContentWidth != 50 {
		t.Errorf("b width = %d, want 50", b.Layout.ContentWidth)
	}
}

func TestFlexGrowsFlexibleIntrinsicToShare(t *testing.T) {
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	a.Intrinsic.Width = AtLeast(20)
	b := NewNode(style.NewPack())
	b.Style.Flex = 1
	b.Intrinsic.Width = AtLeast(30)
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 400, 100)

	if a.Layout.ContentWidth != 200 || b.Layout.ContentWidth != 200 {
		t.Errorf("widths = %d, %d, want 200, 200",
			a.Layout.ContentWidth, b.Layout.ContentWidth)
	}
	if a.Layout.MinContentWidth != 20 || b.Layout.MinContentWidth != 30 {
		t.Errorf("min widths = %d, %d, want 20, 30",
			a.Layout.MinContentWidth, b.Layout.MinContentWidth)
	}
}

func TestFixedIntrinsicResistsFlex(t *testing.T) {
	// A fixed intrinsic size is exact. Flex on the child does not stretch it.
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	a.Intrinsic.Width = Exactly(60)
	a.Intrinsic.Height = Exactly(25)
	b := NewNode(style.NewPack())
	b.Style.Flex = 1
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 400, 100)

	if a.Layout.ContentWidth != 60 {
		t.Errorf("a width = %d, want 60", a.Layout.ContentWidth)
	}
	if a.Layout.ContentHeight != 25 {
		t.Errorf("a height = %d, want 25", a.Layout.ContentHeight)
	}
	if b.Layout.ContentWidth != 340 {
		t.Errorf("b width = %d, want 340", b.Layout.ContentWidth)
	}
}

func TestRowFlexibleIntrinsicWithoutFlexTakesMinimum(t *testing.T) {
	// A non-flex child with a flexible intrinsic width is pinned at its
	// lower bound; only flex weight lets it claim a share of free space.
	a := NewNode(style.NewPack())
	a.Intrinsic.Width = AtLeast(50)
	b := NewNode(style.NewPack())
	b.Style.Flex = 1
	root := NewNode(style.NewPack(), a, b)
	Layout(root, 300, 100)

	if a.Layout.ContentWidth != 50 {
		t.Errorf("a width = %d, want 50", a.Layout.ContentWidth)
	}
	if b.Layout.ContentLeft != 50 {
		t.Errorf("b left = %d, want 50", b.Layout.ContentLeft)
	}
	if b.Layout.ContentWidth != 250 {
		t.Errorf("b width = %d, want 250", b.Layout.ContentWidth)
	}
}

func TestRowCrossAxisAlignment(t *testing.T) {
	cases := []struct {
		name    string
		align   style.AlignItems
		wantTop int
	}{
		{"start", style.AlignStart, 0},
		{"center", style.AlignCenter, 40},
		{"end", style.AlignEnd, 80},
		{"unset", style.AlignNone, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			child := NewNode(fixedStyle(30, 20))
			s := style.NewPack()
			s.AlignItems = tc.align
			root := NewNode(s, child)
			Layout(root, 200, 100)

			if child.Layout.ContentTop != tc.wantTop {
				t.Errorf("top = %d, want %d", child.Layout.ContentTop, tc.wantTop)
			}
		})
	}
}

func TestColumnFixedChildrenStackTopToBottom(t *testing.T) {
	a := NewNode(fixedStyle(30, 20))
	b := NewNode(fixedStyle(40, 50))
	s := style.NewPack()
	s.Direction = style.Column
	root := NewNode(s, a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentTop != 0 || b.Layout.ContentTop != 20 {
		t.Errorf("tops = %d, %d, want 0, 20",
			a.Layout.ContentTop, b.Layout.ContentTop)
	}
	if a.Layout.ContentLeft != 0 || b.Layout.ContentLeft != 0 {
		t.Errorf("lefts = %d, %d, want 0, 0",
			a.Layout.ContentLeft, b.Layout.ContentLeft)
	}
}

func TestColumnFlexSharesVerticalSpace(t *testing.T) {
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	b := NewNode(style.NewPack())
	b.Style.Flex = 2
	s := style.NewPack()
	s.Direction = style.Column
	root := NewNode(s, a, b)
	Layout(root, 100, 300)

	if a.Layout.ContentHeight != 100 {
		t.Errorf("a height = %d, want 100", a.Layout.ContentHeight)
	}
	if b.Layout.ContentHeight != 200 {
		t.Errorf("b height = %d, want 200", b.Layout.ContentHeight)
	}
	if b.Layout.ContentTop != 100 {
		t.Errorf("b top = %d, want 100", b.Layout.ContentTop)
	}
}

func TestColumnRTLStacksTopToBottom(t *testing.T) {
	// Text direction never reorders the vertical axis.
	a := NewNode(fixedStyle(30, 20))
	b := NewNode(fixedStyle(40, 50))
	s := style.NewPack()
	s.Direction = style.Column
	s.TextDirection = style.RTL
	root := NewNode(s, a, b)
	Layout(root, 200, 100)

	if a.Layout.ContentTop != 0 || b.Layout.ContentTop != 20 {
		t.Errorf("tops = %d, %d, want 0, 20",
			a.Layout.ContentTop, b.Layout.ContentTop)
	}
}

func TestColumnCrossAxisAlignmentFollowsTextDirection(t *testing.T) {
	cases := []struct {
		name     string
		td       style.TextDirection
		align    style.AlignItems
		wantLeft int
	}{
		{"ltr start", style.LTR, style.AlignStart, 0},
		{"ltr center", style.LTR, style.AlignCenter, 85},
		{"ltr end", style.LTR, style.AlignEnd, 170},
		{"rtl start", style.RTL, style.AlignStart, 170},
		{"rtl end", style.RTL, style.AlignEnd, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			child := NewNode(fixedStyle(30, 20))
			s := style.NewPack()
			s.Direction = style.Column
			s.TextDirection = tc.td
			s.AlignItems = tc.align
			root := NewNode(s, child)
			Layout(root, 200, 100)

			if child.Layout.ContentLeft != tc.wantLeft {
				t.Errorf("left = %d, want %d", child.Layout.ContentLeft, tc.wantLeft)
			}
		})
	}
}

func TestNestedRowsAndColumns(t *testing.T) {
	leaf1 := NewNode(fixedStyle(10, 10))
	leaf2 := NewNode(fixedStyle(10, 10))
	inner := NewNode(style.NewPack(), leaf1, leaf2)
	inner.Style.Direction = style.Column
	inner.Style.Width = style.Fixed(50)
	side := NewNode(fixedStyle(30, 30))
	root := NewNode(style.NewPack(), inner, side)
	Layout(root, 200, 100)

	if inner.Layout.ContentWidth != 50 {
		t.Errorf("inner width = %d, want 50", inner.Layout.ContentWidth)
	}
	if leaf2.Layout.ContentTop != 10 {
		t.Errorf("leaf2 top = %d, want 10", leaf2.Layout.ContentTop)
	}
	if side.Layout.ContentLeft != 50 {
		t.Errorf("side left = %d, want 50", side.Layout.ContentLeft)
	}
	left, top := leaf2.AbsolutePosition()
	if left != 0 || top != 10 {
		t.Errorf("leaf2 absolute = (%d, %d), want (0, 10)", left, top)
	}
}

func TestLeafWithoutHintsIsGreedy(t *testing.T) {
	child := NewNode(style.NewPack())
	root := NewNode(style.NewPack(), child)
	Layout(root, 300, 100)

	if child.Layout.ContentWidth != 300 {
		t.Errorf("child width = %d, want 300", child.Layout.ContentWidth)
	}
	if child.Layout.ContentHeight != 100 {
		t.Errorf("child height = %d, want 100", child.Layout.ContentHeight)
	}
	if child.Layout.MinContentWidth != 0 {
		t.Errorf("child min width = %d, want 0", child.Layout.MinContentWidth)
	}
}

func TestMinContentTracksNonHintedChildren(t *testing.T) {
	// A container child with no hints shrink-wraps its contents and
	// reports that extent as its minimum as well.
	grand := NewNode(fixedStyle(25, 15))
	child := NewNode(style.NewPack(), grand)
	root := NewNode(style.NewPack(), child)
	Layout(root, 300, 100)

	if child.Layout.ContentWidth != 25 {
		t.Errorf("child width = %d, want 25", child.Layout.ContentWidth)
	}
	if root.Layout.MinContentWidth != 25 {
		t.Errorf("root min width = %d, want 25", root.Layout.MinContentWidth)
	}
	if root.Layout.MinContentHeight != 15 {
		t.Errorf("root min height = %d, want 15", root.Layout.MinContentHeight)
	}
}

func TestZeroViewportClampsToZero(t *testing.T) {
	s := style.NewPack()
	s.SetMargin(10, 10, 10, 10)
	child := NewNode(style.NewPack())
	child.Style.SetMargin(10, 10, 10, 10)
	root := NewNode(s, child)
	Layout(root, 0, 0)

	if child.Layout.ContentWidth != 0 || child.Layout.ContentHeight != 0 {
		t.Errorf("child content = %dx%d, want 0x0",
			child.Layout.ContentWidth, child.Layout.ContentHeight)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	a := NewNode(style.NewPack())
	a.Style.Flex = 1
	a.Intrinsic.Width = AtLeast(150)
	b := NewNode(style.NewPack())
	b.Style.Flex = 2
	root := NewNode(style.NewPack(), a, b)

	Layout(root, 200, 100)
	first := []Box{root.Layout, a.Layout, b.Layout}
	Layout(root, 200, 100)
	second := []Box{root.Layout, a.Layout, b.Layout}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("box %d changed across runs: %+v then %+v", i, first[i], second[i])
		}
	}
}
