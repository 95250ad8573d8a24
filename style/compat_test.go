package style

import "testing"

func TestAlignmentKeywordRoundTrip(t *testing.T) {
	cases := []struct {
		direction Direction
		td        TextDirection
		keyword   string
		align     AlignItems
	}{
		{Row, LTR, AlignmentTop, AlignStart},
		{Row, LTR, AlignmentBottom, AlignEnd},
		{Row, LTR, AlignmentCenter, AlignCenter},
		{Column, LTR, AlignmentLeft, AlignStart},
		{Column, LTR, AlignmentRight, AlignEnd},
		{Column, RTL, AlignmentRight, AlignStart},
		{Column, RTL, AlignmentLeft, AlignEnd},
		{Column, RTL, AlignmentCenter, AlignCenter},
	}
	for _, tc := range cases {
		p := NewPack()
		p.Direction = tc.direction
		p.TextDirection = tc.td
		p.SetAlignment(tc.keyword)

		if p.AlignItems != tc.align {
			t.Errorf("%v/%v %q: align = %v, want %v",
				tc.direction, tc.td, tc.keyword, p.AlignItems, tc.align)
			continue
		}
		got, ok := p.Alignment()
		if !ok || got != tc.keyword {
			t.Errorf("%v/%v: round trip gave %q (%v), want %q",
				tc.direction, tc.td, got, ok, tc.keyword)
		}
	}
}

func TestAlignmentKeywordOffAxisUnsets(t *testing.T) {
	p := NewPack()
	p.AlignItems = AlignCenter
	p.SetAlignment(AlignmentLeft) // meaningless in a row
	if p.AlignItems != AlignNone {
		t.Errorf("align = %v, want unset", p.AlignItems)
	}

	p.Direction = Column
	p.AlignItems = AlignCenter
	p.SetAlignment(AlignmentTop) // meaningless in a column
	if p.AlignItems != AlignNone {
		t.Errorf("align = %v, want unset", p.AlignItems)
	}
}

func TestAlignmentUnsetHasNoKeyword(t *testing.T) {
	p := NewPack()
	if kw, ok := p.Alignment(); ok {
		t.Errorf("unset alignment produced keyword %q", kw)
	}
}

func TestPaddingAliasesMargins(t *testing.T) {
	p := NewPack()
	p.SetPadding(1, 2, 3, 4)

	if p.MarginTop != 1 || p.MarginRight != 2 || p.MarginBottom != 3 || p.MarginLeft != 4 {
		t.Errorf("margins = %d %d %d %d",
			p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft)
	}
	p.MarginLeft = 9
	if p.PaddingLeft() != 9 {
		t.Errorf("PaddingLeft = %d, want 9", p.PaddingLeft())
	}
	p.SetPaddingTop(7)
	if p.MarginTop != 7 {
		t.Errorf("MarginTop = %d, want 7", p.MarginTop)
	}
}
