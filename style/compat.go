package style

// Legacy alignment keywords. These survive only at the compatibility
// boundary; the layout engine reads AlignItems exclusively.
const (
	AlignmentLeft   = "left"
	AlignmentRight  = "right"
	AlignmentTop    = "top"
	AlignmentBottom = "bottom"
	AlignmentCenter = "center"
)

// Alignment computes the legacy alignment keyword equivalent to the current
// AlignItems value, taking direction and text direction into account. The
// second return value is false when there is no equivalent (alignment
// unset, or a start/end value with no legacy spelling for this axis).
func (p *Pack) Alignment() (string, bool) {
	switch p.AlignItems {
	case AlignCenter:
		return AlignmentCenter, true
	case AlignStart:
		if p.Direction == Column {
			if p.TextDirection == LTR {
				return AlignmentLeft, true
			}
			return AlignmentRight, true
		}
		return AlignmentTop, true
	case AlignEnd:
		if p.Direction == Column {
			if p.TextDirection == LTR {
				return AlignmentRight, true
			}
			return AlignmentLeft, true
		}
		return AlignmentBottom, true
	}
	return "", false
}

// SetAlignment sets AlignItems from a legacy alignment keyword. Keywords
// that have no meaning for the current axis (e.g. top in a column) unset
// the alignment.
func (p *Pack) SetAlignment(value string) {
	if value == AlignmentCenter {
		p.AlignItems = AlignCenter
		return
	}

	if p.Direction == Row {
		switch value {
		case AlignmentTop:
			p.AlignItems = AlignStart
		case AlignmentBottom:
			p.AlignItems = AlignEnd
		default:
			p.AlignItems = AlignNone
		}
		return
	}

	// Column: text direction decides which keyword is the leading edge.
	switch {
	case value == AlignmentLeft && p.TextDirection == LTR,
		value == AlignmentRight && p.TextDirection == RTL:
		p.AlignItems = AlignStart
	case value == AlignmentLeft || value == AlignmentRight:
		p.AlignItems = AlignEnd
	default:
		p.AlignItems = AlignNone
	}
}

// Padding aliases read and write through to the margin fields. They exist
// for callers migrating from the old property names.

// PaddingTop returns the top margin.
func (p *Pack) PaddingTop() int { return p.MarginTop }

// PaddingRight returns the right margin.
func (p *Pack) PaddingRight() int { return p.MarginRight }

// PaddingBottom returns the bottom margin.
func (p *Pack) PaddingBottom() int { return p.MarginBottom }

// PaddingLeft returns the left margin.
func (p *Pack) PaddingLeft() int { return p.MarginLeft }

// SetPaddingTop sets the top margin.
func (p *Pack) SetPaddingTop(v int) { p.MarginTop = v }

// SetPaddingRight sets the right margin.
func (p *Pack) SetPaddingRight(v int) { p.MarginRight = v }

// SetPaddingBottom sets the bottom margin.
func (p *Pack) SetPaddingBottom(v int) { p.MarginBottom = v }

// SetPaddingLeft sets the left margin.
func (p *Pack) SetPaddingLeft(v int) { p.MarginLeft = v }

// SetPadding sets all four margins at once, in CSS order.
func (p *Pack) SetPadding(top, right, bottom, left int) {
	p.SetMargin(top, right, bottom, left)
}
