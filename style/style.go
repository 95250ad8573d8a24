// Package style provides the resolved style record consumed by the layout
// engine and forwarded to rendering backends. A Pack holds already-validated
// values; validation of raw input happens upstream against the Properties
// schema.
package style

// Direction represents the main axis along which children are laid out.
type Direction int

const (
	Row Direction = iota
	Column
)

// String returns the keyword form of the direction.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// AlignItems represents cross-axis alignment of children within a node.
// The zero value means "unset", which behaves as start alignment.
type AlignItems int

const (
	AlignNone AlignItems = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// String returns the keyword form of the alignment, or "" when unset.
func (a AlignItems) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return ""
}

// TextDirection governs horizontal placement for row layouts and which
// alignment keyword means the trailing edge for column layouts.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

// String returns the keyword form of the text direction.
func (t TextDirection) String() string {
	if t == RTL {
		return "rtl"
	}
	return "ltr"
}

// Display controls whether a node participates in its parent's layout.
type Display int

const (
	DisplayPack Display = iota
	DisplayNone
)

// String returns the keyword form of the display mode.
func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "pack"
}

// Visibility is a painting signal only; a hidden node occupies layout space
// identically to a visible one.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// String returns the keyword form of the visibility.
func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// TextAlign represents horizontal text alignment. The zero value means
// "unset"; the effective alignment then follows the text direction.
type TextAlign int

const (
	TextAlignNone TextAlign = iota
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// String returns the keyword form of the text alignment, or "" when unset.
func (t TextAlign) String() string {
	switch t {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	}
	return ""
}

// Size is an optional explicit dimension. The zero value is "auto". A fixed
// size of 0 is valid and distinct from auto.
type Size struct {
	set   bool
	value int
}

// Fixed returns a Size fixed to the given number of pixels.
func Fixed(v int) Size {
	return Size{set: true, value: v}
}

// Auto is the unset dimension.
var Auto = Size{}

// IsAuto reports whether the dimension is unset.
func (s Size) IsAuto() bool {
	return !s.set
}

// Value returns the fixed dimension; only meaningful when !IsAuto().
func (s Size) Value() int {
	return s.value
}

// Pack is the style record for a single node: the main-axis direction, the
// box sizing inputs read by the layout engine, and the painting signals
// forwarded to an Applicator. It is pure configuration; nothing here mutates
// layout state.
type Pack struct {
	Direction Direction
	Width     Size
	Height    Size
	Flex      float64

	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int

	AlignItems    AlignItems
	TextAlign     TextAlign
	TextDirection TextDirection

	Display    Display
	Visibility Visibility

	Color           Color
	BackgroundColor Color

	FontFamily  string
	FontStyle   string
	FontVariant string
	FontWeight  string
	FontSize    int

	applicator Applicator
	owner      Owner
}

// NewPack returns a style record with all attributes at their defaults.
func NewPack() *Pack {
	return &Pack{
		FontFamily:  FontFamilySystem,
		FontStyle:   FontStyleNormal,
		FontVariant: FontVariantNormal,
		FontWeight:  FontWeightNormal,
		FontSize:    SystemDefaultFontSize,
	}
}

// Hidden reports whether this style declares an object that should be hidden.
func (p *Pack) Hidden() bool {
	return p.Visibility == Hidden
}

// SetMargin sets all four margins at once, in CSS order.
func (p *Pack) SetMargin(top, right, bottom, left int) {
	p.MarginTop = top
	p.MarginRight = right
	p.MarginBottom = bottom
	p.MarginLeft = left
}
