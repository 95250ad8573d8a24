package layout

// Dim is an intrinsic dimension hint supplied by a node's content. It is
// one of three variants: absent (no constraint), exact (a fixed natural
// size), or at-least (a lower bound the engine may grow, e.g. wrappable
// text). The zero value is absent.
type Dim struct {
	kind  dimKind
	value int
}

type dimKind int

const (
	dimAbsent dimKind = iota
	dimExact
	dimAtLeast
)

// Exactly returns a fixed intrinsic dimension.
func Exactly(v int) Dim {
	return Dim{kind: dimExact, value: v}
}

// AtLeast returns a flexible intrinsic dimension with the given lower bound.
func AtLeast(v int) Dim {
	return Dim{kind: dimAtLeast, value: v}
}

// IsSet reports whether a hint is present at all.
func (d Dim) IsSet() bool {
	return d.kind != dimAbsent
}

// IsFlexible reports whether the hint is a growable lower bound rather than
// a fixed size.
func (d Dim) IsFlexible() bool {
	return d.kind == dimAtLeast
}

// Value returns the underlying numeric value; only meaningful when IsSet().
func (d Dim) Value() int {
	return d.value
}

// IntrinsicSize is the per-node natural size hint, supplied by the widget
// content (text measurement, native control sizing). It must stay stable
// for the duration of one layout pass; the engine never writes to it.
type IntrinsicSize struct {
	Width  Dim
	Height Dim
}
