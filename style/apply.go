package style

// Applicator receives style signals for a single visual element. The layout
// algorithm never calls these; the layer that owns the style record forwards
// property changes through Apply.
type Applicator interface {
	SetTextAlign(align TextAlign)
	SetColor(c Color)
	SetBackgroundColor(c Color)
	SetHidden(hidden bool)
	SetFont(f Font)

	// Refresh signals that layout geometry changed and the element tree
	// should be laid out and repositioned again.
	Refresh()
}

// Owner links a style record back into the node tree so that visibility can
// be resolved against ancestors.
type Owner interface {
	// ParentStyle returns the style of the owning node's parent, or nil at
	// the root.
	ParentStyle() *Pack
}

// SetApplicator attaches the backend sink for this style record.
func (p *Pack) SetApplicator(a Applicator) {
	p.applicator = a
}

// SetOwner attaches the node owning this style record.
func (p *Pack) SetOwner(o Owner) {
	p.owner = o
}

// Apply forwards the current value of the named property to the applicator.
// Property names are the canonical schema names (see Properties). Properties
// without a dedicated signal trigger a Refresh, since any of them can change
// layout geometry.
func (p *Pack) Apply(name string) {
	if p.applicator == nil {
		return
	}

	switch name {
	case "text_align":
		p.applicator.SetTextAlign(p.resolvedTextAlign())
	case "text_direction":
		// A direction change only matters to text when the alignment is
		// deferring to it.
		if p.TextAlign == TextAlignNone {
			p.applicator.SetTextAlign(p.resolvedTextAlign())
		}
	case "color":
		p.applicator.SetColor(p.Color)
	case "background_color":
		p.applicator.SetBackgroundColor(p.BackgroundColor)
	case "visibility":
		p.applicator.SetHidden(p.effectiveHidden())
	case "font_family", "font_size", "font_style", "font_variant", "font_weight":
		p.applicator.SetFont(p.ResolvedFont())
	default:
		p.applicator.Refresh()
	}
}

// ApplyAll forwards every property to the applicator, in schema order.
func (p *Pack) ApplyAll() {
	for _, prop := range Properties {
		p.Apply(prop.Name)
	}
}

// resolvedTextAlign defaults an unset alignment by text direction.
func (p *Pack) resolvedTextAlign() TextAlign {
	if p.TextAlign != TextAlignNone {
		return p.TextAlign
	}
	if p.TextDirection == RTL {
		return TextAlignRight
	}
	return TextAlignLeft
}

// effectiveHidden resolves visibility against ancestors: a node is hidden if
// its own style or any ancestor's style declares Hidden.
func (p *Pack) effectiveHidden() bool {
	if p.Hidden() {
		return true
	}
	for cur := p; cur != nil && cur.owner != nil; {
		parent := cur.owner.ParentStyle()
		if parent == nil {
			break
		}
		if parent.Hidden() {
			return true
		}
		cur = parent
	}
	return false
}
