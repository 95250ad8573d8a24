package style

// Property describes one style attribute for the upstream validation layer:
// its canonical name, its keyword choices, and what kind of non-keyword
// value it accepts. The schema is plain data; nothing registers itself.
type Property struct {
	Name    string
	Choices []string // allowed keywords; empty when only numeric/color
	Integer bool     // accepts a non-negative integer
	Number  bool     // accepts a non-negative number
	Color   bool     // accepts a color value
	Initial string   // default keyword, "" for zero/auto defaults
}

// Properties lists every style attribute, in apply order.
var Properties = []Property{
	{Name: "display", Choices: []string{"pack", "none"}, Initial: "pack"},
	{Name: "visibility", Choices: []string{"visible", "hidden"}, Initial: "visible"},
	{Name: "direction", Choices: []string{"row", "column"}, Initial: "row"},
	{Name: "align_items", Choices: []string{"start", "center", "end"}},

	{Name: "width", Choices: []string{"none"}, Integer: true, Initial: "none"},
	{Name: "height", Choices: []string{"none"}, Integer: true, Initial: "none"},
	{Name: "flex", Number: true},

	{Name: "margin_top", Integer: true},
	{Name: "margin_right", Integer: true},
	{Name: "margin_bottom", Integer: true},
	{Name: "margin_left", Integer: true},

	{Name: "color", Color: true},
	{Name: "background_color", Choices: []string{"transparent"}, Color: true},

	{Name: "text_align", Choices: []string{"left", "right", "center", "justify"}},
	{Name: "text_direction", Choices: []string{"rtl", "ltr"}, Initial: "ltr"},

	{Name: "font_family", Choices: []string{
		FontFamilySystem, FontFamilyMessage, FontFamilySerif,
		FontFamilySansSerif, FontFamilyCursive, FontFamilyFantasy,
		FontFamilyMonospace,
	}, Initial: FontFamilySystem},
	{Name: "font_style", Choices: []string{FontStyleNormal, FontStyleItalic, FontStyleOblique}, Initial: FontStyleNormal},
	{Name: "font_variant", Choices: []string{FontVariantNormal, FontVariantSmallCaps}, Initial: FontVariantNormal},
	{Name: "font_weight", Choices: []string{FontWeightNormal, FontWeightBold}, Initial: FontWeightNormal},
	{Name: "font_size", Integer: true},
}

// PropertyByName looks up a schema entry by canonical name.
func PropertyByName(name string) (Property, bool) {
	for _, p := range Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// ValidChoice reports whether the keyword is an allowed choice for this
// property.
func (p Property) ValidChoice(value string) bool {
	for _, c := range p.Choices {
		if c == value {
			return true
		}
	}
	return false
}
