package style

// Generic font families understood by every backend. Any other family name
// is passed through to the backend as-is.
const (
	FontFamilySystem    = "system"
	FontFamilyMessage   = "message"
	FontFamilySerif     = "serif"
	FontFamilySansSerif = "sans-serif"
	FontFamilyCursive   = "cursive"
	FontFamilyFantasy   = "fantasy"
	FontFamilyMonospace = "monospace"
)

// Font style keywords.
const (
	FontStyleNormal  = "normal"
	FontStyleItalic  = "italic"
	FontStyleOblique = "oblique"
)

// Font variant keywords.
const (
	FontVariantNormal    = "normal"
	FontVariantSmallCaps = "small_caps"
)

// Font weight keywords.
const (
	FontWeightNormal = "normal"
	FontWeightBold   = "bold"
)

// SystemDefaultFontSize asks the backend to use its platform default size.
const SystemDefaultFontSize = -1

// Font is a resolved font description forwarded to a backend whenever any
// font-related property changes.
type Font struct {
	Family  string
	Size    int
	Style   string
	Variant string
	Weight  string
}

// ResolvedFont collects the font-related properties into a single Font.
func (p *Pack) ResolvedFont() Font {
	return Font{
		Family:  p.FontFamily,
		Size:    p.FontSize,
		Style:   p.FontStyle,
		Variant: p.FontVariant,
		Weight:  p.FontWeight,
	}
}
