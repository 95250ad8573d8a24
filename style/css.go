package style

import (
	"fmt"
	"strconv"
	"strings"
)

// CSS renders the resolved style record as inline CSS declarations, for
// interoperability with web-based rendering backends. It is a pure
// projection of the record; nothing here feeds back into layout.
func (p *Pack) CSS() string {
	var css []string

	if p.Display == DisplayNone {
		css = append(css, "display: none;")
	}
	// A visible PACK node inherits the stock flex display definition.

	if p.Visibility != Visible {
		css = append(css, fmt.Sprintf("visibility: %s;", p.Visibility))
	}

	css = append(css, fmt.Sprintf("flex-direction: %s;", p.Direction))

	// The flex shorthand only applies when the main-axis size is auto.
	if (p.Width.IsAuto() && p.Direction == Row) ||
		(p.Height.IsAuto() && p.Direction == Column) {
		css = append(css, fmt.Sprintf("flex: %s 0 auto;", formatFlex(p.Flex)))
	}

	if !p.Width.IsAuto() {
		css = append(css, fmt.Sprintf("width: %dpx;", p.Width.Value()))
	}
	if !p.Height.IsAuto() {
		css = append(css, fmt.Sprintf("height: %dpx;", p.Height.Value()))
	}

	if p.AlignItems != AlignNone {
		css = append(css, fmt.Sprintf("align-items: %s;", p.AlignItems))
	}

	if p.MarginTop != 0 {
		css = append(css, fmt.Sprintf("margin-top: %dpx;", p.MarginTop))
	}
	if p.MarginBottom != 0 {
		css = append(css, fmt.Sprintf("margin-bottom: %dpx;", p.MarginBottom))
	}
	if p.MarginLeft != 0 {
		css = append(css, fmt.Sprintf("margin-left: %dpx;", p.MarginLeft))
	}
	if p.MarginRight != 0 {
		css = append(css, fmt.Sprintf("margin-right: %dpx;", p.MarginRight))
	}

	if p.Color.IsSet() {
		css = append(css, fmt.Sprintf("color: %s;", p.Color))
	}
	if p.BackgroundColor.IsSet() {
		css = append(css, fmt.Sprintf("background-color: %s;", p.BackgroundColor))
	}

	if p.TextAlign != TextAlignNone {
		css = append(css, fmt.Sprintf("text-align: %s;", p.TextAlign))
	}
	if p.TextDirection != LTR {
		css = append(css, fmt.Sprintf("text-direction: %s;", p.TextDirection))
	}

	if p.FontFamily != FontFamilySystem {
		if strings.Contains(p.FontFamily, " ") {
			css = append(css, fmt.Sprintf("font-family: %q;", p.FontFamily))
		} else {
			css = append(css, fmt.Sprintf("font-family: %s;", p.FontFamily))
		}
	}
	if p.FontSize != SystemDefaultFontSize {
		css = append(css, fmt.Sprintf("font-size: %dpt;", p.FontSize))
	}
	if p.FontWeight != FontWeightNormal {
		css = append(css, fmt.Sprintf("font-weight: %s;", p.FontWeight))
	}
	if p.FontStyle != FontStyleNormal {
		css = append(css, fmt.Sprintf("font-style: %s;", p.FontStyle))
	}
	if p.FontVariant != FontVariantNormal {
		css = append(css, fmt.Sprintf("font-variant: %s;", p.FontVariant))
	}

	return strings.Join(css, " ")
}

// formatFlex renders a flex weight without a trailing ".0" for whole values.
func formatFlex(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
