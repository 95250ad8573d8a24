package style

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is a declared color value. The empty string means "unset". Values
// are kept in their declared textual form; backends resolve them to pixels
// with ParseColor.
type Color string

// Transparent is the explicit no-paint background value.
const Transparent Color = "transparent"

// IsSet reports whether a color was declared.
func (c Color) IsSet() bool {
	return c != ""
}

// namedColors maps supported color keywords to their RGBA values.
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"silver":  {192, 192, 192, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"white":   {255, 255, 255, 255},
	"maroon":  {128, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"purple":  {128, 0, 128, 255},
	"fuchsia": {255, 0, 255, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"olive":   {128, 128, 0, 255},
	"yellow":  {255, 255, 0, 255},
	"navy":    {0, 0, 128, 255},
	"blue":    {0, 0, 255, 255},
	"teal":    {0, 128, 128, 255},
	"aqua":    {0, 255, 255, 255},

	"cornflowerblue": {100, 149, 237, 255},
	"crimson":        {220, 20, 60, 255},
	"cyan":           {0, 255, 255, 255},
	"darkblue":       {0, 0, 139, 255},
	"darkgray":       {169, 169, 169, 255},
	"darkgreen":      {0, 100, 0, 255},
	"darkred":        {139, 0, 0, 255},
	"firebrick":      {178, 34, 34, 255},
	"gold":           {255, 215, 0, 255},
	"goldenrod":      {218, 165, 32, 255},
	"hotpink":        {255, 105, 180, 255},
	"indigo":         {75, 0, 130, 255},
	"ivory":          {255, 255, 240, 255},
	"khaki":          {240, 230, 140, 255},
	"lightblue":      {173, 216, 230, 255},
	"lightgray":      {211, 211, 211, 255},
	"lightgreen":     {144, 238, 144, 255},
	"magenta":        {255, 0, 255, 255},
	"orange":         {255, 165, 0, 255},
	"orchid":         {218, 112, 214, 255},
	"pink":           {255, 192, 203, 255},
	"rebeccapurple":  {102, 51, 153, 255},
	"salmon":         {250, 128, 114, 255},
	"seagreen":       {46, 139, 87, 255},
	"skyblue":        {135, 206, 235, 255},
	"slateblue":      {106, 90, 205, 255},
	"slategray":      {112, 128, 144, 255},
	"tomato":         {255, 99, 71, 255},
	"turquoise":      {64, 224, 208, 255},
	"violet":         {238, 130, 238, 255},
	"wheat":          {245, 222, 179, 255},

	"transparent": {0, 0, 0, 0},
}

// ParseColor resolves a declared color to RGBA. It accepts color keywords,
// #rgb/#rgba/#rrggbb/#rrggbbaa hex forms, and rgb()/rgba() functions.
func ParseColor(c Color) (color.RGBA, bool) {
	s := strings.TrimSpace(strings.ToLower(string(c)))
	if s == "" {
		return color.RGBA{}, false
	}

	if rgba, ok := namedColors[s]; ok {
		return rgba, true
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunction(s)
	}

	return color.RGBA{}, false
}

// parseHexColor parses the digits of a hex color, without the leading '#'.
func parseHexColor(s string) (color.RGBA, bool) {
	switch len(s) {
	case 3, 4:
		var v [4]uint8
		for i := 0; i < len(s); i++ {
			n, err := strconv.ParseUint(string(s[i]), 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			v[i] = uint8(n * 17) // expand each digit, e.g. "f" -> 0xff
		}
		if len(s) == 3 {
			v[3] = 255
		}
		return color.RGBA{v[0], v[1], v[2], v[3]}, true
	case 6, 8:
		var v [4]uint8
		for i := 0; i+1 < len(s); i += 2 {
			n, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			v[i/2] = uint8(n)
		}
		if len(s) == 6 {
			v[3] = 255
		}
		return color.RGBA{v[0], v[1], v[2], v[3]}, true
	}
	return color.RGBA{}, false
}

// parseRGBFunction parses rgb(r, g, b) and rgba(r, g, b, a) with numeric
// components; the alpha component is a 0-1 fraction.
func parseRGBFunction(s string) (color.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	close := strings.IndexByte(s, ')')
	if open < 0 || close < open {
		return color.RGBA{}, false
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, false
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		v[i] = uint8(n)
	}

	a := uint8(255)
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return color.RGBA{}, false
		}
		a = uint8(f * 255)
	}
	return color.RGBA{v[0], v[1], v[2], a}, true
}
