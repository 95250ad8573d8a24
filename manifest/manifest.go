// Package manifest loads node trees from YAML documents. A manifest
// describes the tree shape, each node's style properties, and optionally
// the intrinsic size a real widget would report.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DD2480-Group22-2025/toga/layout"
	"github.com/DD2480-Group22-2025/toga/style"
)

// NodeSpec is the YAML shape of a single node.
type NodeSpec struct {
	Direction     string  `yaml:"direction,omitempty"`
	Width         *int    `yaml:"width,omitempty"`
	Height        *int    `yaml:"height,omitempty"`
	Flex          float64 `yaml:"flex,omitempty"`
	MarginTop     int     `yaml:"margin_top,omitempty"`
	MarginRight   int     `yaml:"margin_right,omitempty"`
	MarginBottom  int     `yaml:"margin_bottom,omitempty"`
	MarginLeft    int     `yaml:"margin_left,omitempty"`
	AlignItems    string  `yaml:"align_items,omitempty"`
	TextAlign     string  `yaml:"text_align,omitempty"`
	TextDirection string  `yaml:"text_direction,omitempty"`
	Display       string  `yaml:"display,omitempty"`
	Visibility    string  `yaml:"visibility,omitempty"`

	Color      string `yaml:"color,omitempty"`
	Background string `yaml:"background_color,omitempty"`

	FontFamily  string `yaml:"font_family,omitempty"`
	FontStyle   string `yaml:"font_style,omitempty"`
	FontVariant string `yaml:"font_variant,omitempty"`
	FontWeight  string `yaml:"font_weight,omitempty"`
	FontSize    int    `yaml:"font_size,omitempty"`

	IntrinsicWidth  IntrinsicValue `yaml:"intrinsic_width,omitempty"`
	IntrinsicHeight IntrinsicValue `yaml:"intrinsic_height,omitempty"`

	Children []NodeSpec `yaml:"children,omitempty"`
}

// IntrinsicValue is an optional intrinsic dimension. In YAML it is either
// a plain integer (an exact size) or a ">=N" string (a flexible lower
// bound).
type IntrinsicValue struct {
	set      bool
	flexible bool
	value    int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *IntrinsicValue) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err == nil {
		*v = IntrinsicValue{set: true, value: n}
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("intrinsic size must be an integer or \">=N\" string")
	}
	if _, err := fmt.Sscanf(s, ">=%d", &n); err != nil {
		return fmt.Errorf("invalid intrinsic size %q", s)
	}
	*v = IntrinsicValue{set: true, flexible: true, value: n}
	return nil
}

// Dim converts to the layout engine's representation.
func (v IntrinsicValue) Dim() layout.Dim {
	switch {
	case !v.set:
		return layout.Dim{}
	case v.flexible:
		return layout.AtLeast(v.value)
	default:
		return layout.Exactly(v.value)
	}
}

// Load reads a YAML manifest and builds the node tree it describes.
func Load(r io.Reader) (*layout.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML manifest from a file.
func LoadFile(path string) (*layout.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*layout.Node, error) {
	var spec NodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return Build(spec)
}

// Build validates a spec tree and converts it to layout nodes.
func Build(spec NodeSpec) (*layout.Node, error) {
	node, err := buildNode(spec)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return node, nil
}

func buildNode(spec NodeSpec) (*layout.Node, error) {
	s := style.NewPack()

	keyword := func(name, value string) error {
		if value == "" {
			return nil
		}
		prop, ok := style.PropertyByName(name)
		if !ok || !prop.ValidChoice(value) {
			return fmt.Errorf("%s: invalid value %q", name, value)
		}
		return nil
	}

	if err := keyword("direction", spec.Direction); err != nil {
		return nil, err
	}
	if spec.Direction == "column" {
		s.Direction = style.Column
	}

	if spec.Width != nil {
		if *spec.Width < 0 {
			return nil, fmt.Errorf("width: negative value %d", *spec.Width)
		}
		s.Width = style.Fixed(*spec.Width)
	}
	if spec.Height != nil {
		if *spec.Height < 0 {
			return nil, fmt.Errorf("height: negative value %d", *spec.Height)
		}
		s.Height = style.Fixed(*spec.Height)
	}
	if spec.Flex < 0 {
		return nil, fmt.Errorf("flex: negative value %v", spec.Flex)
	}
	s.Flex = spec.Flex

	for _, m := range []struct {
		name  string
		value int
	}{
		{"margin_top", spec.MarginTop},
		{"margin_right", spec.MarginRight},
		{"margin_bottom", spec.MarginBottom},
		{"margin_left", spec.MarginLeft},
	} {
		if m.value < 0 {
			return nil, fmt.Errorf("%s: negative value %d", m.name, m.value)
		}
	}
	s.SetMargin(spec.MarginTop, spec.MarginRight, spec.MarginBottom, spec.MarginLeft)

	if err := keyword("align_items", spec.AlignItems); err != nil {
		return nil, err
	}
	switch spec.AlignItems {
	case "start":
		s.AlignItems = style.AlignStart
	case "center":
		s.AlignItems = style.AlignCenter
	case "end":
		s.AlignItems = style.AlignEnd
	}

	if err := keyword("text_align", spec.TextAlign); err != nil {
		return nil, err
	}
	switch spec.TextAlign {
	case "left":
		s.TextAlign = style.TextAlignLeft
	case "right":
		s.TextAlign = style.TextAlignRight
	case "center":
		s.TextAlign = style.TextAlignCenter
	case "justify":
		s.TextAlign = style.TextAlignJustify
	}

	if err := keyword("text_direction", spec.TextDirection); err != nil {
		return nil, err
	}
	if spec.TextDirection == "rtl" {
		s.TextDirection = style.RTL
	}

	if err := keyword("display", spec.Display); err != nil {
		return nil, err
	}
	if spec.Display == "none" {
		s.Display = style.DisplayNone
	}

	if err := keyword("visibility", spec.Visibility); err != nil {
		return nil, err
	}
	if spec.Visibility == "hidden" {
		s.Visibility = style.Hidden
	}

	for _, c := range []struct {
		name  string
		value string
	}{
		{"color", spec.Color},
		{"background_color", spec.Background},
	} {
		if c.value == "" {
			continue
		}
		if _, ok := style.ParseColor(style.Color(c.value)); !ok {
			return nil, fmt.Errorf("%s: invalid color %q", c.name, c.value)
		}
	}
	s.Color = style.Color(spec.Color)
	s.BackgroundColor = style.Color(spec.Background)

	if spec.FontFamily != "" {
		s.FontFamily = spec.FontFamily
	}
	if err := keyword("font_style", spec.FontStyle); err != nil {
		return nil, err
	}
	if spec.FontStyle != "" {
		s.FontStyle = spec.FontStyle
	}
	if err := keyword("font_variant", spec.FontVariant); err != nil {
		return nil, err
	}
	if spec.FontVariant != "" {
		s.FontVariant = spec.FontVariant
	}
	if err := keyword("font_weight", spec.FontWeight); err != nil {
		return nil, err
	}
	if spec.FontWeight != "" {
		s.FontWeight = spec.FontWeight
	}
	if spec.FontSize != 0 {
		if spec.FontSize < 0 {
			return nil, fmt.Errorf("font_size: negative value %d", spec.FontSize)
		}
		s.FontSize = spec.FontSize
	}

	children := make([]*layout.Node, 0, len(spec.Children))
	for i, childSpec := range spec.Children {
		child, err := buildNode(childSpec)
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		children = append(children, child)
	}

	node := layout.NewNode(s, children...)
	node.Intrinsic.Width = spec.IntrinsicWidth.Dim()
	node.Intrinsic.Height = spec.IntrinsicHeight.Dim()
	return node, nil
}
