package page

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB colour.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 { //nolint:mnd // rrggbb
		return Color{}, fmt.Errorf("page: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("page: invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil //nolint:gosec // masked by 6 hex digits
}

// MustColor is ParseColor for compile-time constants.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Font families understood by the layout collaborator.
const (
	FontBody = "Helvetica"
	FontMono = "Courier"
)

// ParagraphStyle describes one named paragraph style.
type ParagraphStyle struct {
	Name        string
	Font        string
	Size        float64
	Bold        bool
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
}

// Style holds every visual decision of the paginated renderer.
type Style struct {
	// Headings is indexed by level-1.
	Headings [6]ParagraphStyle
	Body     ParagraphStyle

	CodeFont       string
	CodeSize       float64
	CodeBackground Color
	CodeBorder     Color
	CodePadding    float64
	CodeIndent     float64
	// CodeCaptions labels each code block with its language, guessing
	// it when the fence has no tag.
	CodeCaptions bool

	InlineCodeColor      Color
	InlineCodeBackground Color
	LinkColor            Color

	Bullet string
	// MaxListIndent caps the left indent of nested list lines.
	MaxListIndent float64

	HeadingSpacer float64
	BodySpacer    float64
	BlockSpacer   float64

	RuleThickness float64
	RuleColor     Color
	RuleWidth     float64
}

// DefaultStyle returns the house style: 24/18/14pt headings in slate, 10pt
// body text and 9pt Courier code on a light grey panel.
func DefaultStyle() Style {
	heading := MustColor("#2c3e50")
	black := Color{}

	return Style{
		Headings: [6]ParagraphStyle{
			{Name: "Heading1", Font: FontBody, Size: 24, Bold: true, Color: heading, SpaceBefore: 12, SpaceAfter: 12},
			{Name: "Heading2", Font: FontBody, Size: 18, Bold: true, Color: heading, SpaceBefore: 10, SpaceAfter: 10},
			{Name: "Heading3", Font: FontBody, Size: 14, Bold: true, Color: heading, SpaceBefore: 8, SpaceAfter: 8},
			{Name: "Heading4", Font: FontBody, Size: 12, Bold: true, Color: black, SpaceBefore: 6, SpaceAfter: 6},
			{Name: "Heading5", Font: FontBody, Size: 11, Bold: true, Color: black, SpaceBefore: 6, SpaceAfter: 6},
			{Name: "Heading6", Font: FontBody, Size: 10, Bold: true, Color: black, SpaceBefore: 6, SpaceAfter: 6},
		},
		Body: ParagraphStyle{Name: "Body", Font: FontBody, Size: 10, Color: black, SpaceAfter: 6},

		CodeFont:       FontMono,
		CodeSize:       9,
		CodeBackground: MustColor("#f6f8fa"),
		CodeBorder:     MustColor("#dddddd"),
		CodePadding:    10,
		CodeIndent:     10,

		InlineCodeColor:      MustColor("#c7254e"),
		InlineCodeBackground: MustColor("#f9f2f4"),
		LinkColor:            MustColor("#0366d6"),

		Bullet:        "• ",
		MaxListIndent: 144,

		HeadingSpacer: 6,
		BodySpacer:    6,
		BlockSpacer:   12,

		RuleThickness: 1,
		RuleColor:     MustColor("#808080"),
		RuleWidth:     100,
	}
}

// Heading returns the style for a heading level, clamped to 1..6.
func (s Style) Heading(level int) ParagraphStyle {
	level = min(max(level, 1), len(s.Headings))
	return s.Headings[level-1]
}
