package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines the layout result shared by the engine, renderers and debug JSON.

// Result holds the laid out deck: slide size, slides in order and metadata.
type Result struct {
	Width  EMU          `json:"width"`
	Height EMU          `json:"height"`
	Slides []Slide      `json:"slides"`
	Meta   DocumentMeta `json:"meta"`
}

// Slide is one slide with a solid background and its text boxes.
type Slide struct {
	Background Color     `json:"background"`
	Texts      []TextBox `json:"texts"`
}

// Role tells which typography a box was styled with.
type Role string

const (
	RoleSingle    Role = "single"
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// Align is the horizontal paragraph alignment.
type Align string

const (
	AlignCenter Align = "center"
	AlignLeft   Align = "left"
)

// Anchor is the vertical text anchor inside a box.
type Anchor string

const AnchorBottom Anchor = "bottom"

// AutoFit is the box sizing policy.
type AutoFit string

const (
	AutoFitNone   AutoFit = "none"
	AutoFitShrink AutoFit = "shrink"
)

// TextBox is a text frame with absolute coordinates in EMU.
// Insets are always zero and word wrap is always on.
type TextBox struct {
	Role            Role          `json:"role"`
	Content         string        `json:"content"`
	X               EMU           `json:"x"`
	Y               EMU           `json:"y"`
	Width           EMU           `json:"width"`
	Height          EMU           `json:"height"`
	Font            string        `json:"font"`
	FontSize        float64       `json:"fontSize"` // pt
	Color           Color         `json:"color"`
	Bold            bool          `json:"bold"`
	Italic          bool          `json:"italic"`
	Align           Align         `json:"align"`
	Anchor          Anchor        `json:"anchor"`
	WordWrap        bool          `json:"wordWrap"`
	AutoFit         AutoFit       `json:"autoFit"`
	FontScale       float64       `json:"fontScale,omitempty"` // 0 < s <= 1, 0 when unknown
	Indent          EMU           `json:"indent,omitempty"`
	FirstLineIndent EMU           `json:"firstLineIndent,omitempty"`
	Debug           *TextBoxDebug `json:"debug,omitempty"`
}

// TextBoxDebug holds optional debug info emitted only when enabled by BuildOptions.
type TextBoxDebug struct {
	RawUnits map[string]RawLengthJSON `json:"rawUnits,omitempty"`
}

// RawLengthJSON is a JSON-friendly representation of Length.
type RawLengthJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func rawLength(l Length) RawLengthJSON {
	return RawLengthJSON{Value: l.Value, Unit: UnitToString(l.Unit)}
}

// Color uses 0-255 RGB components.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Hex returns the color as RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", clamp8(c.R), clamp8(c.G), clamp8(c.B))
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ParseColor accepts #RGB, #RRGGBB and #RRGGBBAA (alpha ignored), with or without '#'.
func ParseColor(value string) (Color, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(value) {
	case 3:
		value = strings.Repeat(value[0:1], 2) + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2)
	case 6:
	case 8:
		value = value[:6]
	default:
		return Color{}, fmt.Errorf("layout: invalid color %q", value)
	}
	n, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("layout: invalid color %q", value)
	}
	return Color{R: int(n >> 16 & 0xFF), G: int(n >> 8 & 0xFF), B: int(n & 0xFF)}, nil
}

// DocumentMeta holds the presentation core properties.
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
