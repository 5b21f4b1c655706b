package layout

import "strings"

// DefaultFont replaces a blank font family.
const DefaultFont = "Arial"

// Widescreen slide size (13.33in x 7.5in).
var (
	WidescreenWidth  = Inches(13.33)
	WidescreenHeight = Inches(7.5)
)

// Mode selects the slide layout family.
type Mode string

const (
	ModeSingle    Mode = "single"
	ModeBilingual Mode = "bilingual"
)

// Typography styles the text of one box role.
type Typography struct {
	Font   string  `json:"font"`
	Size   float64 `json:"size"` // pt
	Color  Color   `json:"color"`
	Bold   bool    `json:"bold"`
	Italic bool    `json:"italic"`
}

// FontName returns the trimmed font family, or DefaultFont when blank.
func (t Typography) FontName() string {
	if name := strings.TrimSpace(t.Font); name != "" {
		return name
	}
	return DefaultFont
}

// Margin is the distance kept free on each slide edge.
type Margin struct {
	Top    Length `json:"top"`
	Bottom Length `json:"bottom"`
	Left   Length `json:"left"`
	Right  Length `json:"right"`
}

// Geometry positions text boxes on the slide.
//
// Single-line slides use all four margins. Bilingual slides use Left and
// Right only; each box is BandHeight tall and sits its offset above the
// bottom edge.
type Geometry struct {
	Margin          Margin `json:"margin"`
	Align           Align  `json:"align"`
	ShrinkToFit     bool   `json:"shrinkToFit"`
	BandHeight      Length `json:"bandHeight"`
	PrimaryOffset   Length `json:"primaryOffset"`
	SecondaryOffset Length `json:"secondaryOffset"`
	Indent          Length `json:"indent"`
	FirstLineIndent Length `json:"firstLineIndent"`
}

// Config describes one deck build. It is treated as already validated.
type Config struct {
	Mode       Mode         `json:"mode"`
	Widescreen bool         `json:"widescreen"`
	Background Color        `json:"background"`
	Single     Typography   `json:"single"`
	Primary    Typography   `json:"primary"`
	Secondary  Typography   `json:"secondary"`
	Geometry   Geometry     `json:"geometry"`
	Meta       DocumentMeta `json:"meta"`
}

// Typography returns the style for role. It does not look at Mode: a
// TextLine is styled as single and a TextPair as primary and secondary
// whatever the deck's mode.
func (c Config) Typography(role Role) Typography {
	switch role {
	case RolePrimary:
		return c.Primary
	case RoleSecondary:
		return c.Secondary
	default:
		return c.Single
	}
}
