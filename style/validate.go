package style

import (
	"fmt"

	"github.com/balintv/txt2ppt/layout"
)

// Supported ranges. Lengths are in cm, font sizes in pt.
const (
	MinFontSize = 8.0
	MaxFontSize = 200.0

	MaxVerticalMargin   = 10.0
	MaxHorizontalMargin = 20.0
	MaxOffset           = 10.0
	MinBandHeight       = 1.0
	MaxBandHeight       = 10.0
	MaxIndent           = 20.0
)

// Validate checks every option against its supported range. The layout
// engine itself trusts its configuration.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeLine, ModeParagraph, ModeSubtitle, ModeBilingual:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOption, o.Mode)
	}
	switch o.Layout.Geometry.Align {
	case layout.AlignCenter, layout.AlignLeft, "":
	default:
		return fmt.Errorf("%w: unknown alignment %q", ErrInvalidOption, o.Layout.Geometry.Align)
	}

	cfg := o.Layout
	for _, t := range []struct {
		name string
		t    layout.Typography
	}{{"font.single", cfg.Single}, {"font.primary", cfg.Primary}, {"font.secondary", cfg.Secondary}} {
		if err := checkRange(t.name+".size", t.t.Size, MinFontSize, MaxFontSize, "pt"); err != nil {
			return err
		}
		if err := checkColor(t.name+".color", t.t.Color); err != nil {
			return err
		}
	}
	if err := checkColor("options.background", cfg.Background); err != nil {
		return err
	}

	g := cfg.Geometry
	for _, l := range []struct {
		name   string
		v      layout.Length
		lo, hi float64
	}{
		{"margin.top", g.Margin.Top, 0, MaxVerticalMargin},
		{"margin.bottom", g.Margin.Bottom, 0, MaxVerticalMargin},
		{"margin.left", g.Margin.Left, 0, MaxHorizontalMargin},
		{"margin.right", g.Margin.Right, 0, MaxHorizontalMargin},
		{"band.height", g.BandHeight, MinBandHeight, MaxBandHeight},
		{"band.primary-offset", g.PrimaryOffset, 0, MaxOffset},
		{"band.secondary-offset", g.SecondaryOffset, 0, MaxOffset},
		{"options.indent", g.Indent, 0, MaxIndent},
		{"options.first-line-indent", g.FirstLineIndent, -MaxIndent, MaxIndent},
	} {
		if err := checkRange(l.name, l.v.To(layout.UnitCM), l.lo, l.hi, "cm"); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(name string, v, lo, hi float64, unit string) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g%s and %g%s, got %g%s", ErrOutOfRange, name, lo, unit, hi, unit, v, unit)
	}
	return nil
}

func checkColor(name string, c layout.Color) error {
	for _, v := range []int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %s components must be 0-255", ErrOutOfRange, name)
		}
	}
	return nil
}
