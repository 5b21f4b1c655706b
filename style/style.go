// Package style resolves deck options from defaults, style sheets and
// key/value overrides, and validates them against the supported ranges.
package style

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/balintv/txt2ppt/dsl"
	"github.com/balintv/txt2ppt/layout"
	"github.com/balintv/txt2ppt/segment"
)

var (
	// ErrInvalidOption reports an unknown key or an unparsable value.
	ErrInvalidOption = errors.New("style: invalid option")
	// ErrOutOfRange reports a value outside its supported bounds.
	ErrOutOfRange = errors.New("style: value out of range")
)

// Mode is the top-level mode selector.
type Mode string

const (
	ModeLine      Mode = "line"
	ModeParagraph Mode = "paragraph"
	ModeSubtitle  Mode = "subtitle"
	ModeBilingual Mode = "bilingual"
)

// ParseMode accepts the mode names used in style sheets and forms.
func ParseMode(v string) (Mode, error) {
	if strings.EqualFold(strings.TrimSpace(v), string(ModeBilingual)) {
		return ModeBilingual, nil
	}
	m, err := segment.ParseMode(v)
	if err != nil {
		return "", err
	}
	return Mode(m.String()), nil
}

// Options is everything one deck build needs besides its source.
type Options struct {
	Mode               Mode          `json:"mode"`
	PreserveBlankLines bool          `json:"preserveBlankLines"`
	BlankAsSeparator   bool          `json:"blankAsSeparator"`
	BlankLineSlide     bool          `json:"blankLineSlide"`
	Layout             layout.Config `json:"layout"`
}

// Default returns the stock options: single-line subtitles, white 44pt
// Arial on black, widescreen, shrink-to-fit and centered.
func Default() Options {
	white := layout.Color{R: 255, G: 255, B: 255}
	return Options{
		Mode:               ModeLine,
		PreserveBlankLines: true,
		BlankAsSeparator:   false,
		BlankLineSlide:     true,
		Layout: layout.Config{
			Mode:       layout.ModeSingle,
			Widescreen: true,
			Background: layout.Color{},
			Single:     layout.Typography{Font: layout.DefaultFont, Size: 44, Color: white},
			Primary:    layout.Typography{Font: layout.DefaultFont, Size: 44, Color: white, Italic: true},
			Secondary:  layout.Typography{Font: layout.DefaultFont, Size: 44, Color: layout.Color{R: 200, G: 200, B: 200}},
			Geometry: layout.Geometry{
				Margin: layout.Margin{
					Top:    layout.Centimeters(1),
					Bottom: layout.Centimeters(1),
					Left:   layout.Centimeters(3),
					Right:  layout.Centimeters(3),
				},
				Align:           layout.AlignCenter,
				ShrinkToFit:     true,
				BandHeight:      layout.Centimeters(4),
				PrimaryOffset:   layout.Centimeters(1),
				SecondaryOffset: layout.Centimeters(5),
			},
		},
	}
}

// Bilingual reports whether lines are paired two per slide.
func (o Options) Bilingual() bool { return o.Mode == ModeBilingual }

// SegmentMode maps the top-level mode to the segmenter mode. Bilingual
// decks are paired from raw lines.
func (o Options) SegmentMode() segment.Mode {
	m, err := segment.ParseMode(string(o.Mode))
	if err != nil {
		return segment.ModeLine
	}
	return m
}

// Config returns the layout configuration with its mode synced to o.Mode.
func (o Options) Config() layout.Config {
	cfg := o.Layout
	cfg.Mode = layout.ModeSingle
	if o.Bilingual() {
		cfg.Mode = layout.ModeBilingual
	}
	return cfg
}

// Apply sets every assignment of a parsed style sheet, in order.
func (o *Options) Apply(sheet *dsl.Sheet) error {
	if sheet == nil {
		return nil
	}
	for _, sec := range sheet.Sections {
		for _, a := range sec.Block.Assignments {
			if err := o.Set(sec.Key()+"."+a.Key, a.Value.Text()); err != nil {
				return fmt.Errorf("line %d: %w", a.Pos.Line, err)
			}
		}
	}
	return nil
}

// SetAll applies overrides in key order.
func (o *Options) SetAll(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := o.Set(k, overrides[k]); err != nil {
			return err
		}
	}
	return nil
}

// Load parses a style sheet on top of the defaults and validates the
// result. A nil reader yields the defaults.
func Load(r io.Reader) (Options, error) {
	return Resolve(r, nil)
}

// Resolve builds options from the defaults, an optional style sheet and
// overrides, then validates them.
func Resolve(sheet io.Reader, overrides map[string]string) (Options, error) {
	opts := Default()
	if sheet != nil {
		parsed, err := dsl.Parse(sheet)
		if err != nil {
			return Options{}, fmt.Errorf("%w: style sheet: %v", ErrInvalidOption, err)
		}
		if err := opts.Apply(parsed); err != nil {
			return Options{}, err
		}
	}
	if err := opts.SetAll(overrides); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
