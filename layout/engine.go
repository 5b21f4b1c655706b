package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/balintv/txt2ppt/segment"
)

// ErrNoCanvas is returned when BuildOptions carries no Canvas.
var ErrNoCanvas = errors.New("layout: missing canvas")

// Engine places the content of one unit on one slide.
type Engine struct {
	cfg    Config
	width  EMU
	height EMU
	fitter Fitter
	debug  DebugOptions
}

// NewEngine resolves the slide size for cfg. Widescreen decks are
// 13.33in x 7.5in; other decks keep the canvas default.
func NewEngine(cfg Config, opts BuildOptions) (*Engine, error) {
	if opts.Canvas == nil {
		return nil, ErrNoCanvas
	}
	width, height := opts.Canvas.DefaultSize()
	if cfg.Widescreen {
		width, height = WidescreenWidth, WidescreenHeight
	}
	return &Engine{
		cfg:    cfg,
		width:  width,
		height: height,
		fitter: opts.Fitter,
		debug:  opts.Debug,
	}, nil
}

// Size returns the slide dimensions.
func (e *Engine) Size() (EMU, EMU) { return e.width, e.height }

// Layout returns the slide for u. A BlankMarker gets the background only,
// a TextLine one box, and a TextPair two boxes even when both lines are empty.
func (e *Engine) Layout(u segment.Unit) (Slide, error) {
	slide := Slide{Background: e.cfg.Background}
	switch u := u.(type) {
	case segment.BlankMarker:
		return slide, nil
	case segment.TextLine:
		slide.Texts = []TextBox{e.singleBox(u.Text)}
	case segment.TextPair:
		g := e.cfg.Geometry
		slide.Texts = []TextBox{
			e.bandBox(RolePrimary, u.Primary, g.PrimaryOffset),
			e.bandBox(RoleSecondary, u.Secondary, g.SecondaryOffset),
		}
	default:
		return Slide{}, fmt.Errorf("layout: unsupported content unit %T", u)
	}
	for i := range slide.Texts {
		e.fit(&slide.Texts[i])
	}
	return slide, nil
}

// singleBox spans the slide minus all four margins.
func (e *Engine) singleBox(text string) TextBox {
	m := e.cfg.Geometry.Margin
	tb := e.box(RoleSingle, text)
	tb.X = m.Left.EMU()
	tb.Y = m.Top.EMU()
	tb.Width = e.width - (m.Left.EMU() + m.Right.EMU())
	tb.Height = e.height - (m.Top.EMU() + m.Bottom.EMU())
	if e.debug.RawUnits {
		tb.Debug = &TextBoxDebug{RawUnits: map[string]RawLengthJSON{
			"marginTop":    rawLength(m.Top),
			"marginBottom": rawLength(m.Bottom),
			"marginLeft":   rawLength(m.Left),
			"marginRight":  rawLength(m.Right),
		}}
	}
	return tb
}

// bandBox is BandHeight tall and sits offset above the bottom edge. A
// negative top is kept as is.
func (e *Engine) bandBox(role Role, text string, offset Length) TextBox {
	g := e.cfg.Geometry
	tb := e.box(role, text)
	band := g.BandHeight.EMU()
	tb.X = g.Margin.Left.EMU()
	tb.Y = e.height - offset.EMU() - band
	tb.Width = e.width - (g.Margin.Left.EMU() + g.Margin.Right.EMU())
	tb.Height = band
	if e.debug.RawUnits {
		tb.Debug = &TextBoxDebug{RawUnits: map[string]RawLengthJSON{
			"bandHeight":  rawLength(g.BandHeight),
			"offset":      rawLength(offset),
			"marginLeft":  rawLength(g.Margin.Left),
			"marginRight": rawLength(g.Margin.Right),
		}}
	}
	return tb
}

func (e *Engine) box(role Role, text string) TextBox {
	g := e.cfg.Geometry
	typo := e.cfg.Typography(role)
	align := g.Align
	if align != AlignLeft {
		align = AlignCenter
	}
	autoFit := AutoFitNone
	if g.ShrinkToFit {
		autoFit = AutoFitShrink
	}
	return TextBox{
		Role:            role,
		Content:         text,
		Font:            typo.FontName(),
		FontSize:        typo.Size,
		Color:           typo.Color,
		Bold:            typo.Bold,
		Italic:          typo.Italic,
		Align:           align,
		Anchor:          AnchorBottom,
		WordWrap:        true,
		AutoFit:         autoFit,
		Indent:          g.Indent.EMU(),
		FirstLineIndent: g.FirstLineIndent.EMU(),
	}
}

// fit asks the fitter for a font scale. Failures leave the scale unset so
// the presentation application computes it.
func (e *Engine) fit(tb *TextBox) {
	if tb.AutoFit != AutoFitShrink || e.fitter == nil || tb.Content == "" {
		return
	}
	scale, err := e.fitter.FitScale(*tb)
	if err != nil {
		slog.Debug("layout: font scale estimate failed", "role", tb.Role, "error", err)
		return
	}
	if scale > 0 && scale < 1 {
		tb.FontScale = scale
	}
}
