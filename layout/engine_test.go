package layout

import (
	"errors"
	"testing"

	"github.com/balintv/txt2ppt/segment"
)

// stubCanvas reports the 10in x 7.5in PPTX default without pulling in a renderer.
type stubCanvas struct{}

func (stubCanvas) DefaultSize() (EMU, EMU) { return 9144000, 6858000 }

// stubFitter halves the font of any box whose text is longer than limit runes.
type stubFitter struct {
	limit int
	calls int
	err   error
}

func (s *stubFitter) FitScale(tb TextBox) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if len([]rune(tb.Content)) > s.limit {
		return 0.5, nil
	}
	return 1, nil
}

func testConfig() Config {
	return Config{
		Mode:       ModeSingle,
		Widescreen: true,
		Background: Color{R: 0, G: 0, B: 0},
		Single:     Typography{Font: "  Verdana ", Size: 44, Color: Color{255, 255, 255}, Bold: true},
		Primary:    Typography{Font: "", Size: 40, Color: Color{255, 255, 255}, Italic: true},
		Secondary:  Typography{Font: "Georgia", Size: 36, Color: Color{200, 200, 200}},
		Geometry: Geometry{
			Margin: Margin{
				Top:    Centimeters(1),
				Bottom: Centimeters(1.5),
				Left:   Centimeters(3),
				Right:  Centimeters(2.25),
			},
			Align:           AlignCenter,
			ShrinkToFit:     true,
			BandHeight:      Centimeters(4),
			PrimaryOffset:   Centimeters(1),
			SecondaryOffset: Centimeters(5),
		},
	}
}

func newTestEngine(t *testing.T, cfg Config, opts BuildOptions) *Engine {
	t.Helper()
	if opts.Canvas == nil {
		opts.Canvas = stubCanvas{}
	}
	e, err := NewEngine(cfg, opts)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineRequiresCanvas(t *testing.T) {
	if _, err := NewEngine(testConfig(), BuildOptions{}); !errors.Is(err, ErrNoCanvas) {
		t.Fatalf("expected ErrNoCanvas, got %v", err)
	}
}

func TestSlideSize(t *testing.T) {
	cfg := testConfig()
	w, h := newTestEngine(t, cfg, BuildOptions{}).Size()
	if w != 12188952 || h != 6858000 {
		t.Fatalf("widescreen size: got %dx%d", w, h)
	}
	cfg.Widescreen = false
	w, h = newTestEngine(t, cfg, BuildOptions{}).Size()
	if w != 9144000 || h != 6858000 {
		t.Fatalf("default size: got %dx%d", w, h)
	}
}

func TestBlankMarkerHasNoBoxes(t *testing.T) {
	cfg := testConfig()
	cfg.Background = Color{R: 10, G: 20, B: 30}
	slide, err := newTestEngine(t, cfg, BuildOptions{}).Layout(segment.BlankMarker{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(slide.Texts) != 0 {
		t.Fatalf("blank slide has %d boxes", len(slide.Texts))
	}
	if slide.Background != cfg.Background {
		t.Fatalf("background: got %+v", slide.Background)
	}
}

// TestSingleBoxGeometry checks width = W - left - right and height = H - top - bottom.
func TestSingleBoxGeometry(t *testing.T) {
	margins := []Margin{
		{},
		{Top: Centimeters(1), Bottom: Centimeters(1), Left: Centimeters(3), Right: Centimeters(3)},
		{Top: Centimeters(0.13), Bottom: Centimeters(0.13), Left: Centimeters(0.25), Right: Centimeters(0.25)},
		{Top: Centimeters(10), Bottom: Centimeters(7.77), Left: Centimeters(20), Right: Centimeters(19.99)},
	}
	for _, m := range margins {
		cfg := testConfig()
		cfg.Geometry.Margin = m
		e := newTestEngine(t, cfg, BuildOptions{})
		w, h := e.Size()
		slide, err := e.Layout(segment.TextLine{Text: "hello"})
		if err != nil {
			t.Fatalf("Layout: %v", err)
		}
		if len(slide.Texts) != 1 {
			t.Fatalf("expected one box, got %d", len(slide.Texts))
		}
		tb := slide.Texts[0]
		if tb.X != m.Left.EMU() || tb.Y != m.Top.EMU() {
			t.Fatalf("offset: got (%d,%d)", tb.X, tb.Y)
		}
		if tb.Width != w-m.Left.EMU()-m.Right.EMU() {
			t.Fatalf("width: got %d", tb.Width)
		}
		if tb.Height != h-m.Top.EMU()-m.Bottom.EMU() {
			t.Fatalf("height: got %d", tb.Height)
		}
	}
}

func TestSingleBoxStyle(t *testing.T) {
	cfg := testConfig()
	cfg.Geometry.Align = AlignLeft
	cfg.Geometry.Indent = Centimeters(1)
	slide, _ := newTestEngine(t, cfg, BuildOptions{}).Layout(segment.TextLine{Text: "x"})
	tb := slide.Texts[0]
	if tb.Role != RoleSingle || tb.Font != "Verdana" || tb.FontSize != 44 || !tb.Bold || tb.Italic {
		t.Fatalf("unexpected typography: %+v", tb)
	}
	if tb.Align != AlignLeft || tb.Anchor != AnchorBottom || !tb.WordWrap || tb.AutoFit != AutoFitShrink {
		t.Fatalf("unexpected frame settings: %+v", tb)
	}
	if tb.Indent != Cm(1) || tb.FirstLineIndent != 0 {
		t.Fatalf("unexpected indents: %d %d", tb.Indent, tb.FirstLineIndent)
	}

	cfg.Geometry.ShrinkToFit = false
	cfg.Geometry.Align = ""
	slide, _ = newTestEngine(t, cfg, BuildOptions{}).Layout(segment.TextLine{Text: "x"})
	if tb := slide.Texts[0]; tb.AutoFit != AutoFitNone || tb.Align != AlignCenter {
		t.Fatalf("expected no autofit and centered text, got %+v", tb)
	}
}

func TestPairBoxes(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeBilingual
	e := newTestEngine(t, cfg, BuildOptions{})
	w, h := e.Size()
	slide, err := e.Layout(segment.TextPair{Primary: "Hello", Secondary: "Szia"})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(slide.Texts) != 2 {
		t.Fatalf("expected two boxes, got %d", len(slide.Texts))
	}
	p, s := slide.Texts[0], slide.Texts[1]
	band := Cm(4)
	if p.Y != h-Cm(1)-band || s.Y != h-Cm(5)-band {
		t.Fatalf("tops: primary=%d secondary=%d", p.Y, s.Y)
	}
	if p.Y <= s.Y {
		t.Fatalf("primary box should sit below the secondary box")
	}
	for _, tb := range slide.Texts {
		if tb.X != Cm(3) || tb.Width != w-Cm(3)-Cm(2.25) || tb.Height != band {
			t.Fatalf("box geometry: %+v", tb)
		}
	}
	if p.Content != "Hello" || p.Font != DefaultFont || p.FontSize != 40 || !p.Italic || p.Role != RolePrimary {
		t.Fatalf("primary box: %+v", p)
	}
	if s.Content != "Szia" || s.Font != "Georgia" || s.Color != (Color{200, 200, 200}) || s.Role != RoleSecondary {
		t.Fatalf("secondary box: %+v", s)
	}
}

func TestEmptyPairStillHasTwoBoxes(t *testing.T) {
	slide, err := newTestEngine(t, testConfig(), BuildOptions{}).Layout(segment.TextPair{})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(slide.Texts) != 2 || slide.Texts[0].Content != "" || slide.Texts[1].Content != "" {
		t.Fatalf("expected two empty boxes, got %+v", slide.Texts)
	}
}

func TestNegativeTopIsNotClamped(t *testing.T) {
	cfg := testConfig()
	cfg.Geometry.BandHeight = Centimeters(10)
	cfg.Geometry.SecondaryOffset = Centimeters(15)
	e := newTestEngine(t, cfg, BuildOptions{})
	_, h := e.Size()
	slide, _ := e.Layout(segment.TextPair{Primary: "a", Secondary: "b"})
	want := h - Cm(15) - Cm(10)
	if want >= 0 {
		t.Fatalf("test geometry should overflow, want=%d", want)
	}
	if got := slide.Texts[1].Y; got != want {
		t.Fatalf("secondary top: got %d want %d", got, want)
	}
}

func TestFitterScalesLongText(t *testing.T) {
	fitter := &stubFitter{limit: 5}
	e := newTestEngine(t, testConfig(), BuildOptions{Fitter: fitter})
	slide, _ := e.Layout(segment.TextPair{Primary: "short", Secondary: "much longer line"})
	if slide.Texts[0].FontScale != 0 {
		t.Fatalf("short text should keep its size, got scale %g", slide.Texts[0].FontScale)
	}
	if slide.Texts[1].FontScale != 0.5 {
		t.Fatalf("long text scale: got %g", slide.Texts[1].FontScale)
	}

	slide, _ = e.Layout(segment.TextPair{})
	if fitter.calls != 2 {
		t.Fatalf("empty boxes should not be measured, calls=%d", fitter.calls)
	}

	cfg := testConfig()
	cfg.Geometry.ShrinkToFit = false
	fitter.calls = 0
	slide, _ = newTestEngine(t, cfg, BuildOptions{Fitter: fitter}).Layout(segment.TextLine{Text: "much longer line"})
	if fitter.calls != 0 || slide.Texts[0].FontScale != 0 {
		t.Fatalf("fitter must not run without shrink-to-fit")
	}
}

func TestFitterFailureIsNotFatal(t *testing.T) {
	e := newTestEngine(t, testConfig(), BuildOptions{Fitter: &stubFitter{err: errors.New("no font")}})
	slide, err := e.Layout(segment.TextLine{Text: "anything"})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if slide.Texts[0].FontScale != 0 {
		t.Fatalf("scale should stay unset")
	}
}

func TestLayoutRejectsNilUnit(t *testing.T) {
	if _, err := newTestEngine(t, testConfig(), BuildOptions{}).Layout(nil); err == nil {
		t.Fatalf("expected error for nil unit")
	}
}

func TestDebugRawUnits(t *testing.T) {
	e := newTestEngine(t, testConfig(), BuildOptions{Debug: DebugOptions{RawUnits: true}})
	slide, _ := e.Layout(segment.TextPair{Primary: "a"})
	raw := slide.Texts[1].Debug.RawUnits
	if raw["offset"] != (RawLengthJSON{Value: 5, Unit: "cm"}) || raw["bandHeight"] != (RawLengthJSON{Value: 4, Unit: "cm"}) {
		t.Fatalf("unexpected raw units: %+v", raw)
	}
	slide, _ = newTestEngine(t, testConfig(), BuildOptions{}).Layout(segment.TextLine{Text: "a"})
	if slide.Texts[0].Debug != nil {
		t.Fatalf("debug info must be off by default")
	}
}

// TestStyleFollowsUnitNotMode lays out both unit kinds under both modes.
func TestStyleFollowsUnitNotMode(t *testing.T) {
	for _, mode := range []Mode{ModeSingle, ModeBilingual} {
		cfg := testConfig()
		cfg.Mode = mode
		e := newTestEngine(t, cfg, BuildOptions{})
		line, _ := e.Layout(segment.TextLine{Text: "x"})
		if tb := line.Texts[0]; tb.Role != RoleSingle || tb.Font != "Verdana" || tb.FontSize != 44 || !tb.Bold {
			t.Fatalf("mode %s: line box styled %+v", mode, tb)
		}
		pair, _ := e.Layout(segment.TextPair{Primary: "a", Secondary: "b"})
		if p, s := pair.Texts[0], pair.Texts[1]; p.FontSize != 40 || !p.Italic || s.Font != "Georgia" || s.FontSize != 36 {
			t.Fatalf("mode %s: pair boxes styled %+v / %+v", mode, p, s)
		}
	}
}
