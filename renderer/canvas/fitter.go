package canvasrenderer

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"

	"github.com/balintv/txt2ppt/fonts"
	"github.com/balintv/txt2ppt/layout"
)

// Default search bounds for FitScale.
const (
	DefaultMinScale = 0.25
	DefaultStep     = 0.025
)

// Fitter measures text with github.com/tdewolff/canvas font faces to
// estimate shrink-to-fit font scales.
type Fitter struct {
	MinScale float64
	Step     float64

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ layout.Fitter = (*Fitter)(nil)

// Line is one wrapped line and its width in mm.
type Line struct {
	Content string
	Width   float64
}

// NewFitter creates a fitter backed by the built-in metric fonts.
func NewFitter() *Fitter {
	return &Fitter{MinScale: DefaultMinScale, Step: DefaultStep}
}

// FitScale returns the largest scale, in Step decrements from 1, at which
// the wrapped text of tb fits the box height. It bottoms out at MinScale.
func (f *Fitter) FitScale(tb layout.TextBox) (float64, error) {
	width, height := tb.Width.MM(), tb.Height.MM()
	if strings.TrimSpace(tb.Content) == "" || width <= 0 || height <= 0 || tb.FontSize <= 0 {
		return 1, nil
	}
	minScale, step := f.MinScale, f.Step
	if minScale <= 0 || minScale > 1 {
		minScale = DefaultMinScale
	}
	if step <= 0 {
		step = DefaultStep
	}
	for i := 0; ; i++ {
		scale := 1 - float64(i)*step
		if scale <= minScale {
			return minScale, nil
		}
		h, err := f.TextHeight(tb, scale)
		if err != nil {
			return 0, err
		}
		if h <= height {
			return math.Round(scale*1000) / 1000, nil
		}
	}
}

// TextHeight returns the height in mm that tb's wrapped text takes at the
// given font scale.
func (f *Fitter) TextHeight(tb layout.TextBox, scale float64) (float64, error) {
	size := tb.FontSize * scale
	lines, err := f.LayoutLines(tb.Content, tb.Width.MM()-tb.Indent.MM(), size, tb.Bold, tb.Italic)
	if err != nil {
		return 0, err
	}
	face, err := f.face(tb.Bold, tb.Italic, size)
	if err != nil {
		return 0, err
	}
	return float64(len(lines)) * face.Metrics().LineHeight, nil
}

// LayoutLines wraps content to width (mm) at fontSize (pt) with a greedy
// algorithm: break at whitespace first, inside words when a word alone
// exceeds the width.
func (f *Fitter) LayoutLines(content string, width float64, fontSize float64, bold, italic bool) ([]Line, error) {
	face, err := f.face(bold, italic, fontSize)
	if err != nil {
		return nil, err
	}
	return wrap(content, width, face), nil
}

func (f *Fitter) face(bold, italic bool, sizePt float64) (*canvas.FontFace, error) {
	family, err := f.ensureFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, color.Black, fontStyle(bold, italic), canvas.FontNormal), nil
}

func (f *Fitter) ensureFamily() (*canvas.FontFamily, error) {
	f.fontMu.Lock()
	defer f.fontMu.Unlock()
	if f.family != nil {
		return f.family, nil
	}
	family := canvas.NewFontFamily("txt2ppt-metrics")
	for _, v := range []struct {
		bold, italic bool
	}{{false, false}, {true, false}, {false, true}, {true, true}} {
		name := fonts.Name(v.bold, v.italic)
		data, err := fonts.Load(name)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, fontStyle(v.bold, v.italic)); err != nil {
			return nil, fmt.Errorf("canvas: load metric font %s: %w", name, err)
		}
	}
	f.family = family
	return family, nil
}

func fontStyle(bold, italic bool) canvas.FontStyle {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	return style
}

func wrap(content string, width float64, face *canvas.FontFace) []Line {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []Line
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, Line{})
			}
			return
		}
		lines = append(lines, Line{Content: builder.String(), Width: currentWidth})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		// leading whitespace is dropped at the start of a wrapped line
		if builder.Len() == 0 && strings.TrimSpace(token) == "" {
			return
		}
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
		}
	}
	emit(true)
	return lines
}

// tokenize splits s into runs of whitespace, runs of non-whitespace and
// explicit "\n" tokens.
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
