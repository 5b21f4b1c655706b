package deck

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/balintv/txt2ppt/binding"
	"github.com/balintv/txt2ppt/decode"
	"github.com/balintv/txt2ppt/layout"
	"github.com/balintv/txt2ppt/segment"
	"github.com/balintv/txt2ppt/source"
	"github.com/balintv/txt2ppt/style"
)

// Output is a finished deck with the counts shown to the user.
type Output struct {
	Data        []byte
	Result      *layout.Result
	Encoding    string
	Slides      int
	TextSlides  int
	BlankSlides int
}

// Units turns a document into content units: spreadsheets row by row,
// text by decoding then segmenting, or pairing for bilingual decks.
func Units(doc *source.Document, o style.Options) ([]segment.Unit, error) {
	units, _, err := collect(doc, o)
	return units, err
}

func collect(doc *source.Document, o style.Options) ([]segment.Unit, string, error) {
	if doc == nil {
		return nil, "", fmt.Errorf("%w: no document", source.ErrSourceUnavailable)
	}
	if doc.Kind == source.KindSpreadsheet {
		rows, err := source.Rows(doc)
		if err != nil {
			return nil, "", err
		}
		return segment.Rows(rows, o.Bilingual(), o.BlankLineSlide), "", nil
	}
	text, enc := decode.DecodeWithName(doc.Data)
	if o.Bilingual() {
		return segment.PairLines(text, o.BlankAsSeparator, o.BlankLineSlide), enc, nil
	}
	segments := segment.Segment(text, o.SegmentMode(), o.PreserveBlankLines)
	return segment.Lines(segments, o.BlankLineSlide), enc, nil
}

// Facts is the data available to ${...} placeholders in deck metadata.
func Facts(doc *source.Document, o style.Options, text, blank int, now time.Time) map[string]any {
	name := ""
	kind := ""
	if doc != nil {
		name = doc.Name
		kind = string(doc.Kind)
	}
	return map[string]any{
		"source": map[string]any{
			"name": name,
			"stem": strings.TrimSuffix(name, filepath.Ext(name)),
			"kind": kind,
		},
		"deck": map[string]any{
			"mode":   string(o.Mode),
			"slides": text + blank,
			"text":   text,
			"blank":  blank,
		},
		"date": now.Format("2006-01-02"),
	}
}

// Generate runs the whole pipeline for one document.
func Generate(doc *source.Document, o style.Options, opts Options) (*Output, error) {
	if opts.Renderer == nil {
		return nil, ErrNoRenderer
	}
	log := opts.logger()

	units, enc, err := collect(doc, o)
	if err != nil {
		return nil, err
	}
	text, blank := segment.Count(units)
	log.Info("deck: units ready", "source", doc.Name, "kind", doc.Kind, "mode", o.Mode, "encoding", enc, "units", len(units))

	cfg := o.Config()
	cfg.Meta = binding.Meta(cfg.Meta, Facts(doc, o, text, blank, time.Now()))

	res, err := Layout(units, cfg, opts)
	if err != nil {
		return nil, err
	}
	data, err := render(res, opts)
	if err != nil {
		return nil, err
	}
	log.Info("deck: built", "source", doc.Name, "mode", o.Mode, "slides", len(res.Slides), "text", text, "blank", blank, "bytes", len(data))

	return &Output{
		Data:        data,
		Result:      res,
		Encoding:    enc,
		Slides:      len(res.Slides),
		TextSlides:  text,
		BlankSlides: blank,
	}, nil
}

// Summary is the success message shown after a build.
func (o *Output) Summary() string {
	if o.BlankSlides == 0 {
		return fmt.Sprintf("%d slides", o.Slides)
	}
	return fmt.Sprintf("%d slides (%d text, %d blank)", o.Slides, o.TextSlides, o.BlankSlides)
}
