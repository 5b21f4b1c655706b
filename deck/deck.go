// Package deck assembles slide decks: units in, one slide per unit, out
// through a renderer.
package deck

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/balintv/txt2ppt/layout"
	"github.com/balintv/txt2ppt/renderer"
	canvasrenderer "github.com/balintv/txt2ppt/renderer/canvas"
	"github.com/balintv/txt2ppt/renderer/pptx"
	"github.com/balintv/txt2ppt/segment"
)

// ErrNoRenderer is returned by Build when Options carries no Renderer.
var ErrNoRenderer = errors.New("deck: missing renderer")

// Options wires the collaborators of a build.
type Options struct {
	Renderer renderer.Renderer
	Canvas   layout.Canvas
	Fitter   layout.Fitter // optional
	Debug    layout.DebugOptions
	Logger   *slog.Logger // defaults to slog.Default()
}

// DefaultOptions uses the PPTX renderer as canvas and sink, and measures
// shrink-to-fit scales with the canvas fitter.
func DefaultOptions() Options {
	r := pptx.NewRenderer()
	return Options{Renderer: r, Canvas: r, Fitter: canvasrenderer.NewFitter()}
}

func (o Options) buildOptions() layout.BuildOptions {
	return layout.BuildOptions{Canvas: o.Canvas, Fitter: o.Fitter, Debug: o.Debug}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Layout lays out every unit in order, one slide each.
func Layout(units []segment.Unit, cfg layout.Config, opts Options) (*layout.Result, error) {
	engine, err := layout.NewEngine(cfg, opts.buildOptions())
	if err != nil {
		return nil, err
	}
	width, height := engine.Size()
	res := &layout.Result{
		Width:  width,
		Height: height,
		Slides: make([]layout.Slide, 0, len(units)),
		Meta:   cfg.Meta,
	}
	for i, u := range units {
		s, err := engine.Layout(u)
		if err != nil {
			return nil, fmt.Errorf("deck: slide %d: %w", i+1, err)
		}
		res.Slides = append(res.Slides, s)
	}
	return res, nil
}

// Build lays out units and renders the result.
func Build(units []segment.Unit, cfg layout.Config, opts Options) ([]byte, error) {
	if opts.Renderer == nil {
		return nil, ErrNoRenderer
	}
	res, err := Layout(units, cfg, opts)
	if err != nil {
		return nil, err
	}
	return render(res, opts)
}

func render(res *layout.Result, opts Options) ([]byte, error) {
	data, err := opts.Renderer.Render(res)
	if err != nil {
		return nil, fmt.Errorf("deck: render: %w", err)
	}
	return data, nil
}
