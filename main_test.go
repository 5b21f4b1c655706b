package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/balintv/txt2ppt/source"
	"github.com/balintv/txt2ppt/style"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunWritesDeckAndDebug(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "lyrics.txt")
	if err := os.WriteFile(in, []byte("first\nsecond\n\nthird\nfourth\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	sheet := filepath.Join(dir, "duo.deck")
	if err := os.WriteFile(sheet, []byte("deck duo v1 {\n  meta { title: \"${source.stem}\" }\n}\n"), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
	opts := cliOptions{
		input:         in,
		output:        filepath.Join(dir, "out", "slides.pptx"),
		style:         sheet,
		mode:          "bilingual",
		debug:         filepath.Join(dir, "debug", "layout.json"),
		debugRawUnits: true,
		set:           overrides{"font.primary.size": "40"},
	}
	out, err := run(opts, quiet())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Slides != 3 || out.BlankSlides != 1 {
		t.Fatalf("unexpected counts %+v", out)
	}
	if _, err := os.Stat(opts.output); err != nil {
		t.Fatalf("deck not written: %v", err)
	}

	data, err := os.ReadFile(opts.debug)
	if err != nil {
		t.Fatalf("debug JSON not written: %v", err)
	}
	var debug struct {
		Meta struct {
			Title string `json:"title"`
		} `json:"meta"`
		Slides []struct {
			Texts []struct {
				FontSize float64 `json:"fontSize"`
				Debug    *struct {
					RawUnits map[string]any `json:"rawUnits"`
				} `json:"debug"`
			} `json:"texts"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(data, &debug); err != nil {
		t.Fatalf("decode debug JSON: %v", err)
	}
	if debug.Meta.Title != "lyrics" || len(debug.Slides) != 3 {
		t.Fatalf("unexpected debug output %+v", debug)
	}
	first := debug.Slides[0].Texts[0]
	if first.FontSize != 40 || first.Debug == nil || len(first.Debug.RawUnits) == 0 {
		t.Fatalf("expected primary box with raw units, got %+v", first)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := run(cliOptions{}, quiet()); !errors.Is(err, source.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(in, []byte("a"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, err := run(cliOptions{input: in, output: filepath.Join(dir, "a.pptx"), set: overrides{"band.height": "50"}}, quiet())
	if !errors.Is(err, style.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := run(cliOptions{input: in, style: filepath.Join(dir, "missing.deck")}, quiet()); err == nil {
		t.Fatalf("expected error for a missing style sheet")
	}
}

func TestOverridesFlag(t *testing.T) {
	o := overrides{}
	if err := o.Set("margin.left = 2cm"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if o["margin.left"] != " 2cm" {
		t.Fatalf("unexpected value %q", o["margin.left"])
	}
	for _, bad := range []string{"novalue", "=1"} {
		if err := o.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
