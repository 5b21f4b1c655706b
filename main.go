package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/balintv/txt2ppt/deck"
	"github.com/balintv/txt2ppt/layout"
	"github.com/balintv/txt2ppt/source"
	"github.com/balintv/txt2ppt/style"
)

// overrides collects repeated -set key=value flags.
type overrides map[string]string

func (o overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (o overrides) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	o[strings.TrimSpace(key)] = value
	return nil
}

type cliOptions struct {
	input         string
	output        string
	style         string
	mode          string
	debug         string
	debugRawUnits bool
	set           overrides
}

func main() {
	opts := cliOptions{set: overrides{}}
	flag.StringVar(&opts.input, "in", "", "source text, subtitle or spreadsheet file")
	flag.StringVar(&opts.output, "out", "output/slides.pptx", "PPTX output path")
	flag.StringVar(&opts.style, "style", "", "deck style sheet")
	flag.StringVar(&opts.mode, "mode", "", "line, paragraph, subtitle or bilingual (overrides the style sheet)")
	flag.StringVar(&opts.debug, "debug", "", "layout debug JSON output path")
	flag.BoolVar(&opts.debugRawUnits, "debug-raw-units", false, "include debug.rawUnits in the debug JSON")
	flag.Var(opts.set, "set", "style override key=value, repeatable (e.g. font.single.size=36pt)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	out, err := run(opts, logger)
	if err != nil {
		logger.Error("failed to generate deck", "error", err)
		os.Exit(1)
	}
	fmt.Printf("generated %s: %s\n", opts.output, out.Summary())
}

// run chains source loading, option resolution, layout and rendering.
func run(opts cliOptions, logger *slog.Logger) (*deck.Output, error) {
	if opts.input == "" {
		return nil, fmt.Errorf("%w: -in is required", source.ErrSourceUnavailable)
	}
	doc, err := source.FromPath(opts.input, "")
	if err != nil {
		return nil, err
	}

	resolved, err := resolveStyle(opts)
	if err != nil {
		return nil, err
	}

	d := deck.DefaultOptions()
	d.Logger = logger
	d.Debug = layout.DebugOptions{RawUnits: opts.debugRawUnits}
	out, err := deck.Generate(doc, resolved, d)
	if err != nil {
		return nil, err
	}

	if opts.debug != "" {
		if err := writeDebug(out.Result, opts.debug); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(opts.output, out.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write deck: %w", err)
	}
	return out, nil
}

func resolveStyle(opts cliOptions) (style.Options, error) {
	set := make(map[string]string, len(opts.set)+1)
	for k, v := range opts.set {
		set[k] = v
	}
	if opts.mode != "" {
		set["options.mode"] = opts.mode
	}
	if opts.style == "" {
		return style.Resolve(nil, set)
	}
	f, err := os.Open(opts.style)
	if err != nil {
		return style.Options{}, fmt.Errorf("open style sheet %s: %w", opts.style, err)
	}
	defer f.Close()
	return style.Resolve(f, set)
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}
