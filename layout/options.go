package layout

// BuildOptions configures the dependencies of the layout stage.
type BuildOptions struct {
	Canvas Canvas
	Fitter Fitter // optional
	Debug  DebugOptions
}

// DebugOptions controls debug-related output.
type DebugOptions struct {
	RawUnits bool // record configured lengths on each box as debug.rawUnits
}

// Canvas reports the sink's default slide dimensions.
type Canvas interface {
	DefaultSize() (width, height EMU)
}

// Fitter estimates the font scale that makes a box's text fit inside it.
// The returned scale is in (0, 1]; 1 means the text already fits.
type Fitter interface {
	FitScale(tb TextBox) (float64, error)
}
