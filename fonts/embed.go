// Package fonts provides the built-in TrueType fonts used to measure text.
//
// The deck itself only names font families; these faces stand in for any
// family when estimating how much a text box has to shrink.
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var builtin = map[string][]byte{
	"regular":     goregular.TTF,
	"bold":        gobold.TTF,
	"italic":      goitalic.TTF,
	"bold-italic": gobolditalic.TTF,
}

// Load returns the bytes of a built-in font. name may be written as
// "embed:bold" or just "bold".
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "embed:"))
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("fonts: unknown built-in font %s", name)
	}
	return data, nil
}

// Name returns the built-in font name for the given weight and slant.
func Name(bold, italic bool) string {
	switch {
	case bold && italic:
		return "bold-italic"
	case bold:
		return "bold"
	case italic:
		return "italic"
	default:
		return "regular"
	}
}
