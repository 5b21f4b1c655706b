// Package decode turns raw source bytes into text.
package decode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names a single entry of the fallback list.
type Encoding struct {
	Name  string
	codec *charmap.Charmap // nil means UTF-8
	c1    bool             // 0x80-0x9F are the C1 controls, not unmapped
}

// Fallback is the order in which encodings are tried.
var Fallback = []Encoding{
	{Name: "utf-8"},
	{Name: "cp1250", codec: charmap.Windows1250},
	{Name: "iso-8859-2", codec: charmap.ISO8859_2, c1: true},
	{Name: "latin2", codec: charmap.ISO8859_2, c1: true},
}

// Decode returns data as text using the first encoding in Fallback that
// accepts every byte. When none does, invalid sequences are replaced with
// U+FFFD. Decode never fails.
func Decode(data []byte) string {
	text, _ := DecodeWithName(data)
	return text
}

// DecodeWithName is Decode that also reports which encoding won.
// The name is "utf-8 (replace)" for the lossy last resort.
func DecodeWithName(data []byte) (string, string) {
	for _, enc := range Fallback {
		if text, ok := try(data, enc); ok {
			return text, enc.Name
		}
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), "utf-8 (replace)"
}

func try(data []byte, enc Encoding) (string, bool) {
	if enc.codec == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if enc.c1 && c >= 0x80 && c <= 0x9F {
			b.WriteRune(rune(c))
			continue
		}
		r := enc.codec.DecodeByte(c)
		// unmapped bytes come back as U+FFFD; a strict codec fails on them
		if r == utf8.RuneError {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
