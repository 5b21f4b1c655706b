package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects how text is cut into segments.
type Mode int

const (
	ModeLine Mode = iota
	ModeParagraph
	ModeSubtitle
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeParagraph:
		return "paragraph"
	case ModeSubtitle:
		return "subtitle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the mode names used by style sheets and forms.
func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "line", "single-line", "lines":
		return ModeLine, nil
	case "paragraph", "para":
		return ModeParagraph, nil
	case "subtitle", "srt":
		return ModeSubtitle, nil
	default:
		return ModeLine, fmt.Errorf("segment: unknown mode %q", v)
	}
}

// space is the whitespace class of IsSpace as a regexp class.
const space = `[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	blockSeparator = regexp.MustCompile(`\n` + space + `*\n`)
	cueTimestamp   = regexp.MustCompile(`^` + space + `*\p{Nd}{2}:\p{Nd}{2}:\p{Nd}{2},\p{Nd}{3}` + space + `*-->` + space + `*\p{Nd}{2}:\p{Nd}{2}:\p{Nd}{2},\p{Nd}{3}` + space + `*$`)
)

// IsSpace reports whether r is whitespace: unicode.IsSpace plus the
// information separators U+001C-U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Trim removes leading and trailing IsSpace runes.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Segment splits text into an ordered list of slide texts.
//
// In line mode with preserveBlankLines every line is returned verbatim,
// blank ones included; otherwise blank lines are dropped and the rest
// trimmed. Paragraph and subtitle modes never return blank segments.
func Segment(text string, mode Mode, preserveBlankLines bool) []string {
	switch mode {
	case ModeParagraph:
		return paragraphs(text)
	case ModeSubtitle:
		return cues(text)
	default:
		lines := SplitLines(text)
		if preserveBlankLines {
			return lines
		}
		out := make([]string, 0, len(lines))
		for _, l := range lines {
			if s := Trim(l); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
}

func paragraphs(text string) []string {
	var out []string
	for _, b := range blockSeparator.Split(text, -1) {
		if s := Trim(b); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cues(text string) []string {
	var out []string
	for _, b := range blockSeparator.Split(Trim(text), -1) {
		var kept []string
		for _, ln := range SplitLines(b) {
			s := Trim(ln)
			if s == "" || isDigits(s) || cueTimestamp.MatchString(s) {
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) > 0 {
			out = append(out, strings.Join(kept, " "))
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		// superscript and circled digits (category No) count too
		if !unicode.IsDigit(r) && !unicode.Is(unicode.No, r) {
			return false
		}
	}
	return true
}

// SplitLines splits text on line boundaries. "\r\n" counts as one break
// and a trailing break does not start a new, empty line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// Lines wraps segments as TextLine units. With blankLineSlide set,
// whitespace-only segments become BlankMarker instead.
func Lines(segments []string, blankLineSlide bool) []Unit {
	units := make([]Unit, 0, len(segments))
	for _, s := range segments {
		if blankLineSlide && Trim(s) == "" {
			units = append(units, BlankMarker{})
			continue
		}
		units = append(units, TextLine{Text: s})
	}
	return units
}
