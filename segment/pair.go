package segment

// PairLines groups the lines of text into bilingual slides.
//
// With blankLineIsOwnSlide, every blank line becomes a BlankMarker right
// away and never enters the pair buffer. Otherwise blank lines are either
// dropped before pairing (treatBlankAsSeparator) or kept as empty entries
// that take a pairing slot. A trailing unpaired line is paired with "".
func PairLines(text string, treatBlankAsSeparator, blankLineIsOwnSlide bool) []Unit {
	raw := SplitLines(text)
	if blankLineIsOwnSlide {
		return pairOwnSlide(raw)
	}
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		s := Trim(ln)
		if s == "" && treatBlankAsSeparator {
			continue
		}
		lines = append(lines, s)
	}
	units := make([]Unit, 0, (len(lines)+1)/2)
	for i := 0; i < len(lines); i += 2 {
		pair := TextPair{Primary: lines[i]}
		if i+1 < len(lines) {
			pair.Secondary = lines[i+1]
		}
		units = append(units, pair)
	}
	return units
}

func pairOwnSlide(raw []string) []Unit {
	var units []Unit
	buf := make([]string, 0, 2)
	for _, ln := range raw {
		s := Trim(ln)
		if s == "" {
			units = append(units, BlankMarker{})
			continue
		}
		buf = append(buf, s)
		if len(buf) == 2 {
			units = append(units, TextPair{Primary: buf[0], Secondary: buf[1]})
			buf = buf[:0]
		}
	}
	if len(buf) == 1 {
		units = append(units, TextPair{Primary: buf[0]})
	}
	return units
}
