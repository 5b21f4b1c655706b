package segment

// Rows converts spreadsheet rows into units. Column A is the primary text
// and column B the secondary one; further columns are ignored.
//
// A row whose first two cells are blank becomes a BlankMarker when
// blankLineIsOwnSlide is set and is skipped otherwise.
func Rows(rows [][]string, bilingual, blankLineIsOwnSlide bool) []Unit {
	units := make([]Unit, 0, len(rows))
	for _, row := range rows {
		primary := Trim(cell(row, 0))
		secondary := Trim(cell(row, 1))
		blank := primary == "" && (!bilingual || secondary == "")
		switch {
		case blank && blankLineIsOwnSlide:
			units = append(units, BlankMarker{})
		case blank:
		case bilingual:
			units = append(units, TextPair{Primary: primary, Secondary: secondary})
		default:
			units = append(units, TextLine{Text: primary})
		}
	}
	return units
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
