// Package segment splits decoded text into slide content units.
//
// A unit is one of three cases: TextLine (single-language slide), TextPair
// (two stacked lines) or BlankMarker (background only). The order of units
// returned by this package is the order of slides in the deck.
package segment

// Unit is the content of exactly one slide.
type Unit interface {
	unit()
}

// TextLine carries the text of a single-box slide. Text may be empty.
type TextLine struct {
	Text string `json:"text"`
}

// TextPair carries the two lines of a bilingual slide. Either may be empty.
type TextPair struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// BlankMarker marks a slide with no text.
type BlankMarker struct{}

func (TextLine) unit()    {}
func (TextPair) unit()    {}
func (BlankMarker) unit() {}

// Count reports how many units carry text and how many are blank markers.
func Count(units []Unit) (text, blank int) {
	for _, u := range units {
		if _, ok := u.(BlankMarker); ok {
			blank++
			continue
		}
		text++
	}
	return text, blank
}
