package layout

import (
	"encoding/json"
	"os"
)

// DebugSummary gives the slide counts and the slide size in centimeters.
type DebugSummary struct {
	Slides      int     `json:"slides"`
	BlankSlides int     `json:"blankSlides"`
	Boxes       int     `json:"boxes"`
	WidthCm     float64 `json:"widthCm"`
	HeightCm    float64 `json:"heightCm"`
}

type debugDocument struct {
	*Result
	Summary DebugSummary `json:"summary"`
}

// Summarize counts slides and boxes in res. Slides without boxes count as blank.
func Summarize(res *Result) DebugSummary {
	s := DebugSummary{
		Slides:   len(res.Slides),
		WidthCm:  float64(res.Width) / float64(EMUPerCM),
		HeightCm: float64(res.Height) / float64(EMUPerCM),
	}
	for _, slide := range res.Slides {
		if len(slide.Texts) == 0 {
			s.BlankSlides++
		}
		s.Boxes += len(slide.Texts)
	}
	return s
}

// MarshalDebugJSON renders the layout result and its summary as indented JSON.
func MarshalDebugJSON(res *Result) ([]byte, error) {
	return json.MarshalIndent(debugDocument{Result: res, Summary: Summarize(res)}, "", "  ")
}

// WriteDebugJSON writes the layout result to path. A nil result writes nothing.
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	data, err := MarshalDebugJSON(res)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
