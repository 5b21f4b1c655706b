package layout

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalDebugJSONSummary(t *testing.T) {
	res := &Result{
		Width:  WidescreenWidth,
		Height: WidescreenHeight,
		Slides: []Slide{
			{Texts: []TextBox{{Role: RolePrimary}, {Role: RoleSecondary}}},
			{},
			{Texts: []TextBox{{Role: RoleSingle, Content: "x"}}},
		},
		Meta: DocumentMeta{Title: "t"},
	}
	data, err := MarshalDebugJSON(res)
	if err != nil {
		t.Fatalf("MarshalDebugJSON: %v", err)
	}
	var doc struct {
		Width   EMU          `json:"width"`
		Slides  []Slide      `json:"slides"`
		Summary DebugSummary `json:"summary"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Width != WidescreenWidth || len(doc.Slides) != 3 {
		t.Fatalf("result fields not inlined: %s", data)
	}
	s := doc.Summary
	if s.Slides != 3 || s.BlankSlides != 1 || s.Boxes != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.HeightCm < 19.04 || s.HeightCm > 19.06 {
		t.Fatalf("height 7.5in should be 19.05cm, got %g", s.HeightCm)
	}
	if !strings.Contains(string(data), "\n  \"summary\"") {
		t.Fatalf("expected indented output")
	}
}

func TestWriteDebugJSONNilResult(t *testing.T) {
	if err := WriteDebugJSON(nil, t.TempDir()+"/never.json"); err != nil {
		t.Fatalf("nil result should be a no-op, got %v", err)
	}
}
