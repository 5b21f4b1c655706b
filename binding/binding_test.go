package binding

import (
	"testing"

	"github.com/balintv/txt2ppt/layout"
)

func TestInterpolate(t *testing.T) {
	data := map[string]any{
		"source": map[string]any{"name": "song.srt", "stem": "song", "empty": ""},
		"deck":   map[string]string{"mode": "subtitle"},
		"lines":  []any{"first", []string{"a", "b"}},
		"slides": 12,
	}
	cases := map[string]string{
		"${source.stem} (${deck.mode})": "song (subtitle)",
		"${ source.name }":              "song.srt",
		"${lines[0]}/${lines[1][1]}":    "first/b",
		"${slides} slides":              "12 slides",
		"${source.missing}":             "${source.missing}",
		"${lines[7]}":                   "${lines[7]}",
		"${lines[x]}":                   "${lines[x]}",
		"${}":                           "${}",
		"plain":                         "plain",
		"${source.missing|Untitled}":    "Untitled",
		"${source.stem | x}":            "song",
		"${source.empty|none}":          "none",
		"${source.empty}":               "",
	}
	for in, want := range cases {
		if got := Interpolate(in, data); got != want {
			t.Fatalf("Interpolate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${a}", nil); got != "${a}" {
		t.Fatalf("nil data should leave text alone, got %q", got)
	}
	if got := Interpolate("${a|b}", nil); got != "b" {
		t.Fatalf("fallback should apply without data, got %q", got)
	}
}

func TestMeta(t *testing.T) {
	meta := layout.DocumentMeta{
		Title:    "${source.stem}",
		Author:   "me",
		Keywords: []string{"${deck.mode}", "fixed"},
	}
	data := map[string]any{"source": map[string]any{"stem": "talk"}, "deck": map[string]any{"mode": "bilingual"}}
	got := Meta(meta, data)
	if got.Title != "talk" || got.Author != "me" || got.Keywords[0] != "bilingual" || got.Keywords[1] != "fixed" {
		t.Fatalf("unexpected meta %+v", got)
	}
	if meta.Keywords[0] != "${deck.mode}" {
		t.Fatalf("input meta was modified")
	}
}

func TestLookup(t *testing.T) {
	data := map[string]any{"rows": []any{[]string{"a", "b"}}}
	if v, ok := Lookup(data, "rows[0][1]"); !ok || v != "b" {
		t.Fatalf("Lookup rows[0][1] = %v, %v", v, ok)
	}
	for _, path := range []string{"rows[1]", "rows[0]x", "rows]0[", "nope"} {
		if _, ok := Lookup(data, path); ok {
			t.Fatalf("Lookup(%q) should fail", path)
		}
	}
}
