package fonts

import (
	"bytes"
	"testing"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"regular", "embed:bold", "Italic", "bold-italic"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no data", name)
		}
	}
	if _, err := Load("comic-sans"); err == nil {
		t.Fatalf("expected error for unknown font")
	}
}

func TestNameResolvesEveryStyle(t *testing.T) {
	var faces [][]byte
	for _, v := range []struct{ bold, italic bool }{{false, false}, {true, false}, {false, true}, {true, true}} {
		data, err := Load(Name(v.bold, v.italic))
		if err != nil {
			t.Fatalf("Load(Name(%v, %v)): %v", v.bold, v.italic, err)
		}
		faces = append(faces, data)
	}
	for i := range faces {
		for j := i + 1; j < len(faces); j++ {
			if bytes.Equal(faces[i], faces[j]) {
				t.Fatalf("styles %d and %d share a face", i, j)
			}
		}
	}
}
