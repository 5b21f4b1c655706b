package decode

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDecodeUTF8(t *testing.T) {
	text, name := DecodeWithName([]byte("árvíztűrő tükörfúrógép"))
	if name != "utf-8" {
		t.Fatalf("expected utf-8, got %s", name)
	}
	if text != "árvíztűrő tükörfúrógép" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestDecodeWindows1250(t *testing.T) {
	// "tűrő" in cp1250: ű=0xFB, ő=0xF5
	text, name := DecodeWithName([]byte{'t', 0xFB, 'r', 0xF5})
	if name != "cp1250" {
		t.Fatalf("expected cp1250, got %s", name)
	}
	if text != "tűrő" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestDecodeFallsBackToISO88592(t *testing.T) {
	// 0x81 has no mapping in cp1250 but is a C1 control in ISO-8859-2.
	text, name := DecodeWithName([]byte{'a', 0x81})
	if name != "iso-8859-2" {
		t.Fatalf("expected iso-8859-2, got %s", name)
	}
	if text != "a\u0081" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestDecodeISO88592CoversEveryByte(t *testing.T) {
	// cp1250 leaves 0x81, 0x83, 0x88, 0x90 and 0x98 unmapped, so this must
	// reach iso-8859-2 and decode without replacement characters.
	data := make([]byte, 0, 256)
	for b := 0; b < 256; b++ {
		data = append(data, byte(b))
	}
	text, name := DecodeWithName(data)
	if name != "iso-8859-2" {
		t.Fatalf("expected iso-8859-2, got %s", name)
	}
	if strings.ContainsRune(text, utf8.RuneError) {
		t.Fatalf("iso-8859-2 should map every byte, got %q", text)
	}
	if got := []rune(text); len(got) != 256 || got[0x9F] != 0x9F || got[0xFB] != 'ű' {
		t.Fatalf("unexpected runes %q", text)
	}
}
