package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths.

// Unit represents the original unit of a length value.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
	UnitPT               // points
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// EMU is the English Metric Unit used for all slide coordinates.
type EMU int64

const (
	EMUPerInch EMU = 914400
	EMUPerCM   EMU = 360000
	EMUPerMM   EMU = 36000
	EMUPerPt   EMU = 12700
)

// Inches, Cm, Mm and Pt convert to EMU, truncating toward zero.
func Inches(v float64) EMU { return EMU(v * float64(EMUPerInch)) }
func Cm(v float64) EMU     { return EMU(v * float64(EMUPerCM)) }
func Mm(v float64) EMU     { return EMU(v * float64(EMUPerMM)) }
func Pt(v float64) EMU     { return EMU(v * float64(EMUPerPt)) }

// MM returns e in millimeters.
func (e EMU) MM() float64 { return float64(e) / float64(EMUPerMM) }

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

func (u Unit) MarshalText() ([]byte, error) { return []byte(UnitToString(u)), nil }

func (u *Unit) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "mm":
		*u = UnitMM
	case "cm":
		*u = UnitCM
	case "in":
		*u = UnitIN
	case "pt":
		*u = UnitPT
	case "":
		*u = UnitNone
	default:
		return fmt.Errorf("layout: unknown unit %q", b)
	}
	return nil
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Centimeters and Points build lengths in the units the configuration uses most.
func Centimeters(v float64) Length { return Length{Value: v, Unit: UnitCM} }
func Points(v float64) Length      { return Length{Value: v, Unit: UnitPT} }

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + UnitToString(l.Unit)
}

// EMU converts the length the way the presentation library does: one
// multiplication in the length's own unit, truncated. Unit-less values
// are taken as EMU already.
func (l Length) EMU() EMU {
	switch l.Unit {
	case UnitMM:
		return Mm(l.Value)
	case UnitCM:
		return Cm(l.Value)
	case UnitIN:
		return Inches(l.Value)
	case UnitPT:
		return Pt(l.Value)
	default:
		return EMU(l.Value)
	}
}

// To converts this length to target unit. Supported targets: UnitMM, UnitCM, UnitPT.
func (l Length) To(target Unit) float64 {
	var mm float64
	switch l.Unit {
	case UnitMM:
		mm = l.Value
	case UnitCM:
		mm = l.Value * 10
	case UnitIN:
		mm = l.Value * 25.4
	case UnitPT:
		if target == UnitPT {
			return l.Value
		}
		mm = l.Value * PtToMm
	default:
		return l.Value
	}
	switch target {
	case UnitPT:
		return mm * MmToPt
	case UnitCM:
		return mm / 10
	default:
		return mm
	}
}

func (l Length) ToMM() float64 { return l.To(UnitMM) }
func (l Length) ToPT() float64 { return l.To(UnitPT) }

// ParseLength parses "1.5cm", "44pt", "0.5in", "3mm" or a bare number,
// which takes fallback as its unit.
func ParseLength(value string, fallback Unit) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("layout: empty length")
	}
	unit := fallback
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("layout: invalid length %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
