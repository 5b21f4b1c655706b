package pptx

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/balintv/txt2ppt/layout"
)

type slideXML struct {
	XMLName   xml.Name  `xml:"p:sld"`
	XmlnsA    string    `xml:"xmlns:a,attr"`
	XmlnsR    string    `xml:"xmlns:r,attr"`
	XmlnsP    string    `xml:"xmlns:p,attr"`
	CommonSld commonSld `xml:"p:cSld"`
	ClrMapOvr clrMapOvr `xml:"p:clrMapOvr"`
}

type commonSld struct {
	Background background `xml:"p:bg"`
	Tree       shapeTree  `xml:"p:spTree"`
}

type background struct {
	Fill      solidFill `xml:"p:bgPr>a:solidFill"`
	EffectLst empty     `xml:"p:bgPr>a:effectLst"`
}

type clrMapOvr struct {
	Master empty `xml:"a:masterClrMapping"`
}

type empty struct{}

type solidFill struct {
	Color val `xml:"a:srgbClr"`
}

type val struct {
	Val string `xml:"val,attr"`
}

type shapeTree struct {
	NonVisual groupNonVisual `xml:"p:nvGrpSpPr"`
	Xfrm      groupXfrm      `xml:"p:grpSpPr>a:xfrm"`
	Shapes    []shape        `xml:"p:sp"`
}

type groupNonVisual struct {
	CNvPr      cNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr empty `xml:"p:cNvGrpSpPr"`
	NvPr       empty `xml:"p:nvPr"`
}

type cNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type groupXfrm struct {
	Off   point  `xml:"a:off"`
	Ext   extent `xml:"a:ext"`
	ChOff point  `xml:"a:chOff"`
	ChExt extent `xml:"a:chExt"`
}

type point struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type shape struct {
	NonVisual shapeNonVisual `xml:"p:nvSpPr"`
	Props     shapeProps     `xml:"p:spPr"`
	Body      textBody       `xml:"p:txBody"`
}

type shapeNonVisual struct {
	CNvPr   cNvPr   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPr `xml:"p:cNvSpPr"`
	NvPr    empty   `xml:"p:nvPr"`
}

type cNvSpPr struct {
	TxBox int `xml:"txBox,attr"`
}

type shapeProps struct {
	Off    point    `xml:"a:xfrm>a:off"`
	Ext    extent   `xml:"a:xfrm>a:ext"`
	Geom   prstGeom `xml:"a:prstGeom"`
	NoFill empty    `xml:"a:noFill"`
}

type prstGeom struct {
	Prst  string `xml:"prst,attr"`
	AvLst empty  `xml:"a:avLst"`
}

type textBody struct {
	Props     bodyProps `xml:"a:bodyPr"`
	LstStyle  empty     `xml:"a:lstStyle"`
	Paragraph paragraph `xml:"a:p"`
}

type bodyProps struct {
	Wrap        string       `xml:"wrap,attr"`
	LIns        int          `xml:"lIns,attr"`
	TIns        int          `xml:"tIns,attr"`
	RIns        int          `xml:"rIns,attr"`
	BIns        int          `xml:"bIns,attr"`
	Anchor      string       `xml:"anchor,attr"`
	NormAutofit *normAutofit `xml:"a:normAutofit"`
}

type normAutofit struct {
	// thousandths of a percent
	FontScale int `xml:"fontScale,attr,omitempty"`
}

type paragraph struct {
	Props      paragraphProps `xml:"a:pPr"`
	Content    []any
	EndParaRPr runProps `xml:"a:endParaRPr"`
}

type paragraphProps struct {
	Algn   string `xml:"algn,attr"`
	MarL   int64  `xml:"marL,attr,omitempty"`
	Indent int64  `xml:"indent,attr,omitempty"`
}

type run struct {
	XMLName xml.Name `xml:"a:r"`
	Props   runProps `xml:"a:rPr"`
	Text    string   `xml:"a:t"`
}

type lineBreak struct {
	XMLName xml.Name `xml:"a:br"`
	Props   runProps `xml:"a:rPr"`
}

type runProps struct {
	Lang   string    `xml:"lang,attr"`
	Size   int       `xml:"sz,attr"` // hundredths of a point
	Bold   int       `xml:"b,attr"`
	Italic int       `xml:"i,attr"`
	Dirty  int       `xml:"dirty,attr"`
	Fill   solidFill `xml:"a:solidFill"`
	Latin  typeface  `xml:"a:latin"`
}

type typeface struct {
	Typeface string `xml:"typeface,attr"`
}

func buildSlide(s layout.Slide) slideXML {
	tree := shapeTree{NonVisual: groupNonVisual{CNvPr: cNvPr{ID: 1}}}
	for i, tb := range s.Texts {
		tree.Shapes = append(tree.Shapes, buildShape(tb, i))
	}
	return slideXML{
		XmlnsA: nsA,
		XmlnsR: nsR,
		XmlnsP: nsP,
		CommonSld: commonSld{
			Background: background{Fill: solidFill{Color: val{Val: s.Background.Hex()}}},
			Tree:       tree,
		},
	}
}

// buildShape turns a text box into a txBox shape. Shape id 1 is taken by
// the tree itself.
func buildShape(tb layout.TextBox, index int) shape {
	body := bodyProps{Wrap: "square", Anchor: anchor(tb.Anchor)}
	if !tb.WordWrap {
		body.Wrap = "none"
	}
	if tb.AutoFit == layout.AutoFitShrink {
		body.NormAutofit = &normAutofit{}
		if tb.FontScale > 0 && tb.FontScale < 1 {
			body.NormAutofit.FontScale = int(math.Round(tb.FontScale * 100000))
		}
	}

	rp := textRunProps(tb)
	para := paragraph{
		Props: paragraphProps{
			Algn:   alignment(tb.Align),
			MarL:   int64(tb.Indent),
			Indent: int64(tb.FirstLineIndent),
		},
		EndParaRPr: rp,
	}
	for i, line := range splitBreaks(tb.Content) {
		if i > 0 {
			para.Content = append(para.Content, lineBreak{Props: rp})
		}
		if line != "" {
			para.Content = append(para.Content, run{Props: rp, Text: line})
		}
	}

	return shape{
		NonVisual: shapeNonVisual{
			CNvPr:   cNvPr{ID: index + 2, Name: fmt.Sprintf("TextBox %d", index+1)},
			CNvSpPr: cNvSpPr{TxBox: 1},
		},
		Props: shapeProps{
			Off:  point{X: int64(tb.X), Y: int64(tb.Y)},
			Ext:  extent{Cx: int64(tb.Width), Cy: int64(tb.Height)},
			Geom: prstGeom{Prst: "rect"},
		},
		Body: textBody{Props: body, Paragraph: para},
	}
}

func textRunProps(tb layout.TextBox) runProps {
	font := strings.TrimSpace(tb.Font)
	if font == "" {
		font = layout.DefaultFont
	}
	return runProps{
		Lang:   "en-US",
		Size:   int(math.Round(tb.FontSize * 100)),
		Bold:   boolAttr(tb.Bold),
		Italic: boolAttr(tb.Italic),
		Fill:   solidFill{Color: val{Val: tb.Color.Hex()}},
		Latin:  typeface{Typeface: font},
	}
}

// splitBreaks splits text at line feeds, carriage returns and vertical
// tabs, each of which becomes a soft line break.
func splitBreaks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.NewReplacer("\r", "\n", "\v", "\n").Replace(s)
	return strings.Split(s, "\n")
}

func alignment(a layout.Align) string {
	if a == layout.AlignLeft {
		return "l"
	}
	return "ctr"
}

func anchor(a layout.Anchor) string {
	switch a {
	case layout.AnchorBottom, "":
		return "b"
	default:
		return string(a)
	}
}

func boolAttr(v bool) int {
	if v {
		return 1
	}
	return 0
}
