// Package pptx writes layout results as PresentationML (.pptx) packages.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/balintv/txt2ppt/layout"
	"github.com/balintv/txt2ppt/renderer"
)

// Default slide size of a new presentation: 10in x 7.5in.
const (
	DefaultWidth  layout.EMU = 9144000
	DefaultHeight layout.EMU = 6858000
)

// ErrNilResult is returned when Render is called without a layout result.
var ErrNilResult = errors.New("pptx: nil layout result")

// Renderer encodes a layout.Result into a PPTX byte stream. It also acts as
// the layout canvas, supplying the default slide size.
type Renderer struct {
	// Now stamps the core properties. Defaults to time.Now.
	Now func() time.Time
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Canvas     = (*Renderer)(nil)
)

// NewRenderer creates a PPTX renderer.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// DefaultSize returns the default slide size in EMU.
func (r *Renderer) DefaultSize() (layout.EMU, layout.EMU) {
	return DefaultWidth, DefaultHeight
}

// Render writes the package. A result without slides yields a valid,
// empty presentation.
func (r *Renderer) Render(res *layout.Result) ([]byte, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	width, height := res.Width, res.Height
	if width <= 0 || height <= 0 {
		width, height = r.DefaultSize()
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var buf bytes.Buffer
	pkg := &packageWriter{zw: zip.NewWriter(&buf)}
	n := len(res.Slides)

	pkg.writeXML("[Content_Types].xml", contentTypes(n))
	pkg.writeXML("_rels/.rels", packageRels())
	pkg.writeXML("docProps/core.xml", coreProperties(res.Meta, now().UTC()))
	pkg.writeXML("docProps/app.xml", appProperties(res.Meta, n))
	pkg.writeXML("ppt/presentation.xml", presentation(width, height, n))
	pkg.writeXML("ppt/_rels/presentation.xml.rels", presentationRels(n))
	pkg.writeRaw("ppt/presProps.xml", presPropsXML)
	pkg.writeRaw("ppt/viewProps.xml", viewPropsXML)
	pkg.writeRaw("ppt/tableStyles.xml", tableStylesXML)
	pkg.writeRaw("ppt/theme/theme1.xml", themeXML)
	pkg.writeRaw("ppt/slideMasters/slideMaster1.xml", slideMasterXML)
	pkg.writeXML("ppt/slideMasters/_rels/slideMaster1.xml.rels", relationships(
		relationship{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		relationship{ID: "rId2", Type: relTypeTheme, Target: "../theme/theme1.xml"},
	))
	pkg.writeRaw("ppt/slideLayouts/slideLayout1.xml", slideLayoutXML)
	pkg.writeXML("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relationships(
		relationship{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	))
	for i, s := range res.Slides {
		pkg.writeXML(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), buildSlide(s))
		pkg.writeXML(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), relationships(
			relationship{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		))
	}
	if pkg.err != nil {
		return nil, pkg.err
	}
	if err := pkg.zw.Close(); err != nil {
		return nil, fmt.Errorf("pptx: close package: %w", err)
	}
	return buf.Bytes(), nil
}

// packageWriter keeps the first error so part writes can be chained.
type packageWriter struct {
	zw  *zip.Writer
	err error
}

// fixed entry time keeps repeated renders byte-identical
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

func (p *packageWriter) writeRaw(name, content string) {
	p.write(name, []byte(content))
}

func (p *packageWriter) writeXML(name string, v any) {
	if p.err != nil {
		return
	}
	data, err := xml.Marshal(v)
	if err != nil {
		p.err = fmt.Errorf("pptx: encode %s: %w", name, err)
		return
	}
	p.write(name, append([]byte(xmlHeader), data...))
}

func (p *packageWriter) write(name string, data []byte) {
	if p.err != nil {
		return
	}
	w, err := p.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: entryTime})
	if err != nil {
		p.err = fmt.Errorf("pptx: create %s: %w", name, err)
		return
	}
	if _, err := w.Write(data); err != nil {
		p.err = fmt.Errorf("pptx: write %s: %w", name, err)
	}
}
