package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/balintv/txt2ppt/layout"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const (
	nsA             = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP             = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsAppProps      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"
)

const (
	relTypeOfficeDocument = nsR + "/officeDocument"
	relTypeCoreProps      = nsRelationships + "/metadata/core-properties"
	relTypeAppProps       = nsR + "/extended-properties"
	relTypeSlideMaster    = nsR + "/slideMaster"
	relTypeSlideLayout    = nsR + "/slideLayout"
	relTypeSlide          = nsR + "/slide"
	relTypeTheme          = nsR + "/theme"
	relTypePresProps      = nsR + "/presProps"
	relTypeViewProps      = nsR + "/viewProps"
	relTypeTableStyles    = nsR + "/tableStyles"
)

// ContentType is the MIME type of a .pptx file.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const (
	ctPresentation = ContentType + ".main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
)

// Identifier bases. Master and layout ids share one space starting at 2^31.
const (
	firstSlideID  = 256
	slideMasterID = 2147483648
	slideLayoutID = 2147483649
	// slide relationships follow the fixed presentation parts rId1..rId5
	firstSlideRel = 6
)

type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	Xmlns     string            `xml:"xmlns,attr"`
	Defaults  []contentDefault  `xml:"Default"`
	Overrides []contentOverride `xml:"Override"`
}

type contentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func contentTypes(slides int) contentTypesXML {
	ct := contentTypesXML{
		Xmlns: nsContentTypes,
		Defaults: []contentDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []contentOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctAppProps},
		},
	}
	for i := 1; i <= slides; i++ {
		ct.Overrides = append(ct.Overrides, contentOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i),
			ContentType: ctSlide,
		})
	}
	return ct
}

type relationshipsXML struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Items   []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func relationships(items ...relationship) relationshipsXML {
	return relationshipsXML{Xmlns: nsRelationships, Items: items}
}

func packageRels() relationshipsXML {
	return relationships(
		relationship{ID: "rId1", Type: relTypeOfficeDocument, Target: "ppt/presentation.xml"},
		relationship{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
		relationship{ID: "rId3", Type: relTypeAppProps, Target: "docProps/app.xml"},
	)
}

func presentationRels(slides int) relationshipsXML {
	rels := relationships(
		relationship{ID: "rId1", Type: relTypeSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		relationship{ID: "rId2", Type: relTypePresProps, Target: "presProps.xml"},
		relationship{ID: "rId3", Type: relTypeViewProps, Target: "viewProps.xml"},
		relationship{ID: "rId4", Type: relTypeTheme, Target: "theme/theme1.xml"},
		relationship{ID: "rId5", Type: relTypeTableStyles, Target: "tableStyles.xml"},
	)
	for i := 0; i < slides; i++ {
		rels.Items = append(rels.Items, relationship{
			ID:     fmt.Sprintf("rId%d", firstSlideRel+i),
			Type:   relTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	return rels
}

type presentationXML struct {
	XMLName         xml.Name     `xml:"p:presentation"`
	XmlnsA          string       `xml:"xmlns:a,attr"`
	XmlnsR          string       `xml:"xmlns:r,attr"`
	XmlnsP          string       `xml:"xmlns:p,attr"`
	SaveSubsetFonts int          `xml:"saveSubsetFonts,attr"`
	Masters         []idRef      `xml:"p:sldMasterIdLst>p:sldMasterId"`
	Slides          *slideIDList `xml:"p:sldIdLst"`
	SlideSize       extent       `xml:"p:sldSz"`
	NotesSize       extent       `xml:"p:notesSz"`
}

type slideIDList struct {
	Items []idRef `xml:"p:sldId"`
}

type idRef struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type extent struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

func presentation(width, height layout.EMU, slides int) presentationXML {
	p := presentationXML{
		XmlnsA:          nsA,
		XmlnsR:          nsR,
		XmlnsP:          nsP,
		SaveSubsetFonts: 1,
		Masters:         []idRef{{ID: slideMasterID, RID: "rId1"}},
		SlideSize:       extent{Cx: int64(width), Cy: int64(height)},
		NotesSize:       extent{Cx: int64(DefaultHeight), Cy: int64(DefaultWidth)},
	}
	// an empty sldIdLst is a schema violation, omit it instead
	if slides > 0 {
		p.Slides = &slideIDList{}
		for i := 0; i < slides; i++ {
			p.Slides.Items = append(p.Slides.Items, idRef{
				ID:  int64(firstSlideID + i),
				RID: fmt.Sprintf("rId%d", firstSlideRel+i),
			})
		}
	}
	return p
}

type corePropertiesXML struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        w3cdtf   `xml:"dcterms:created"`
	Modified       w3cdtf   `xml:"dcterms:modified"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

func coreProperties(meta layout.DocumentMeta, now time.Time) corePropertiesXML {
	stamp := w3cdtf{Type: "dcterms:W3CDTF", Value: now.Format("2006-01-02T15:04:05Z")}
	return corePropertiesXML{
		XmlnsCP:        nsCoreProps,
		XmlnsDC:        nsDC,
		XmlnsDCTerms:   nsDCTerms,
		XmlnsXSI:       nsXSI,
		Title:          meta.Title,
		Subject:        meta.Subject,
		Creator:        meta.Author,
		Keywords:       strings.Join(meta.Keywords, ", "),
		LastModifiedBy: meta.Author,
		Revision:       1,
		Created:        stamp,
		Modified:       stamp,
	}
}

type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}

func appProperties(meta layout.DocumentMeta, slides int) appPropertiesXML {
	app := strings.TrimSpace(meta.Creator)
	if app == "" {
		app = "txt2ppt"
	}
	return appPropertiesXML{Xmlns: nsAppProps, Application: app, Slides: slides}
}
