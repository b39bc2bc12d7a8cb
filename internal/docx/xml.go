package docx

import "encoding/xml"

// XML namespaces used in the written parts.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP  = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC  = "http://purl.org/dc/elements/1.1/"
	nsDCT = "http://purl.org/dc/terms/"
	nsXSI = "http://www.w3.org/2001/XMLSchema-instance"
)

// Element names carry their "w:" prefix literally; the namespace is
// declared once on the root element.

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xBody    `xml:"w:body"`
}

// xBody keeps paragraphs and tables in document order.
type xBody struct {
	Elements []any
	SectPr   xSectPr `xml:"w:sectPr"`
}

type xSectPr struct {
	Footer *xFooterRef `xml:"w:footerReference,omitempty"`
	PgSz   xPgSz       `xml:"w:pgSz"`
	PgMar  xPgMar      `xml:"w:pgMar"`
}

type xFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xFooter struct {
	XMLName    xml.Name     `xml:"w:ftr"`
	W          string       `xml:"xmlns:w,attr"`
	R          string       `xml:"xmlns:r,attr"`
	Paragraphs []xParagraph `xml:"w:p"`
}

type xParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *xPPr    `xml:"w:pPr,omitempty"`
	Content []any
}

// xPPr fields follow the CT_PPr sequence order.
type xPPr struct {
	Style    *xVal     `xml:"w:pStyle,omitempty"`
	KeepNext *xEmpty   `xml:"w:keepNext,omitempty"`
	NumPr    *xNumPr   `xml:"w:numPr,omitempty"`
	Shd      *xShd     `xml:"w:shd,omitempty"`
	Spacing  *xSpacing `xml:"w:spacing,omitempty"`
	Ind      *xInd     `xml:"w:ind,omitempty"`
	Jc       *xVal     `xml:"w:jc,omitempty"`
}

type xNumPr struct {
	ILvl  xVal `xml:"w:ilvl"`
	NumID xVal `xml:"w:numId"`
}

type xSpacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type xInd struct {
	Left  int `xml:"w:left,attr"`
	Right int `xml:"w:right,attr"`
}

type xRun struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *xRPr    `xml:"w:rPr,omitempty"`
	Br      *xBr     `xml:"w:br,omitempty"`
	T       *xText   `xml:"w:t,omitempty"`
}

// xRPr fields follow the CT_RPr sequence order.
type xRPr struct {
	Fonts *xFonts `xml:"w:rFonts,omitempty"`
	B     *xEmpty `xml:"w:b,omitempty"`
	I     *xEmpty `xml:"w:i,omitempty"`
	Color *xVal   `xml:"w:color,omitempty"`
	Sz    *xVal   `xml:"w:sz,omitempty"`
	SzCs  *xVal   `xml:"w:szCs,omitempty"`
}

type xFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

type xText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xBr struct {
	Type string `xml:"w:type,attr,omitempty"`
}

type xField struct {
	XMLName xml.Name `xml:"w:fldSimple"`
	Instr   string   `xml:"w:instr,attr"`
	Runs    []xRun   `xml:"w:r"`
}

type xTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   xTblPr   `xml:"w:tblPr"`
	Grid    xTblGrid `xml:"w:tblGrid"`
	Rows    []xRow   `xml:"w:tr"`
}

type xTblPr struct {
	W       xWidth   `xml:"w:tblW"`
	Borders xBorders `xml:"w:tblBorders"`
	Layout  xType    `xml:"w:tblLayout"`
}

type xWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xBorders struct {
	Top     xBorder `xml:"w:top"`
	Left    xBorder `xml:"w:left"`
	Bottom  xBorder `xml:"w:bottom"`
	Right   xBorder `xml:"w:right"`
	InsideH xBorder `xml:"w:insideH"`
	InsideV xBorder `xml:"w:insideV"`
}

type xBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xTblGrid struct {
	Cols []xGridCol `xml:"w:gridCol"`
}

type xGridCol struct {
	W int `xml:"w:w,attr"`
}

type xRow struct {
	TrPr  *xTrPr  `xml:"w:trPr,omitempty"`
	Cells []xCell `xml:"w:tc"`
}

type xTrPr struct {
	TblHeader *xEmpty `xml:"w:tblHeader,omitempty"`
}

type xCell struct {
	TcPr       xTcPr        `xml:"w:tcPr"`
	Paragraphs []xParagraph `xml:"w:p"`
}

type xTcPr struct {
	W      xWidth `xml:"w:tcW"`
	Shd    *xShd  `xml:"w:shd,omitempty"`
	VAlign *xVal  `xml:"w:vAlign,omitempty"`
}

type xShd struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xType struct {
	Type string `xml:"w:type,attr"`
}

type xEmpty struct{}

// xCoreProperties is docProps/core.xml.
type xCoreProperties struct {
	XMLName  xml.Name  `xml:"cp:coreProperties"`
	CP       string    `xml:"xmlns:cp,attr"`
	DC       string    `xml:"xmlns:dc,attr"`
	DCTerms  string    `xml:"xmlns:dcterms,attr"`
	XSI      string    `xml:"xmlns:xsi,attr"`
	Title    string    `xml:"dc:title,omitempty"`
	Subject  string    `xml:"dc:subject,omitempty"`
	Creator  string    `xml:"dc:creator,omitempty"`
	Keywords string    `xml:"cp:keywords,omitempty"`
	Created  *xW3CDate `xml:"dcterms:created,omitempty"`
}

type xW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}
