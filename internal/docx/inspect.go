package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zip"
)

// MaxPartSize bounds the uncompressed size of a part read by Inspect.
var MaxPartSize uint64 = 64 << 20

// ElementKind identifies an outline element.
type ElementKind string

// Outline element kinds.
const (
	KindHeading   ElementKind = "heading"
	KindParagraph ElementKind = "paragraph"
	KindTable     ElementKind = "table"
	KindPageBreak ElementKind = "page-break"
)

// Element is one body-level item of an inspected document.
type Element struct {
	Kind   ElementKind
	Level  int
	Text   string
	Bullet bool
	Rows   int
	Cols   int
	Header []string
}

// Outline is the ordered body structure of a document plus metadata.
type Outline struct {
	Title    string
	Subject  string
	Creator  string
	Footer   string
	Elements []Element
}

// Headings returns heading elements in order.
func (o *Outline) Headings() []Element {
	return o.filter(KindHeading)
}

// Tables returns table elements in order.
func (o *Outline) Tables() []Element {
	return o.filter(KindTable)
}

// PageBreaks returns the number of explicit page breaks.
func (o *Outline) PageBreaks() int {
	return len(o.filter(KindPageBreak))
}

func (o *Outline) filter(kind ElementKind) []Element {
	var out []Element
	for _, e := range o.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// InspectFile reads and inspects the package at path.
func InspectFile(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Inspect(data)
}

// Inspect parses a .docx package and returns its outline.
func Inspect(data []byte) (*Outline, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	var footers []string
	for _, f := range zr.File {
		files[f.Name] = f
		if strings.HasPrefix(f.Name, "word/footer") && strings.HasSuffix(f.Name, ".xml") {
			footers = append(footers, f.Name)
		}
	}
	for _, name := range []string{partContentTypes, partDocument} {
		if files[name] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
		}
	}

	docData, err := readPart(files[partDocument])
	if err != nil {
		return nil, err
	}

	out := &Outline{}
	if out.Elements, err = parseBody(docData); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedXML, partDocument, err)
	}

	if f := files[partCore]; f != nil {
		if coreData, err := readPart(f); err == nil {
			parseCore(coreData, out)
		}
	}

	sort.Strings(footers)
	if len(footers) > 0 {
		if footerData, err := readPart(files[footers[0]]); err == nil {
			out.Footer = plainText(footerData)
		}
	}

	return out, nil
}

func readPart(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > MaxPartSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrDocumentTooLong, f.Name, f.UncompressedSize64, MaxPartSize)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, int64(MaxPartSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return data, nil
}

// paragraphState collects one body-level paragraph while streaming.
type paragraphState struct {
	text      strings.Builder
	level     int
	bullet    bool
	pageBreak bool
}

// tableState collects one body-level table while streaming.
type tableState struct {
	rows    int
	cols    int
	header  []string
	cell    strings.Builder
	inFirst bool
}

// parseBody streams document.xml, keeping body elements in order.
// Nested tables count toward their outer table only.
func parseBody(data []byte) ([]Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		elements  []Element
		para      *paragraphState
		table     *tableState
		tableNest int
		inText    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableNest++
				if tableNest == 1 {
					table = &tableState{}
				}
			case "tr":
				if tableNest == 1 {
					table.rows++
					table.inFirst = table.rows == 1
				}
			case "tc":
				if tableNest == 1 && table.inFirst {
					table.cols++
					table.cell.Reset()
				}
			case "p":
				if tableNest == 0 {
					para = &paragraphState{}
				}
			case "pStyle":
				if para != nil {
					para.level = headingLevel(attr(t, "val"))
				}
			case "outlineLvl":
				if para != nil && para.level == 0 {
					if n, err := strconv.Atoi(attr(t, "val")); err == nil && n < 9 {
						para.level = n + 1
					}
				}
			case "numPr":
				if para != nil {
					para.bullet = true
				}
			case "pageBreakBefore":
				if para != nil && attr(t, "val") != "0" && attr(t, "val") != "false" {
					para.pageBreak = true
				}
			case "br":
				if para != nil && attr(t, "type") == "page" {
					para.pageBreak = true
				}
			case "t":
				inText = true
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				if tableNest == 1 && table.inFirst {
					table.header = append(table.header, strings.TrimSpace(table.cell.String()))
				}
			case "tbl":
				tableNest--
				if tableNest == 0 {
					elements = append(elements, Element{
						Kind:   KindTable,
						Rows:   table.rows,
						Cols:   table.cols,
						Header: table.header,
					})
					table = nil
				}
			case "p":
				if tableNest == 0 && para != nil {
					elements = append(elements, para.elements()...)
					para = nil
				}
			}

		case xml.CharData:
			if !inText {
				continue
			}
			switch {
			case para != nil:
				para.text.Write(t)
			case table != nil && table.inFirst && tableNest == 1:
				table.cell.Write(t)
			}
		}
	}

	return elements, nil
}

func (p *paragraphState) elements() []Element {
	var out []Element
	if p.pageBreak {
		out = append(out, Element{Kind: KindPageBreak})
	}
	text := strings.TrimSpace(p.text.String())
	if text == "" {
		return out
	}
	e := Element{Kind: KindParagraph, Text: text, Bullet: p.bullet}
	if p.level > 0 {
		e.Kind = KindHeading
		e.Level = p.level
	}
	return append(out, e)
}

// headingLevel maps "Heading2" or "heading 2" style IDs to 2.
func headingLevel(style string) int {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if !strings.HasPrefix(s, "heading") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "heading"))
	if err != nil || n < 1 || n > 9 {
		return 0
	}
	return n
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// plainText concatenates all w:t text in a part.
func plainText(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var (
		b      strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inText = t.Name.Local == "t"
		case xml.EndElement:
			inText = false
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String())
}

type coreXML struct {
	Title   string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject string `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
}

func parseCore(data []byte, out *Outline) {
	var c coreXML
	if err := xml.Unmarshal(data, &c); err != nil {
		return
	}
	out.Title = c.Title
	out.Subject = c.Subject
	out.Creator = c.Creator
}
