package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"
)

// packageTime is stamped on every zip entry so output is reproducible.
var packageTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

// writePackage marshals every part and zips them in a fixed order.
func writePackage(b *Builder) ([]byte, error) {
	withFooter := len(b.footer) > 0 || b.pageNum

	doc := xDocument{
		W: nsW,
		R: nsR,
		Body: xBody{
			Elements: b.body,
			SectPr: xSectPr{
				PgSz: xPgSz{W: pageWidth, H: pageHeight},
				PgMar: xPgMar{
					Top: pageMargin, Right: pageMargin, Bottom: pageMargin, Left: pageMargin,
					Header: headerFooter, Footer: headerFooter,
				},
			},
		},
	}
	if withFooter {
		doc.Body.SectPr.Footer = &xFooterRef{Type: "default", ID: footerRelID}
	}

	documentXML, err := marshalPart(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	coreXML, err := marshalPart(coreProperties(b.props))
	if err != nil {
		return nil, fmt.Errorf("marshaling core properties: %w", err)
	}

	parts := []part{
		{partContentTypes, []byte(contentTypesXML(withFooter))},
		{partRootRels, []byte(rootRelsXML)},
		{partCore, coreXML},
		{partDocument, documentXML},
		{partDocumentRels, []byte(documentRelsXML(withFooter))},
		{partStyles, []byte(stylesXML(b.font, b.bodySize))},
		{partNumbering, []byte(numberingXML)},
	}

	if withFooter {
		footerXML, err := marshalPart(b.footerPart())
		if err != nil {
			return nil, fmt.Errorf("marshaling footer: %w", err)
		}
		parts = append(parts, part{partFooter, footerXML})
	}

	return zipParts(parts)
}

func (b *Builder) footerPart() xFooter {
	p := b.paragraph(Paragraph{Runs: b.footer, Align: AlignCenter})
	if b.pageNum {
		var style Run
		if len(b.footer) > 0 {
			style = b.footer[len(b.footer)-1]
		}
		style.Text = "1"
		p.Content = append(p.Content, xField{Instr: " PAGE ", Runs: []xRun{b.run(style)}})
	}
	return xFooter{W: nsW, R: nsR, Paragraphs: []xParagraph{p}}
}

func coreProperties(p Properties) xCoreProperties {
	core := xCoreProperties{
		CP:       nsCP,
		DC:       nsDC,
		DCTerms:  nsDCT,
		XSI:      nsXSI,
		Title:    p.Title,
		Subject:  p.Subject,
		Creator:  p.Creator,
		Keywords: p.Keywords,
	}
	if !p.Created.IsZero() {
		core.Created = &xW3CDate{
			Type:  "dcterms:W3CDTF",
			Value: p.Created.UTC().Format(time.RFC3339),
		}
	}
	return core
}

func marshalPart(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zipParts(parts []part) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: packageTime,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}
