package sprintreport

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alnah/go-sprintreport/internal/docx"
)

// StyledRun is a Run with its tokens resolved to literal values.
type StyledRun struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string  // 6-hex RGB, empty for the document default
	Size   float64 // points, zero for the document default
}

// StyledParagraph is a resolved Paragraph. Indent is in inches.
type StyledParagraph struct {
	Runs    []StyledRun
	Align   Alignment
	Bullet  bool
	Spacing Spacing
	Shading string
	Indent  float64
}

// StyledCell is a resolved table cell.
type StyledCell struct {
	Paragraph StyledParagraph
	Fill      string
}

// StyledRow is a resolved table row.
type StyledRow struct {
	Header bool
	Cells  []StyledCell
}

// StyledTable is a resolved table. Widths are in inches; border size is
// in eighths of a point.
type StyledTable struct {
	Widths      []float64
	Rows        []StyledRow
	BorderStyle string
	BorderSize  int
	BorderColor string
}

// DocumentSettings are the document-wide defaults handed to a Writer.
type DocumentSettings struct {
	Font     string
	BodySize float64
	Title    string
	Subject  string
	Creator  string
	Created  time.Time
}

// Writer serializes resolved blocks to a word-processing format.
// Calls arrive in document order; Bytes is called once at the end.
type Writer interface {
	AddHeading(level int, runs []StyledRun)
	AddParagraph(p StyledParagraph)
	AddTable(t StyledTable)
	AddPageBreak()
	SetFooter(runs []StyledRun, pageNumber bool)
	Bytes() ([]byte, error)
}

// WriterFactory creates a Writer for one document.
type WriterFactory func(DocumentSettings) Writer

// Render resolves every token in tree against style and feeds the blocks
// to a Writer created by newWriter, in document order. A nil factory
// selects the DOCX writer. Writer failures are returned as
// *SerializationError.
func Render(tree *DocumentTree, style StyleConfig, newWriter WriterFactory) ([]byte, error) {
	if tree == nil {
		return nil, errors.New("document tree cannot be nil")
	}
	if newWriter == nil {
		newWriter = NewDocxWriter
	}

	r := &resolver{style: style}
	settings := DocumentSettings{
		Font:     r.value(FontFamily),
		BodySize: r.points(BodySize),
		Title:    tree.Metadata.Title,
		Subject:  tree.Metadata.Subject,
		Creator:  tree.Metadata.Creator,
	}
	if created, err := time.Parse("2006-01-02", tree.Metadata.ReportDate); err == nil {
		settings.Created = created
	}
	border := r.border()
	if r.err != nil {
		return nil, r.err
	}

	w := newWriter(settings)
	for _, s := range tree.Sections {
		for _, b := range s.Blocks {
			switch b.Kind {
			case KindHeading:
				w.AddHeading(b.Heading.Level, r.runs(b.Heading.Runs))
			case KindParagraph:
				w.AddParagraph(r.paragraph(*b.Paragraph))
			case KindTable:
				w.AddTable(r.table(*b.Table, border))
			case KindPageBreak:
				w.AddPageBreak()
			}
			if r.err != nil {
				return nil, fmt.Errorf("section %s: %w", s.ID, r.err)
			}
		}
	}
	w.SetFooter(r.runs(tree.Footer.Runs), tree.Footer.PageNumber)
	if r.err != nil {
		return nil, r.err
	}

	data, err := w.Bytes()
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return data, nil
}

// resolver looks tokens up in a style and keeps the first failure.
type resolver struct {
	style StyleConfig
	err   error
}

func (r *resolver) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *resolver) value(tok StyleToken) string {
	v, err := r.style.Value(tok)
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *resolver) color(tok StyleToken) string {
	if tok == "" {
		return ""
	}
	v, err := r.style.Color(tok)
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *resolver) points(tok StyleToken) float64 {
	if tok == "" {
		return 0
	}
	v, err := r.style.Points(tok)
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *resolver) border() StyledTable {
	size, err := strconv.Atoi(r.value(BorderSize))
	if err != nil && r.err == nil {
		r.fail(fmt.Errorf("%w: %s", ErrInvalidStyleValue, BorderSize))
	}
	return StyledTable{
		BorderStyle: r.value(BorderStyle),
		BorderSize:  size,
		BorderColor: r.color(BorderGray),
	}
}

func (r *resolver) runs(in []Run) []StyledRun {
	out := make([]StyledRun, len(in))
	for i, run := range in {
		out[i] = StyledRun{
			Text:   run.Text,
			Bold:   run.Bold,
			Italic: run.Italic,
			Color:  r.color(run.Color),
			Size:   r.points(run.Size),
		}
	}
	return out
}

func (r *resolver) paragraph(p Paragraph) StyledParagraph {
	return StyledParagraph{
		Runs:    r.runs(p.Runs),
		Align:   p.Align,
		Bullet:  p.Bullet,
		Spacing: p.Spacing,
		Shading: r.color(p.Shading),
		Indent:  p.Indent,
	}
}

func (r *resolver) table(t Table, border StyledTable) StyledTable {
	out := border
	out.Widths = append([]float64(nil), t.Widths...)
	out.Rows = make([]StyledRow, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]StyledCell, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = StyledCell{
				Paragraph: StyledParagraph{Runs: r.runs(c.Runs), Align: c.Align, Spacing: SpacingCondensed},
				Fill:      r.color(c.Fill),
			}
		}
		out.Rows[i] = StyledRow{Header: row.Header, Cells: cells}
	}
	return out
}

// Paragraph spacing in twips.
const (
	spacingAfterNormal    = 120
	spacingAfterCondensed = 40
	headingSpacingBefore  = 240
)

// docxWriter adapts the OOXML package builder to Writer.
type docxWriter struct {
	b *docx.Builder
}

// NewDocxWriter returns a Writer producing Office Open XML documents.
func NewDocxWriter(s DocumentSettings) Writer {
	return &docxWriter{b: docx.NewBuilder(
		docx.WithFont(s.Font),
		docx.WithBodySize(s.BodySize),
		docx.WithProperties(docx.Properties{
			Title:   s.Title,
			Subject: s.Subject,
			Creator: s.Creator,
			Created: s.Created,
		}),
	)}
}

func (w *docxWriter) AddHeading(level int, runs []StyledRun) {
	w.b.AddParagraph(docx.Paragraph{
		Runs:          docxRuns(runs),
		HeadingLevel:  level,
		SpacingBefore: headingSpacingBefore,
		SpacingAfter:  spacingAfterNormal,
		KeepNext:      true,
	})
}

func (w *docxWriter) AddParagraph(p StyledParagraph) {
	w.b.AddParagraph(docxParagraph(p))
}

func (w *docxWriter) AddTable(t StyledTable) {
	widths := make([]int, len(t.Widths))
	for i, in := range t.Widths {
		widths[i] = inchesToTwips(in)
	}
	rows := make([]docx.Row, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]docx.Cell, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = docx.Cell{Paragraph: docxParagraph(c.Paragraph), Fill: c.Fill}
		}
		rows[i] = docx.Row{Cells: cells, Header: r.Header}
	}
	w.b.AddTable(docx.Table{
		Widths: widths,
		Rows:   rows,
		Border: docx.Border{Style: t.BorderStyle, Size: t.BorderSize, Color: t.BorderColor},
	})
}

func (w *docxWriter) AddPageBreak() {
	w.b.AddPageBreak()
}

func (w *docxWriter) SetFooter(runs []StyledRun, pageNumber bool) {
	w.b.SetFooter(docxRuns(runs), pageNumber)
}

func (w *docxWriter) Bytes() ([]byte, error) {
	return w.b.Bytes()
}

func docxParagraph(p StyledParagraph) docx.Paragraph {
	out := docx.Paragraph{
		Runs:         docxRuns(p.Runs),
		Bullet:       p.Bullet,
		Shading:      p.Shading,
		SpacingAfter: spacingAfterNormal,
		IndentLeft:   inchesToTwips(p.Indent),
		IndentRight:  inchesToTwips(p.Indent),
	}
	if p.Spacing == SpacingCondensed {
		out.SpacingAfter = spacingAfterCondensed
	}
	if p.Align == AlignCenter {
		out.Align = docx.AlignCenter
	}
	return out
}

func docxRuns(runs []StyledRun) []docx.Run {
	out := make([]docx.Run, len(runs))
	for i, r := range runs {
		out[i] = docx.Run{Text: r.Text, Bold: r.Bold, Italic: r.Italic, Color: r.Color, Size: r.Size}
	}
	return out
}

func inchesToTwips(in float64) int {
	return int(in*docx.TwipsPerInch + 0.5)
}
