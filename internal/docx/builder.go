package docx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Page geometry in twentieths of a point (US Letter, one-inch margins).
const (
	pageWidth    = 12240
	pageHeight   = 15840
	pageMargin   = 1440
	headerFooter = 720

	// TwipsPerInch converts inch column widths to table grid units.
	TwipsPerInch = 1440
)

// Alignment is a paragraph justification value.
type Alignment string

// Paragraph alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Run is a span of text with direct formatting.
// Color is a 6-hex RGB value; Size is in points.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string
	Size   float64
	Font   string
}

// Paragraph is a body paragraph. Spacing and indents are in twips.
// HeadingLevel 1-3 applies the matching HeadingN style.
type Paragraph struct {
	Runs          []Run
	Align         Alignment
	HeadingLevel  int
	Bullet        bool
	SpacingBefore int
	SpacingAfter  int
	IndentLeft    int
	IndentRight   int
	Shading       string
	KeepNext      bool
}

// Cell is a table cell holding a single paragraph.
type Cell struct {
	Paragraph Paragraph
	Fill      string
}

// Row is a table row. Header rows repeat on each page.
type Row struct {
	Cells  []Cell
	Header bool
}

// Border describes table border lines. Size is in eighths of a point.
type Border struct {
	Style string
	Size  int
	Color string
}

// Table is a fixed-layout table with explicit column widths in twips.
type Table struct {
	Widths []int
	Rows   []Row
	Border Border
}

// Properties are the package metadata written to docProps/core.xml.
type Properties struct {
	Title    string
	Subject  string
	Creator  string
	Keywords string
	Created  time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithFont sets the default font family.
func WithFont(family string) Option {
	return func(b *Builder) {
		b.font = family
	}
}

// WithBodySize sets the default body font size in points.
func WithBodySize(points float64) Option {
	return func(b *Builder) {
		b.bodySize = points
	}
}

// WithProperties sets the package metadata.
func WithProperties(p Properties) Option {
	return func(b *Builder) {
		b.props = p
	}
}

// Builder accumulates document content in order.
// A Builder is not safe for concurrent use.
type Builder struct {
	font     string
	bodySize float64
	props    Properties
	body     []any
	footer   []Run
	pageNum  bool
	tables   int
	err      error
}

// NewBuilder creates a Builder with Arial 11pt defaults.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		font:     "Arial",
		bodySize: 11,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddParagraph appends a paragraph to the body.
func (b *Builder) AddParagraph(p Paragraph) {
	b.body = append(b.body, b.paragraph(p))
}

// AddPageBreak appends an empty paragraph carrying a page break.
func (b *Builder) AddPageBreak() {
	b.body = append(b.body, xParagraph{
		Content: []any{xRun{Br: &xBr{Type: "page"}}},
	})
}

// AddTable appends a table. Every row must have one cell per column;
// the first violation is reported by Bytes.
func (b *Builder) AddTable(t Table) {
	b.tables++
	if err := validateTable(t); err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("table %d: %w", b.tables, err)
		}
		return
	}

	total := 0
	grid := make([]xGridCol, len(t.Widths))
	for i, w := range t.Widths {
		grid[i] = xGridCol{W: w}
		total += w
	}

	line := xBorder{Val: t.Border.Style, Sz: t.Border.Size, Color: t.Border.Color}
	if line.Val == "" {
		line.Val = "single"
	}
	if line.Color == "" {
		line.Color = "auto"
	}

	tbl := xTable{
		TblPr: xTblPr{
			W: xWidth{W: total, Type: "dxa"},
			Borders: xBorders{
				Top: line, Left: line, Bottom: line, Right: line,
				InsideH: line, InsideV: line,
			},
			Layout: xType{Type: "fixed"},
		},
		Grid: xTblGrid{Cols: grid},
		Rows: make([]xRow, 0, len(t.Rows)),
	}

	for _, r := range t.Rows {
		row := xRow{Cells: make([]xCell, 0, len(r.Cells))}
		if r.Header {
			row.TrPr = &xTrPr{TblHeader: &xEmpty{}}
		}
		for i, c := range r.Cells {
			cell := xCell{
				TcPr: xTcPr{
					W:      xWidth{W: t.Widths[i], Type: "dxa"},
					VAlign: &xVal{Val: "center"},
				},
				Paragraphs: []xParagraph{b.paragraph(c.Paragraph)},
			}
			if c.Fill != "" {
				cell.TcPr.Shd = &xShd{Val: "clear", Color: "auto", Fill: c.Fill}
			}
			row.Cells = append(row.Cells, cell)
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	b.body = append(b.body, tbl)
}

// SetFooter sets the page footer text. When pageNumber is true a PAGE
// field follows the runs.
func (b *Builder) SetFooter(runs []Run, pageNumber bool) {
	b.footer = append([]Run(nil), runs...)
	b.pageNum = pageNumber
}

// Bytes serializes the package. Calling Bytes twice yields identical output.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.body) == 0 {
		return nil, ErrEmptyDocument
	}
	return writePackage(b)
}

func validateTable(t Table) error {
	if len(t.Widths) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidTable)
	}
	for i, w := range t.Widths {
		if w <= 0 {
			return fmt.Errorf("%w: column %d has width %d", ErrInvalidTable, i, w)
		}
	}
	for i, r := range t.Rows {
		if len(r.Cells) != len(t.Widths) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidTable, i, len(r.Cells), len(t.Widths))
		}
	}
	return nil
}

// paragraph converts a Paragraph to its XML shape.
func (b *Builder) paragraph(p Paragraph) xParagraph {
	var ppr xPPr
	used := false

	if p.HeadingLevel >= 1 && p.HeadingLevel <= 3 {
		ppr.Style = &xVal{Val: "Heading" + strconv.Itoa(p.HeadingLevel)}
		used = true
	}
	if p.KeepNext {
		ppr.KeepNext = &xEmpty{}
		used = true
	}
	if p.Bullet {
		ppr.NumPr = &xNumPr{ILvl: xVal{Val: "0"}, NumID: xVal{Val: bulletNumID}}
		used = true
	}
	if p.Shading != "" {
		ppr.Shd = &xShd{Val: "clear", Color: "auto", Fill: p.Shading}
		used = true
	}
	if p.SpacingBefore != 0 || p.SpacingAfter != 0 {
		ppr.Spacing = &xSpacing{Before: p.SpacingBefore, After: p.SpacingAfter}
		used = true
	}
	if p.IndentLeft != 0 || p.IndentRight != 0 {
		ppr.Ind = &xInd{Left: p.IndentLeft, Right: p.IndentRight}
		used = true
	}
	if p.Align != "" && p.Align != AlignLeft {
		ppr.Jc = &xVal{Val: string(p.Align)}
		used = true
	}

	out := xParagraph{Content: make([]any, 0, len(p.Runs))}
	if used {
		out.PPr = &ppr
	}
	for _, r := range p.Runs {
		out.Content = append(out.Content, b.run(r))
	}
	return out
}

// run converts a Run to its XML shape.
func (b *Builder) run(r Run) xRun {
	rpr := &xRPr{}
	if r.Font != "" && r.Font != b.font {
		rpr.Fonts = &xFonts{ASCII: r.Font, HAnsi: r.Font, CS: r.Font}
	}
	if r.Bold {
		rpr.B = &xEmpty{}
	}
	if r.Italic {
		rpr.I = &xEmpty{}
	}
	if r.Color != "" {
		rpr.Color = &xVal{Val: strings.ToUpper(r.Color)}
	}
	if r.Size > 0 {
		hp := halfPoints(r.Size)
		rpr.Sz = &xVal{Val: hp}
		rpr.SzCs = &xVal{Val: hp}
	}

	out := xRun{T: &xText{Space: "preserve", Value: r.Text}}
	if *rpr != (xRPr{}) {
		out.RPr = rpr
	}
	return out
}

// halfPoints converts a point size to the half-point string OOXML expects.
func halfPoints(points float64) string {
	return strconv.Itoa(int(points*2 + 0.5))
}
