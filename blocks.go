package sprintreport

import (
	"strings"

	"github.com/alnah/go-sprintreport/internal/inline"
)

// Column widths in inches, per table.
var (
	coverWidths     = []float64{2.5, 4.0}
	dashboardWidths = []float64{2.0, 2.0, 2.0}
	findingsWidths  = []float64{1.8, 0.8, 1.0, 2.9}
	segmentWidths   = []float64{2.0, 4.5}
	ecosystemWidths = []float64{1.8, 1.5, 1.5, 1.7}
	riskWidths      = []float64{2.0, 1.0, 3.5}
)

// calloutIndent is the left and right indent of callout paragraphs.
const calloutIndent = 0.25

// blocks accumulates a section's body.
type blocks struct {
	list []Block
}

func (b *blocks) add(blk Block) {
	b.list = append(b.list, blk)
}

func (b *blocks) pageBreak(p BreakPoint) {
	b.add(Block{Kind: KindPageBreak, PageBreak: &PageBreak{Point: p}})
}

// heading adds a bold heading colored with the level's default token.
func (b *blocks) heading(level int, text string) {
	b.coloredHeading(level, text, headingColors[level])
}

func (b *blocks) coloredHeading(level int, text string, color StyleToken) {
	b.add(Block{Kind: KindHeading, Heading: &Heading{
		Level: level,
		Runs:  []Run{{Text: clean(text), Bold: true, Color: color, Size: headingSizes[level]}},
	}})
}

func (b *blocks) paragraph(p Paragraph) {
	if p.Spacing == "" {
		p.Spacing = SpacingNormal
	}
	b.add(Block{Kind: KindParagraph, Paragraph: &p})
}

// blank adds an empty spacer paragraph.
func (b *blocks) blank() {
	b.paragraph(Paragraph{})
}

// text adds a body paragraph, honoring inline emphasis.
func (b *blocks) text(s string) {
	b.paragraph(Paragraph{Runs: body(s)})
}

// label adds a bold lead-in line such as "Strengths:".
func (b *blocks) label(s string) {
	b.paragraph(Paragraph{Runs: []Run{bold(s)}})
}

// labeled adds "Label: value" with a bold label.
func (b *blocks) labeled(label, value string) {
	runs := append([]Run{bold(label + ": ")}, body(value)...)
	b.paragraph(Paragraph{Runs: runs})
}

func (b *blocks) bullets(items []string) {
	for _, item := range items {
		b.paragraph(Paragraph{Runs: body(item), Bullet: true})
	}
}

// table adds a table with a styled header row followed by body rows
// whose fills alternate white and light blue.
func (b *blocks) table(name string, widths []float64, header []string, rows [][]Cell) {
	tbl := &Table{Name: name, Widths: widths}
	if header != nil {
		cells := make([]Cell, len(header))
		for i, h := range header {
			cells[i] = headerCell(h)
		}
		tbl.Rows = append(tbl.Rows, TableRow{Header: true, Cells: cells})
	}
	for i, cells := range rows {
		fill := RowFill(i)
		styled := make([]Cell, len(cells))
		for j, c := range cells {
			if c.Fill == "" {
				c.Fill = fill
			}
			styled[j] = c
		}
		tbl.Rows = append(tbl.Rows, TableRow{Cells: styled})
	}
	b.add(Block{Kind: KindTable, Table: tbl})
}

// RowFill returns the fill of a body row by its zero-based index:
// even rows are white, odd rows light blue.
func RowFill(bodyIndex int) StyleToken {
	if bodyIndex%2 == 0 {
		return White
	}
	return LightBlue
}

var headingColors = map[int]StyleToken{1: PrimaryBlue, 2: DarkGray, 3: Black}

var headingSizes = map[int]StyleToken{1: Heading1Size, 2: Heading2Size, 3: Heading3Size}

func headerCell(text string) Cell {
	return Cell{
		Runs:  []Run{{Text: clean(text), Bold: true, Color: White, Size: BodySize}},
		Align: AlignCenter,
		Fill:  PrimaryBlue,
	}
}

// cell is a body cell with inline emphasis.
func cell(text string) Cell {
	return Cell{Runs: body(text)}
}

// boldCell is a bold body cell, optionally colored and centered.
func boldCell(text string, color StyleToken, align Alignment) Cell {
	return Cell{
		Runs:  []Run{{Text: clean(text), Bold: true, Color: color, Size: BodySize}},
		Align: align,
	}
}

// body converts text with inline emphasis to body-sized runs.
func body(s string) []Run {
	spans := inline.Parse(s)
	runs := make([]Run, len(spans))
	for i, sp := range spans {
		runs[i] = Run{Text: sp.Text, Bold: sp.Bold, Italic: sp.Italic, Size: BodySize}
	}
	return runs
}

// bold is a bold body run. A trailing space separating it from the
// next run survives cleaning.
func bold(s string) Run {
	text := clean(s)
	if strings.HasSuffix(s, " ") {
		text += " "
	}
	return Run{Text: text, Bold: true, Size: BodySize}
}

// clean normalizes dashes and whitespace, keeping Markdown markers.
func clean(s string) string {
	return inline.Clean(s)
}
