package sprintreport

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/alnah/go-sprintreport/internal/yamlutil"
)

// SectionID identifies one of the seven fixed report sections.
type SectionID string

// Sections in document order.
const (
	SectionCover            SectionID = "cover"
	SectionExecutiveSummary SectionID = "executive-summary"
	SectionBusinessModel    SectionID = "business-model"
	SectionEvaluation       SectionID = "evaluation"
	SectionStakeholders     SectionID = "stakeholders"
	SectionRecommendations  SectionID = "recommendations"
	SectionConclusion       SectionID = "conclusion"
)

// SectionCount is the number of top-level sections in every report.
const SectionCount = 7

// BreakPoint names the rule that placed a page break.
type BreakPoint string

// Page-break rules in document order.
const (
	BreakAfterCover            BreakPoint = "after-cover"
	BreakBeforeBusinessModel   BreakPoint = "before-business-model"
	BreakBeforeEvaluation      BreakPoint = "before-evaluation"
	BreakBeforeDimension       BreakPoint = "before-dimension"
	BreakBeforeStakeholders    BreakPoint = "before-stakeholders"
	BreakBeforeRecommendations BreakPoint = "before-recommendations"
	BreakBeforeMediumTerm      BreakPoint = "before-medium-term"
	BreakBeforeConclusion      BreakPoint = "before-conclusion"
)

// BreakRules returns the eight page-break rules in document order.
func BreakRules() []BreakPoint {
	return []BreakPoint{
		BreakAfterCover,
		BreakBeforeBusinessModel,
		BreakBeforeEvaluation,
		BreakBeforeDimension,
		BreakBeforeStakeholders,
		BreakBeforeRecommendations,
		BreakBeforeMediumTerm,
		BreakBeforeConclusion,
	}
}

// BlockKind discriminates Block.
type BlockKind string

// Block kinds.
const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindTable     BlockKind = "table"
	KindPageBreak BlockKind = "page-break"
)

// Alignment is a paragraph or cell alignment.
type Alignment string

// Alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Spacing selects paragraph line spacing.
type Spacing string

// Spacings.
const (
	SpacingNormal    Spacing = "normal"
	SpacingCondensed Spacing = "condensed"
)

// Run is styled text. Color and Size are tokens resolved at render time;
// an empty token means the document default.
type Run struct {
	Text   string     `yaml:"text"`
	Bold   bool       `yaml:"bold,omitempty"`
	Italic bool       `yaml:"italic,omitempty"`
	Color  StyleToken `yaml:"color,omitempty"`
	Size   StyleToken `yaml:"size,omitempty"`
}

// Heading is a level 1-3 heading.
type Heading struct {
	Level int   `yaml:"level"`
	Runs  []Run `yaml:"runs"`
}

// Paragraph is a body paragraph. Indent is in inches on both sides.
type Paragraph struct {
	Runs    []Run      `yaml:"runs"`
	Align   Alignment  `yaml:"align,omitempty"`
	Bullet  bool       `yaml:"bullet,omitempty"`
	Spacing Spacing    `yaml:"spacing,omitempty"`
	Shading StyleToken `yaml:"shading,omitempty"`
	Indent  float64    `yaml:"indent,omitempty"`
}

// Cell is a table cell.
type Cell struct {
	Runs  []Run      `yaml:"runs"`
	Align Alignment  `yaml:"align,omitempty"`
	Fill  StyleToken `yaml:"fill,omitempty"`
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Header bool   `yaml:"header,omitempty"`
	Cells  []Cell `yaml:"cells"`
}

// Table has column widths in inches and rows of equal length.
type Table struct {
	Name   string     `yaml:"name"`
	Widths []float64  `yaml:"widths"`
	Rows   []TableRow `yaml:"rows"`
}

// PageBreak is an explicit break placed by a rule.
type PageBreak struct {
	Point BreakPoint `yaml:"point"`
}

// Block is one body element. Exactly one pointer matches Kind.
type Block struct {
	Kind      BlockKind  `yaml:"kind"`
	Heading   *Heading   `yaml:"heading,omitempty"`
	Paragraph *Paragraph `yaml:"paragraph,omitempty"`
	Table     *Table     `yaml:"table,omitempty"`
	PageBreak *PageBreak `yaml:"pageBreak,omitempty"`
}

// Section is a top-level report section.
type Section struct {
	ID     SectionID `yaml:"id"`
	Title  string    `yaml:"title"`
	Blocks []Block   `yaml:"blocks"`
}

// Footer repeats on every page; a page number follows the runs.
type Footer struct {
	Runs       []Run `yaml:"runs"`
	PageNumber bool  `yaml:"pageNumber"`
}

// Metadata is written to the package properties.
type Metadata struct {
	Title      string `yaml:"title"`
	Subject    string `yaml:"subject"`
	Creator    string `yaml:"creator"`
	ReportDate string `yaml:"reportDate"`
}

// DocumentTree is the assembled report, ready for rendering.
type DocumentTree struct {
	Filename string                `yaml:"filename"`
	Metadata Metadata              `yaml:"metadata"`
	Sections [SectionCount]Section `yaml:"sections"`
	Footer   Footer                `yaml:"footer"`
}

// PageBreaks returns the rule of every page-break block in order.
func (t *DocumentTree) PageBreaks() []BreakPoint {
	var out []BreakPoint
	t.walk(func(_ SectionID, b Block) {
		if b.Kind == KindPageBreak {
			out = append(out, b.PageBreak.Point)
		}
	})
	return out
}

// BreakPoints returns the distinct break rules present, in order of first use.
func (t *DocumentTree) BreakPoints() []BreakPoint {
	seen := make(map[BreakPoint]bool)
	var out []BreakPoint
	for _, p := range t.PageBreaks() {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Headings returns every heading in order.
func (t *DocumentTree) Headings() []Heading {
	var out []Heading
	t.walk(func(_ SectionID, b Block) {
		if b.Kind == KindHeading {
			out = append(out, *b.Heading)
		}
	})
	return out
}

// Tables returns every table in order.
func (t *DocumentTree) Tables() []Table {
	var out []Table
	t.walk(func(_ SectionID, b Block) {
		if b.Kind == KindTable {
			out = append(out, *b.Table)
		}
	})
	return out
}

func (t *DocumentTree) walk(fn func(SectionID, Block)) {
	for _, s := range t.Sections {
		for _, b := range s.Blocks {
			fn(s.ID, b)
		}
	}
}

// Validate checks tree invariants against a style: every referenced
// token exists and every table row has one cell per column.
func (t *DocumentTree) Validate(style StyleConfig) error {
	check := func(tok StyleToken, where string) error {
		if tok != "" && !style.Has(tok) {
			return &UnknownStyleTokenError{Token: tok, Where: where}
		}
		return nil
	}
	checkRuns := func(runs []Run, where string) error {
		for _, r := range runs {
			if err := check(r.Color, where); err != nil {
				return err
			}
			if err := check(r.Size, where); err != nil {
				return err
			}
		}
		return nil
	}

	for _, tok := range documentTokens {
		if err := check(tok, "document defaults"); err != nil {
			return err
		}
	}
	if err := checkRuns(t.Footer.Runs, "footer"); err != nil {
		return err
	}

	for _, s := range t.Sections {
		for i, b := range s.Blocks {
			where := fmt.Sprintf("%s block %d", s.ID, i)
			var err error
			switch b.Kind {
			case KindHeading:
				err = checkRuns(b.Heading.Runs, where)
			case KindParagraph:
				if err = check(b.Paragraph.Shading, where); err == nil {
					err = checkRuns(b.Paragraph.Runs, where)
				}
			case KindTable:
				err = validateTable(b.Table, where, check, checkRuns)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// documentTokens are resolved for every document regardless of content.
var documentTokens = []StyleToken{FontFamily, BodySize, BorderStyle, BorderSize, BorderGray}

func validateTable(
	tbl *Table,
	where string,
	check func(StyleToken, string) error,
	checkRuns func([]Run, string) error,
) error {
	cols := len(tbl.Widths)
	if cols == 0 {
		return fmt.Errorf("%w: %s table %q has no columns", ErrRaggedTable, where, tbl.Name)
	}
	for r, row := range tbl.Rows {
		if len(row.Cells) != cols {
			return fmt.Errorf("%w: %s table %q row %d has %d cells, want %d",
				ErrRaggedTable, where, tbl.Name, r, len(row.Cells), cols)
		}
		for _, c := range row.Cells {
			if err := check(c.Fill, where); err != nil {
				return err
			}
			if err := checkRuns(c.Runs, where); err != nil {
				return err
			}
		}
	}
	return nil
}

// fingerprintKey separates tree digests from other BLAKE3 uses.
var fingerprintKey = [32]byte{
	's', 'p', 'r', 'i', 'n', 't', 'r', 'e', 'p', 'o', 'r', 't', '.',
	't', 'r', 'e', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns a hex BLAKE3 digest of the tree's YAML encoding.
// Equal trees have equal fingerprints.
func (t *DocumentTree) Fingerprint() (string, error) {
	data, err := yamlutil.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding tree: %w", err)
	}
	h, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		return "", fmt.Errorf("initializing hash: %w", err)
	}
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
