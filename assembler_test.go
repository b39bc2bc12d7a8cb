package sprintreport

// Notes:
// - Tree.Validate's ragged-table branch cannot be reached through Assemble
//   because every builder emits full rows; it is exercised directly below.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestAssemble_Structure - Sections, page breaks and headings
// ---------------------------------------------------------------------------

func TestAssemble_Structure(t *testing.T) {
	t.Parallel()

	tree := mustAssemble(t, sampleContent())

	t.Run("seven sections in order", func(t *testing.T) {
		t.Parallel()

		var got []SectionID
		for _, s := range tree.Sections {
			got = append(got, s.ID)
		}
		want := []SectionID{
			SectionCover, SectionExecutiveSummary, SectionBusinessModel, SectionEvaluation,
			SectionStakeholders, SectionRecommendations, SectionConclusion,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("section order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("every break rule fires in order", func(t *testing.T) {
		t.Parallel()

		if diff := cmp.Diff(BreakRules(), tree.BreakPoints()); diff != "" {
			t.Errorf("break rules mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("one break before each dimension after the first", func(t *testing.T) {
		t.Parallel()

		want := []BreakPoint{
			BreakAfterCover,
			BreakBeforeBusinessModel,
			BreakBeforeEvaluation,
			BreakBeforeDimension, BreakBeforeDimension,
			BreakBeforeDimension, BreakBeforeDimension,
			BreakBeforeStakeholders,
			BreakBeforeRecommendations,
			BreakBeforeMediumTerm,
			BreakBeforeConclusion,
		}
		if diff := cmp.Diff(want, tree.PageBreaks()); diff != "" {
			t.Errorf("page breaks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("top-level headings", func(t *testing.T) {
		t.Parallel()

		var got []string
		for _, h := range tree.Headings() {
			if h.Level == 1 {
				got = append(got, runText(h.Runs))
			}
		}
		want := []string{
			"1. Executive Summary",
			"2. Business Model Overview",
			"3. Evaluation Results by Proof of Value",
			"4. Stakeholder & Ecosystem Analysis",
			"5. Recommendations & Next Steps",
			"6. Conclusion",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("H1 mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tables in order", func(t *testing.T) {
		t.Parallel()

		var got []string
		for _, tbl := range tree.Tables() {
			got = append(got, tbl.Name)
		}
		want := []string{
			"metadata", "score-dashboard", "key-findings", "target-segments",
			"ecosystem-relationships", "risk-mitigation",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("tables mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("metadata and filename", func(t *testing.T) {
		t.Parallel()

		want := Metadata{
			Title:      "IRDose Vianeo Validation",
			Subject:    "Executive Sprint Report",
			Creator:    "Chandler Lewis",
			ReportDate: "2025-12-08",
		}
		if diff := cmp.Diff(want, tree.Metadata); diff != "" {
			t.Errorf("metadata mismatch (-want +got):\n%s", diff)
		}
		if tree.Filename != "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx" {
			t.Errorf("Filename = %q", tree.Filename)
		}
	})

	t.Run("footer", func(t *testing.T) {
		t.Parallel()

		want := "Prepared by 360 Social Impact Studios | IRDose Vianeo Validation | Page "
		if got := runText(tree.Footer.Runs); got != want {
			t.Errorf("footer = %q, want %q", got, want)
		}
		if !tree.Footer.PageNumber {
			t.Error("footer should carry a page number")
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssemble_DimensionHeaderColor - Status drives the subsection color
// ---------------------------------------------------------------------------

func TestAssemble_DimensionHeaderColor(t *testing.T) {
	t.Parallel()

	c := sampleContent()
	tree := mustAssemble(t, c)

	var headers []Heading
	for _, h := range tree.Headings() {
		if h.Level == 2 && strings.HasPrefix(runText(h.Runs), "3.") {
			headers = append(headers, h)
		}
	}
	if len(headers) != len(c.Dimensions) {
		t.Fatalf("got %d dimension headers, want %d", len(headers), len(c.Dimensions))
	}

	for i, d := range c.Dimensions {
		want, err := StatusColor(d.Status)
		if err != nil {
			t.Fatal(err)
		}
		if got := headers[i].Runs[0].Color; got != want {
			t.Errorf("%s header color = %q, want %q", d.Name, got, want)
		}
	}

	if got := runText(headers[0].Runs); got != "3.1 Legitimacy (15%) - Score: 4.7" {
		t.Errorf("first dimension header = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Errors - Validation aborts with no tree
// ---------------------------------------------------------------------------

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Content)
		style   func(s StyleConfig)
		wantErr error
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown dimension status",
			mutate:  func(c *Content) { c.Dimensions[2].Status = "MAYBE" },
			wantErr: ErrUnknownStatus,
			check: func(t *testing.T, err error) {
				var se *UnknownStatusError
				if !errors.As(err, &se) {
					t.Fatalf("error type = %T, want *UnknownStatusError", err)
				}
				if se.Field != "dimensions[2].status" || se.Value != "MAYBE" {
					t.Errorf("UnknownStatusError = %+v", se)
				}
				if diff := cmp.Diff(Statuses, se.Accepted); diff != "" {
					t.Errorf("Accepted mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "missing overall score",
			mutate:  func(c *Content) { c.OverallVianeoScore = "" },
			wantErr: ErrMissingField,
			check: func(t *testing.T, err error) {
				var mf *MissingFieldError
				if !errors.As(err, &mf) || mf.Field != "overallVianeoScore" {
					t.Errorf("error = %v, want MissingFieldError for overallVianeoScore", err)
				}
			},
		},
		{
			name:    "unknown overall status",
			mutate:  func(c *Content) { c.Status = "GO" },
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "unknown relationship criticality",
			mutate:  func(c *Content) { c.EcosystemRelationships[1].Criticality = "Severe" },
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "unknown risk impact",
			mutate:  func(c *Content) { c.RiskMitigation[0].Impact = "critical" },
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "four dimensions",
			mutate:  func(c *Content) { c.Dimensions = c.Dimensions[:4] },
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "weights do not sum to 100",
			mutate:  func(c *Content) { c.Dimensions[4].Weight = "25%" },
			wantErr: ErrInvalidDimensions,
		},
		{
			name: "dimensions out of order",
			mutate: func(c *Content) {
				c.Dimensions[0], c.Dimensions[1] = c.Dimensions[1], c.Dimensions[0]
			},
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "weight not a percentage",
			mutate:  func(c *Content) { c.Dimensions[0].Weight = "high" },
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "unparseable report date",
			mutate:  func(c *Content) { c.ReportDate = "early December" },
			wantErr: ErrInvalidReportDate,
		},
		{
			name:    "style missing a referenced token",
			style:   func(s StyleConfig) { delete(s, LightBlue) },
			wantErr: ErrUnknownStyleToken,
		},
		{
			name:    "style with invalid value",
			style:   func(s StyleConfig) { s[PrimaryBlue] = "blue" },
			wantErr: ErrInvalidStyleValue,
		},
		{
			name:    "style with unknown token",
			style:   func(s StyleConfig) { s["accentPurple"] = "800080" },
			wantErr: ErrUnknownStyleToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := sampleContent()
			if tt.mutate != nil {
				tt.mutate(c)
			}
			style := DefaultStyle()
			if tt.style != nil {
				tt.style(style)
			}

			tree, err := Assemble(c, style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
			if tree != nil {
				t.Error("Assemble() returned a tree alongside an error")
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}

	t.Run("nil content", func(t *testing.T) {
		t.Parallel()

		if _, err := Assemble(nil, DefaultStyle()); !errors.Is(err, ErrNilContent) {
			t.Errorf("Assemble(nil) error = %v, want ErrNilContent", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestAssemble_Idempotent - Same inputs give identical trees
// ---------------------------------------------------------------------------

func TestAssemble_Idempotent(t *testing.T) {
	t.Parallel()

	first := mustAssemble(t, sampleContent())
	second := mustAssemble(t, sampleContent())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("trees differ (-first +second):\n%s", diff)
	}

	fp1, err := first.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := second.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Errorf("fingerprints differ: %s vs %s", fp1, fp2)
	}
	if len(fp1) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(fp1))
	}

	c := sampleContent()
	c.Dimensions[0].Score = "4.8"
	fp3, err := mustAssemble(t, c).Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if fp3 == fp1 {
		t.Error("different content produced the same fingerprint")
	}
}

// ---------------------------------------------------------------------------
// TestDocumentTree_Validate - Table shape and token checks
// ---------------------------------------------------------------------------

func TestDocumentTree_Validate(t *testing.T) {
	t.Parallel()

	withTable := func(t *testing.T, tbl *Table) *DocumentTree {
		tree := mustAssemble(t, sampleContent())
		s := &tree.Sections[1]
		s.Blocks = append(s.Blocks, Block{Kind: KindTable, Table: tbl})
		return tree
	}
	row := func(n int) TableRow {
		return TableRow{Cells: make([]Cell, n)}
	}

	tests := []struct {
		name    string
		table   *Table
		wantErr error
	}{
		{
			name:  "rows match header",
			table: &Table{Name: "ok", Widths: []float64{1, 1}, Rows: []TableRow{row(2), row(2)}},
		},
		{
			name:    "short row",
			table:   &Table{Name: "ragged", Widths: []float64{1, 1, 1}, Rows: []TableRow{row(3), row(2)}},
			wantErr: ErrRaggedTable,
		},
		{
			name:    "no columns",
			table:   &Table{Name: "empty", Rows: []TableRow{row(1)}},
			wantErr: ErrRaggedTable,
		},
		{
			name: "unknown fill token",
			table: &Table{Name: "fill", Widths: []float64{1}, Rows: []TableRow{
				{Cells: []Cell{{Fill: "neonPink"}}},
			}},
			wantErr: ErrUnknownStyleToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := withTable(t, tt.table).Validate(DefaultStyle())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseWeight
// ---------------------------------------------------------------------------

func TestParseWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "15%", want: 15},
		{in: " 20 % ", want: 20},
		{in: "12.5%", want: 12.5},
		{in: "25", want: 25},
		{in: "", wantErr: true},
		{in: "-5%", wantErr: true},
		{in: "120%", wantErr: true},
		{in: "heavy", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseWeight(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWeight(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseWeight(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
