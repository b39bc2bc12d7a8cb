package sprintreport

import (
	"testing"
)

// sampleContent returns a complete, valid content record. Each call
// returns a fresh copy so tests may mutate it.
func sampleContent() *Content {
	dim := func(name, weight, score, status, interp string) Dimension {
		return Dimension{
			Name:           name,
			Weight:         weight,
			Score:          score,
			Status:         status,
			Interpretation: interp,
			Summary:        name + " assessment is **mostly positive** with *open questions*.",
			Strengths:      []string{name + " strength one", name + " strength two"},
			Gaps:           []string{name + " gap"},
		}
	}

	return &Content{
		ProjectName:           "IRDose",
		ReportTitle:           "IRDose Vianeo Validation",
		ReportSubtitle:        "Executive Sprint Report",
		ProjectTagline:        "Personalized Radioiodine Dosimetry System",
		Subtitle:              "Business Model Evaluation & Market Readiness Assessment",
		PrincipalInvestigator: "Daniel Alexandre Baptista Bonifacio",
		Institution:           "IPEN/CNEN (Instituto de Pesquisas Energéticas e Nucleares)",
		SprintDuration:        "October 29 – December 8, 2025 (4 sessions)",
		EvaluationFramework:   "Vianeo Business Model Evaluation System",
		PreparedBy:            "360 Social Impact Studios",
		ReportDate:            "December 8, 2025",
		Author:                "Chandler Lewis",
		AuthorTitle:           "Managing Director",

		OverallVianeoScore:  "4.1 / 5.0",
		MarketMaturityScore: "3.1 / 5.0",
		Status:              RecommendConditionalProceed,

		Dimensions: []Dimension{
			dim("Legitimacy", "15%", "4.7", StatusPass, "Validated problem, strong institutional backing"),
			dim("Desirability", "25%", "4.2", StatusPass, "Clear clinical need identified"),
			dim("Acceptability", "20%", "4.1", StatusConditional, "Regulatory pathway clear"),
			dim("Feasibility", "20%", "4.4", StatusPass, "Functional prototype, costs defined"),
			dim("Viability", "20%", "2.9", StatusFail, "Business model defined but unvalidated"),
		},

		ProjectOverview: []string{
			"The IRDose project develops a personalized radioiodine dosimetry system.",
			"The market maturity score of **3.1/5.0** falls below the 3.2 threshold.",
		},
		PrimaryRecommendation: PrimaryRecommendation{
			StatusText:         "CONDITIONAL PROCEED with mandatory customer discovery sprint",
			Summary:            "Advancement requires a customer discovery sprint.",
			ValidationGaps:     []string{"Zero customer discovery interviews conducted"},
			ImmediateNextSteps: []string{"Execute 40-60 structured interviews"},
		},

		ValueProposition:    "IRDose delivers personalized radioiodine dosimetry.",
		CoreDifferentiation: []string{"Real-time dosimetry monitoring", "Patient-specific biokinetics"},
		TargetSegments: []TargetSegment{
			{Segment: "Nuclear Medicine Physicians", Characteristics: "Primary clinical decision-makers"},
			{Segment: "Medical Physicists", Characteristics: "Technical gatekeepers"},
			{Segment: "Hospital Administrators", Characteristics: "Budget decision-makers"},
		},
		RevenueModel: RevenueModel{
			Type:           "Proposed hybrid model (unvalidated)",
			Components:     []string{"Platform subscription: $400-800/month", "Per-procedure fee: $15-25"},
			PricingWarning: "All pricing assumptions remain untested hypotheses.",
		},

		Personas: []Persona{
			{Name: "Dr. Ana Souza", Profile: "Nuclear medicine physician", Needs: []string{"Accurate dosing"}, ValidationRequired: "Interview 10 physicians"},
			{Name: "Marco Lima", Profile: "Medical physicist", Needs: []string{"Traceable calibration"}, ValidationRequired: "Calibration review"},
		},
		EcosystemRelationships: []Relationship{
			{Relationship: "HC/FMUSP", Type: "Clinical partner", Criticality: SeverityCritical, Status: "Active"},
			{Relationship: "Gaugit", Type: "Manufacturer", Criticality: SeverityHigh, Status: "Informal"},
			{Relationship: "ANVISA", Type: "Regulator", Criticality: SeverityMedium, Status: "Pending"},
		},

		Recommendations: Recommendations{
			Immediate: []Action{
				{Title: "Customer discovery", Owner: "PI", Timeline: "Days 0-30", ItemsLabel: "Actions", Items: []string{"Run interviews"}},
				{Title: "Commercial advisor", Owner: "Board", Timeline: "Days 0-30", ItemsLabel: "Actions", Items: []string{"Recruit advisor"}},
			},
			ShortTerm: []Action{
				{Title: "Pilot study", Owner: "Clinical lead", Timeline: "Days 30-90", ItemsLabel: "Success metrics", Items: []string{"10 patients enrolled"}},
			},
			MediumTerm: []MediumTermAction{
				{Title: "Series A preparation", Description: "Build the data room."},
				{Title: "Regulatory filing", Description: "Submit to ANVISA."},
			},
		},
		RiskMitigation: []Risk{
			{Risk: "Pricing rejection", Impact: SeverityCritical, Strategy: "Test willingness-to-pay early"},
			{Risk: "Manufacturing delay", Impact: SeverityLow, Strategy: "Second-source components"},
		},

		Conclusion: []string{"IRDose is technically strong.", "Commercial validation is the priority."},
		NextReview: NextReview{
			Timing:          "March 2026",
			Deliverables:    []string{"Interview synthesis"},
			SuccessCriteria: []string{"40 interviews completed"},
		},
	}
}

// mustAssemble assembles c with the default style or fails the test.
func mustAssemble(t *testing.T, c *Content) *DocumentTree {
	t.Helper()
	tree, err := Assemble(c, DefaultStyle())
	if err != nil {
		t.Fatalf("Assemble() unexpected error: %v", err)
	}
	return tree
}

// runText concatenates the text of runs.
func runText(runs []Run) string {
	var s string
	for _, r := range runs {
		s += r.Text
	}
	return s
}

// blocksOf returns the blocks of the section with the given ID.
func blocksOf(t *testing.T, tree *DocumentTree, id SectionID) []Block {
	t.Helper()
	for _, s := range tree.Sections {
		if s.ID == id {
			return s.Blocks
		}
	}
	t.Fatalf("section %q not found", id)
	return nil
}

// paragraphTexts returns the text of every paragraph block.
func paragraphTexts(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == KindParagraph {
			out = append(out, runText(b.Paragraph.Runs))
		}
	}
	return out
}

// findParagraph returns the first paragraph whose text equals text.
func findParagraph(t *testing.T, blocks []Block, text string) *Paragraph {
	t.Helper()
	for _, b := range blocks {
		if b.Kind == KindParagraph && runText(b.Paragraph.Runs) == text {
			return b.Paragraph
		}
	}
	t.Fatalf("paragraph %q not found", text)
	return nil
}
