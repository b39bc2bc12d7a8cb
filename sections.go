package sprintreport

import (
	"fmt"
	"strconv"
)

// Section titles.
const (
	titleExecutiveSummary = "1. Executive Summary"
	titleBusinessModel    = "2. Business Model Overview"
	titleEvaluation       = "3. Evaluation Results by Proof of Value"
	titleStakeholders     = "4. Stakeholder & Ecosystem Analysis"
	titleRecommendations  = "5. Recommendations & Next Steps"
	titleConclusion       = "6. Conclusion"
)

func coverSection(c *Content) Section {
	var b blocks

	b.blank()
	b.blank()
	b.paragraph(Paragraph{Align: AlignCenter, Runs: []Run{
		{Text: clean(c.ReportTitle), Bold: true, Color: PrimaryBlue, Size: TitleSize},
	}})
	b.paragraph(Paragraph{Align: AlignCenter, Runs: []Run{
		{Text: clean(c.ReportSubtitle), Bold: true, Color: PrimaryBlue, Size: SubtitleSize},
	}})
	b.paragraph(Paragraph{Align: AlignCenter, Runs: []Run{
		{Text: clean(c.ProjectTagline), Italic: true, Color: Gray, Size: TaglineSize},
	}})
	b.paragraph(Paragraph{Align: AlignCenter, Runs: []Run{
		{Text: clean(c.Subtitle), Color: SecondaryBlue, Size: AssessmentSize},
	}})
	b.blank()

	meta := []struct{ label, value string }{
		{"Principal Investigator", c.PrincipalInvestigator},
		{"Institution", c.Institution},
		{"Sprint Duration", c.SprintDuration},
		{"Evaluation Framework", c.EvaluationFramework},
		{"Prepared By", c.PreparedBy},
		{"Report Date", c.ReportDate},
	}
	rows := make([][]Cell, len(meta))
	for i, m := range meta {
		rows[i] = []Cell{boldCell(m.label, "", AlignLeft), cell(m.value)}
	}
	b.table("metadata", coverWidths, nil, rows)

	b.pageBreak(BreakAfterCover)
	return Section{ID: SectionCover, Title: clean(c.ReportTitle), Blocks: b.list}
}

func executiveSummarySection(c *Content) Section {
	var b blocks

	b.heading(1, titleExecutiveSummary)

	b.heading(2, "1.1 Score Dashboard")
	statusFill, _ := OverallStatusColor(c.Status)
	b.table("score-dashboard", dashboardWidths,
		[]string{"Overall Vianeo Score", "Market Maturity Score", "Status"},
		[][]Cell{{
			boldCell(c.OverallVianeoScore, "", AlignCenter),
			boldCell(c.MarketMaturityScore, "", AlignCenter),
			withFill(boldCell(c.Status, "", AlignCenter), statusFill),
		}})
	b.blank()

	b.heading(2, "1.2 Project Overview")
	for _, p := range c.ProjectOverview {
		b.text(p)
	}

	b.heading(2, "1.3 Key Findings")
	rows := make([][]Cell, len(c.Dimensions))
	for i, d := range c.Dimensions {
		color, _ := StatusColor(d.Status)
		rows[i] = []Cell{
			boldCell(fmt.Sprintf("%s (%s)", d.Name, d.Weight), "", AlignLeft),
			boldCell(d.Score, "", AlignCenter),
			boldCell(statusLabel(d.Status), color, AlignCenter),
			cell(d.Interpretation),
		}
	}
	b.table("key-findings", findingsWidths, []string{"Dimension", "Score", "Status", "Interpretation"}, rows)
	b.blank()

	rec := c.PrimaryRecommendation
	b.heading(2, "1.4 Primary Recommendation")
	b.paragraph(Paragraph{Runs: append([]Run{{Text: "Status: ", Size: BodySize}}, bold(rec.StatusText))})
	b.text(rec.Summary)
	b.label("Critical validation gaps:")
	b.bullets(rec.ValidationGaps)
	b.label("Immediate next steps (0-90 days):")
	b.bullets(rec.ImmediateNextSteps)

	return Section{ID: SectionExecutiveSummary, Title: titleExecutiveSummary, Blocks: b.list}
}

func businessModelSection(c *Content) Section {
	var b blocks

	b.pageBreak(BreakBeforeBusinessModel)
	b.heading(1, titleBusinessModel)

	b.heading(2, "2.1 Value Proposition")
	b.text(c.ValueProposition)
	b.label("Core differentiation:")
	b.bullets(c.CoreDifferentiation)

	b.heading(2, "2.2 Target Market Segments")
	rows := make([][]Cell, len(c.TargetSegments))
	for i, s := range c.TargetSegments {
		rows[i] = []Cell{boldCell(s.Segment, "", AlignLeft), cell(s.Characteristics)}
	}
	b.table("target-segments", segmentWidths, []string{"Segment", "Key Characteristics"}, rows)
	b.blank()

	rm := c.RevenueModel
	b.heading(2, "2.3 Revenue Model")
	b.label(rm.Type + ":")
	b.bullets(rm.Components)
	if rm.PricingWarning != "" {
		runs := append([]Run{{
			Text:  "Critical pricing validation needed: ",
			Bold:  true,
			Color: DangerRed,
			Size:  BodySize,
		}}, body(rm.PricingWarning)...)
		b.paragraph(Paragraph{Runs: runs, Shading: LightGray, Indent: calloutIndent})
	}

	return Section{ID: SectionBusinessModel, Title: titleBusinessModel, Blocks: b.list}
}

func evaluationSection(c *Content) Section {
	var b blocks

	b.pageBreak(BreakBeforeEvaluation)
	b.heading(1, titleEvaluation)
	b.text(fmt.Sprintf("The Vianeo evaluation assessed %s across %s interconnected dimensions, "+
		"each weighted according to importance for commercialization success. This section details "+
		"findings, evidence, and validation gaps for each proof of value.",
		c.ProjectName, numberWord(len(c.Dimensions), false)))

	for i, d := range c.Dimensions {
		color, _ := StatusColor(d.Status)

		// The first dimension shares the page with the section intro.
		if i > 0 {
			b.pageBreak(BreakBeforeDimension)
		}
		b.coloredHeading(2, fmt.Sprintf("3.%d %s (%s) - Score: %s", i+1, d.Name, d.Weight, d.Score), color)

		status := []Run{
			bold("Status: "),
			{Text: statusLabel(d.Status), Bold: true, Color: color, Size: BodySize},
		}
		if d.Threshold != "" {
			status = append(status, Run{Text: fmt.Sprintf(" (Threshold: %s)", clean(d.Threshold)), Size: BodySize})
		}
		b.paragraph(Paragraph{Runs: status})

		b.heading(3, "Key Findings")
		b.text(d.Summary)
		b.label("Strengths:")
		b.bullets(d.Strengths)
		b.label("Gaps:")
		b.bullets(d.Gaps)
	}

	return Section{ID: SectionEvaluation, Title: titleEvaluation, Blocks: b.list}
}

func stakeholderSection(c *Content) Section {
	var b blocks

	b.pageBreak(BreakBeforeStakeholders)
	b.heading(1, titleStakeholders)

	b.heading(2, "4.1 Priority Personas")
	if n := len(c.Personas); n > 0 {
		noun := "personas"
		if n == 1 {
			noun = "persona"
		}
		b.text(fmt.Sprintf("%s primary %s identified for customer discovery validation "+
			"(all hypothetical pending interviews):", numberWord(n, true), noun))
	}
	for i, p := range c.Personas {
		b.heading(3, fmt.Sprintf("%d. %s", i+1, p.Name))
		b.labeled("Profile", p.Profile)
		b.label("Key needs (hypothesized):")
		b.bullets(p.Needs)
		b.labeled("Validation required", p.ValidationRequired)
	}

	b.heading(2, "4.2 Critical Ecosystem Relationships")
	rows := make([][]Cell, len(c.EcosystemRelationships))
	for i, r := range c.EcosystemRelationships {
		severity, _ := SeverityColor(r.Criticality)
		rows[i] = []Cell{
			boldCell(r.Relationship, "", AlignLeft),
			cell(r.Type),
			boldCell(r.Criticality, severity, AlignCenter),
			boldCell(r.Status, RelationshipStatusColor(r.Status), AlignCenter),
		}
	}
	b.table("ecosystem-relationships", ecosystemWidths,
		[]string{"Relationship", "Type", "Criticality", "Status"}, rows)

	return Section{ID: SectionStakeholders, Title: titleStakeholders, Blocks: b.list}
}

func recommendationsSection(c *Content) Section {
	var b blocks
	rec := c.Recommendations

	b.pageBreak(BreakBeforeRecommendations)
	b.heading(1, titleRecommendations)

	n := 0
	actions := func(list []Action) {
		for _, a := range list {
			n++
			b.heading(3, fmt.Sprintf("%d. %s", n, a.Title))
			b.labeled("Owner", a.Owner)
			b.labeled("Timeline", a.Timeline)
			b.label(a.ItemsLabel + ":")
			b.bullets(a.Items)
		}
	}

	b.heading(2, "5.1 Immediate Priorities (0-30 Days)")
	actions(rec.Immediate)
	b.heading(2, "5.2 Short-Term Validation (30-90 Days)")
	actions(rec.ShortTerm)

	b.pageBreak(BreakBeforeMediumTerm)
	b.heading(2, "5.3 Medium-Term Priorities (90-180 Days)")
	for _, a := range rec.MediumTerm {
		runs := append([]Run{bold(a.Title + ": ")}, body(a.Description)...)
		b.paragraph(Paragraph{Runs: runs, Bullet: true, Spacing: SpacingCondensed})
	}

	b.heading(2, "5.4 Risk Mitigation Strategies")
	rows := make([][]Cell, len(c.RiskMitigation))
	for i, r := range c.RiskMitigation {
		impact, _ := SeverityColor(r.Impact)
		rows[i] = []Cell{
			boldCell(r.Risk, "", AlignLeft),
			boldCell(r.Impact, impact, AlignCenter),
			cell(r.Strategy),
		}
	}
	b.table("risk-mitigation", riskWidths, []string{"Risk", "Impact", "Mitigation Strategy"}, rows)

	return Section{ID: SectionRecommendations, Title: titleRecommendations, Blocks: b.list}
}

func conclusionSection(c *Content) Section {
	var b blocks

	b.pageBreak(BreakBeforeConclusion)
	b.heading(1, titleConclusion)
	for _, p := range c.Conclusion {
		b.text(p)
	}

	nr := c.NextReview
	criteria := nr.SuccessCriteriaLabel
	if criteria == "" {
		criteria = "Success Criteria"
	}
	b.heading(2, "6.1 Next Review Checkpoint")
	b.labeled("Timing", nr.Timing)
	b.label("Expected Deliverables:")
	b.bullets(nr.Deliverables)
	b.label(criteria + ":")
	b.bullets(nr.SuccessCriteria)

	centered := func(r Run) {
		r.Size = BodySize
		b.paragraph(Paragraph{Align: AlignCenter, Runs: []Run{r}})
	}
	b.blank()
	centered(Run{Text: clean("— End of Report —"), Italic: true})
	b.blank()
	centered(Run{Text: "Prepared by " + clean(c.PreparedBy), Bold: true})
	centered(Run{Text: clean(c.Author) + ", " + clean(c.AuthorTitle)})
	centered(Run{Text: "Using " + clean(c.EvaluationFramework)})
	centered(Run{Text: clean(c.ReportDate)})

	return Section{ID: SectionConclusion, Title: titleConclusion, Blocks: b.list}
}

func withFill(c Cell, fill StyleToken) Cell {
	c.Fill = fill
	return c
}

var numberWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// numberWord spells small counts ("four"), optionally capitalized.
func numberWord(n int, capitalize bool) string {
	if n < 0 || n >= len(numberWords) {
		return strconv.Itoa(n)
	}
	w := numberWords[n]
	if capitalize {
		w = string(w[0]-'a'+'A') + w[1:]
	}
	return w
}
