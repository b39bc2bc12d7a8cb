package sprintreport

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-sprintreport/internal/dateutil"
)

// CanonicalDimensions lists the five evaluation axes in report order.
var CanonicalDimensions = []string{
	"Legitimacy",
	"Desirability",
	"Acceptability",
	"Feasibility",
	"Viability",
}

// Assemble builds the document tree for content using style.
//
// All validation runs before any block is built, in this order: style
// values, field presence, the evaluation framework (five canonical
// dimensions whose weights sum to 100%), status labels and the report
// date. After building, token references and table shapes are checked.
// On error the returned tree is nil.
func Assemble(content *Content, style StyleConfig) (*DocumentTree, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	if err := validateFramework(content.Dimensions); err != nil {
		return nil, err
	}
	if err := validateStatuses(content); err != nil {
		return nil, err
	}
	filename, err := Filename(content)
	if err != nil {
		return nil, err
	}
	reportDate, err := dateutil.ParseReportDate(content.ReportDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReportDate, err)
	}

	tree := &DocumentTree{
		Filename: filename,
		Metadata: Metadata{
			Title:      content.ReportTitle,
			Subject:    content.ReportSubtitle,
			Creator:    content.Author,
			ReportDate: reportDate.Format("2006-01-02"),
		},
		Sections: [SectionCount]Section{
			coverSection(content),
			executiveSummarySection(content),
			businessModelSection(content),
			evaluationSection(content),
			stakeholderSection(content),
			recommendationsSection(content),
			conclusionSection(content),
		},
		Footer: Footer{
			Runs: []Run{{
				Text:  fmt.Sprintf("Prepared by %s | %s | Page ", clean(content.PreparedBy), clean(content.ReportTitle)),
				Color: Gray,
				Size:  MetadataSize,
			}},
			PageNumber: true,
		},
	}

	if err := tree.Validate(style); err != nil {
		return nil, err
	}
	return tree, nil
}

// validateFramework requires the five canonical dimensions in order with
// percentage weights summing to 100.
func validateFramework(dims []Dimension) error {
	if len(dims) != len(CanonicalDimensions) {
		return fmt.Errorf("%w: got %d dimensions, want %d (%s)",
			ErrInvalidDimensions, len(dims), len(CanonicalDimensions), strings.Join(CanonicalDimensions, ", "))
	}

	total := 0.0
	for i, d := range dims {
		if !strings.EqualFold(strings.TrimSpace(d.Name), CanonicalDimensions[i]) {
			return fmt.Errorf("%w: dimensions[%d] is %q, want %q",
				ErrInvalidDimensions, i, d.Name, CanonicalDimensions[i])
		}
		w, err := parseWeight(d.Weight)
		if err != nil {
			return fmt.Errorf("%w: dimensions[%d].weight: %v", ErrInvalidDimensions, i, err)
		}
		total += w
	}
	if math.Abs(total-100) > 1e-6 {
		return fmt.Errorf("%w: weights sum to %g%%, want 100%%", ErrInvalidDimensions, total)
	}
	return nil
}

// parseWeight parses "15%" or "15" as 15.
func parseWeight(s string) (float64, error) {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	w, err := strconv.ParseFloat(v, 64)
	if err != nil || w < 0 || w > 100 {
		return 0, fmt.Errorf("%q is not a percentage", s)
	}
	return w, nil
}

// validateStatuses checks every enumerated label before anything is built.
func validateStatuses(c *Content) error {
	if err := checkStatus("status", c.Status, OverallStatusColor); err != nil {
		return err
	}
	for i, d := range c.Dimensions {
		if err := checkStatus(fmt.Sprintf("dimensions[%d].status", i), d.Status, StatusColor); err != nil {
			return err
		}
	}
	for i, r := range c.EcosystemRelationships {
		if err := checkStatus(fmt.Sprintf("ecosystemRelationships[%d].criticality", i), r.Criticality, SeverityColor); err != nil {
			return err
		}
	}
	for i, r := range c.RiskMitigation {
		if err := checkStatus(fmt.Sprintf("riskMitigation[%d].impact", i), r.Impact, SeverityColor); err != nil {
			return err
		}
	}
	return nil
}

func checkStatus(field, value string, lookup func(string) (StyleToken, error)) error {
	if _, err := lookup(value); err != nil {
		var se *UnknownStatusError
		if errors.As(err, &se) {
			return &UnknownStatusError{Field: field, Value: value, Accepted: se.Accepted}
		}
		return err
	}
	return nil
}
