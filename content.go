package sprintreport

import (
	"fmt"
	"strings"

	"github.com/alnah/go-sprintreport/internal/yamlutil"
)

// Content is the content record for one sprint report. YAML keys are
// camelCase. Fields are read-only once loaded.
type Content struct {
	// Metadata
	ProjectName           string `yaml:"projectName"`
	ReportTitle           string `yaml:"reportTitle"`
	ReportSubtitle        string `yaml:"reportSubtitle"`
	ProjectTagline        string `yaml:"projectTagline"`
	Subtitle              string `yaml:"subtitle"`
	PrincipalInvestigator string `yaml:"principalInvestigator"`
	Institution           string `yaml:"institution"`
	SprintDuration        string `yaml:"sprintDuration"`
	EvaluationFramework   string `yaml:"evaluationFramework"`
	PreparedBy            string `yaml:"preparedBy"`
	ReportDate            string `yaml:"reportDate"`
	Author                string `yaml:"author"`
	AuthorTitle           string `yaml:"authorTitle"`

	// Scores
	OverallVianeoScore  string `yaml:"overallVianeoScore"`
	MarketMaturityScore string `yaml:"marketMaturityScore"`
	Status              string `yaml:"status"`

	Dimensions []Dimension `yaml:"dimensions"`

	// Executive summary
	ProjectOverview       []string              `yaml:"projectOverview"`
	PrimaryRecommendation PrimaryRecommendation `yaml:"primaryRecommendation"`

	// Business model
	ValueProposition    string          `yaml:"valueProposition"`
	CoreDifferentiation []string        `yaml:"coreDifferentiation"`
	TargetSegments      []TargetSegment `yaml:"targetSegments"`
	RevenueModel        RevenueModel    `yaml:"revenueModel"`

	// Stakeholders
	Personas               []Persona      `yaml:"personas"`
	EcosystemRelationships []Relationship `yaml:"ecosystemRelationships"`

	// Recommendations
	Recommendations Recommendations `yaml:"recommendations"`
	RiskMitigation  []Risk          `yaml:"riskMitigation"`

	// Conclusion
	Conclusion []string   `yaml:"conclusion"`
	NextReview NextReview `yaml:"nextReview"`
}

// Dimension is one evaluation axis. Threshold is optional.
type Dimension struct {
	Name           string   `yaml:"name"`
	Weight         string   `yaml:"weight"`
	Score          string   `yaml:"score"`
	Threshold      string   `yaml:"threshold,omitempty"`
	Status         string   `yaml:"status"`
	Interpretation string   `yaml:"interpretation"`
	Summary        string   `yaml:"summary"`
	Strengths      []string `yaml:"strengths"`
	Gaps           []string `yaml:"gaps"`
}

// PrimaryRecommendation is the executive summary verdict.
type PrimaryRecommendation struct {
	StatusText         string   `yaml:"statusText"`
	Summary            string   `yaml:"summary"`
	ValidationGaps     []string `yaml:"validationGaps"`
	ImmediateNextSteps []string `yaml:"immediateNextSteps"`
}

// TargetSegment is a row of the market segment table.
type TargetSegment struct {
	Segment         string `yaml:"segment"`
	Characteristics string `yaml:"characteristics"`
}

// RevenueModel describes the proposed revenue streams. PricingWarning is
// optional; when set it is shown as a callout.
type RevenueModel struct {
	Type           string   `yaml:"type"`
	Components     []string `yaml:"components"`
	PricingWarning string   `yaml:"pricingWarning,omitempty"`
}

// Persona is a stakeholder profile.
type Persona struct {
	Name               string   `yaml:"name"`
	Profile            string   `yaml:"profile"`
	Needs              []string `yaml:"needs"`
	ValidationRequired string   `yaml:"validationRequired"`
}

// Relationship is a row of the ecosystem table. Criticality is a
// severity label; Status is free text.
type Relationship struct {
	Relationship string `yaml:"relationship"`
	Type         string `yaml:"type"`
	Criticality  string `yaml:"criticality"`
	Status       string `yaml:"status"`
}

// Recommendations groups the three time-boxed action lists.
type Recommendations struct {
	Immediate  []Action           `yaml:"immediate"`
	ShortTerm  []Action           `yaml:"shortTerm"`
	MediumTerm []MediumTermAction `yaml:"mediumTerm"`
}

// Action is an immediate or short-term priority.
type Action struct {
	Title      string   `yaml:"title"`
	Owner      string   `yaml:"owner"`
	Timeline   string   `yaml:"timeline"`
	ItemsLabel string   `yaml:"itemsLabel"`
	Items      []string `yaml:"items"`
}

// MediumTermAction is rendered condensed: title and one description.
type MediumTermAction struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Risk is a row of the risk mitigation table. Impact is a severity label.
type Risk struct {
	Risk     string `yaml:"risk"`
	Impact   string `yaml:"impact"`
	Strategy string `yaml:"strategy"`
}

// NextReview is the next checkpoint shown in the conclusion.
// SuccessCriteriaLabel defaults to "Success Criteria".
type NextReview struct {
	Timing               string   `yaml:"timing"`
	Deliverables         []string `yaml:"deliverables"`
	SuccessCriteriaLabel string   `yaml:"successCriteriaLabel,omitempty"`
	SuccessCriteria      []string `yaml:"successCriteria"`
}

// ParseContent decodes a YAML content record. Unknown keys are rejected.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yamlutil.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	return &c, nil
}

// LoadContent reads and decodes a YAML content record from path.
func LoadContent(path string) (*Content, error) {
	var c Content
	if err := yamlutil.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return &c, nil
}

// Validate runs presence checks. The first missing field, in document
// order, is reported as a *MissingFieldError.
func (c *Content) Validate() error {
	if c == nil {
		return ErrNilContent
	}

	var p presence

	p.str("projectName", c.ProjectName)
	p.str("reportTitle", c.ReportTitle)
	p.str("reportSubtitle", c.ReportSubtitle)
	p.str("projectTagline", c.ProjectTagline)
	p.str("subtitle", c.Subtitle)
	p.str("principalInvestigator", c.PrincipalInvestigator)
	p.str("institution", c.Institution)
	p.str("sprintDuration", c.SprintDuration)
	p.str("evaluationFramework", c.EvaluationFramework)
	p.str("preparedBy", c.PreparedBy)
	p.str("reportDate", c.ReportDate)
	p.str("author", c.Author)
	p.str("authorTitle", c.AuthorTitle)

	p.str("overallVianeoScore", c.OverallVianeoScore)
	p.str("marketMaturityScore", c.MarketMaturityScore)
	p.str("status", c.Status)

	p.list("dimensions", len(c.Dimensions))
	for i, d := range c.Dimensions {
		at := fmt.Sprintf("dimensions[%d].", i)
		p.str(at+"name", d.Name)
		p.str(at+"weight", d.Weight)
		p.str(at+"score", d.Score)
		p.str(at+"status", d.Status)
		p.str(at+"interpretation", d.Interpretation)
		p.str(at+"summary", d.Summary)
		p.items(at+"strengths", d.Strengths)
		p.items(at+"gaps", d.Gaps)
	}

	p.list("projectOverview", len(c.ProjectOverview))
	p.items("projectOverview", c.ProjectOverview)
	p.str("primaryRecommendation.statusText", c.PrimaryRecommendation.StatusText)
	p.str("primaryRecommendation.summary", c.PrimaryRecommendation.Summary)
	p.items("primaryRecommendation.validationGaps", c.PrimaryRecommendation.ValidationGaps)
	p.items("primaryRecommendation.immediateNextSteps", c.PrimaryRecommendation.ImmediateNextSteps)

	p.str("valueProposition", c.ValueProposition)
	p.items("coreDifferentiation", c.CoreDifferentiation)
	for i, s := range c.TargetSegments {
		at := fmt.Sprintf("targetSegments[%d].", i)
		p.str(at+"segment", s.Segment)
		p.str(at+"characteristics", s.Characteristics)
	}
	p.str("revenueModel.type", c.RevenueModel.Type)
	p.items("revenueModel.components", c.RevenueModel.Components)

	for i, ps := range c.Personas {
		at := fmt.Sprintf("personas[%d].", i)
		p.str(at+"name", ps.Name)
		p.str(at+"profile", ps.Profile)
		p.items(at+"needs", ps.Needs)
		p.str(at+"validationRequired", ps.ValidationRequired)
	}
	for i, r := range c.EcosystemRelationships {
		at := fmt.Sprintf("ecosystemRelationships[%d].", i)
		p.str(at+"relationship", r.Relationship)
		p.str(at+"type", r.Type)
		p.str(at+"criticality", r.Criticality)
		p.str(at+"status", r.Status)
	}

	p.actions("recommendations.immediate", c.Recommendations.Immediate)
	p.actions("recommendations.shortTerm", c.Recommendations.ShortTerm)
	for i, a := range c.Recommendations.MediumTerm {
		at := fmt.Sprintf("recommendations.mediumTerm[%d].", i)
		p.str(at+"title", a.Title)
		p.str(at+"description", a.Description)
	}
	for i, r := range c.RiskMitigation {
		at := fmt.Sprintf("riskMitigation[%d].", i)
		p.str(at+"risk", r.Risk)
		p.str(at+"impact", r.Impact)
		p.str(at+"strategy", r.Strategy)
	}

	p.list("conclusion", len(c.Conclusion))
	p.items("conclusion", c.Conclusion)
	p.str("nextReview.timing", c.NextReview.Timing)
	p.items("nextReview.deliverables", c.NextReview.Deliverables)
	p.items("nextReview.successCriteria", c.NextReview.SuccessCriteria)

	return p.err
}

// presence records the first missing field.
type presence struct {
	err error
}

func (p *presence) str(field, v string) {
	if p.err == nil && strings.TrimSpace(v) == "" {
		p.err = &MissingFieldError{Field: field}
	}
}

func (p *presence) list(field string, n int) {
	if p.err == nil && n == 0 {
		p.err = &MissingFieldError{Field: field}
	}
}

// items requires every entry of a list to be non-blank.
func (p *presence) items(field string, vs []string) {
	for i, v := range vs {
		p.str(fmt.Sprintf("%s[%d]", field, i), v)
	}
}

func (p *presence) actions(field string, as []Action) {
	for i, a := range as {
		at := fmt.Sprintf("%s[%d].", field, i)
		p.str(at+"title", a.Title)
		p.str(at+"owner", a.Owner)
		p.str(at+"timeline", a.Timeline)
		p.str(at+"itemsLabel", a.ItemsLabel)
		p.items(at+"items", a.Items)
	}
}
