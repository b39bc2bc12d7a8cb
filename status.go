package sprintreport

// Dimension statuses.
const (
	StatusPass        = "PASS"
	StatusFail        = "FAIL"
	StatusConditional = "CONDITIONAL"
)

// Severity labels used for relationship criticality and risk impact.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Overall recommendations.
const (
	RecommendProceed            = "PROCEED"
	RecommendConditionalProceed = "CONDITIONAL PROCEED"
	RecommendDoNotProceed       = "DO NOT PROCEED"
)

// Accepted values per enumeration, in display order.
var (
	Statuses               = []string{StatusPass, StatusConditional, StatusFail}
	Severities             = []string{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
	OverallRecommendations = []string{RecommendProceed, RecommendConditionalProceed, RecommendDoNotProceed}
)

var statusColors = map[string]StyleToken{
	StatusPass:        SuccessGreen,
	StatusFail:        DangerRed,
	StatusConditional: WarningYellow,
}

var statusMarks = map[string]string{
	StatusPass:        "✓",
	StatusFail:        "✗",
	StatusConditional: "!",
}

var severityColors = map[string]StyleToken{
	SeverityCritical: DangerRed,
	SeverityHigh:     WarningYellow,
	SeverityMedium:   SuccessGreen,
	SeverityLow:      Gray,
}

var overallColors = map[string]StyleToken{
	RecommendProceed:            SuccessGreen,
	RecommendConditionalProceed: WarningYellow,
	RecommendDoNotProceed:       DangerRed,
}

// StatusColor maps a dimension status to its color token.
func StatusColor(status string) (StyleToken, error) {
	if tok, ok := statusColors[status]; ok {
		return tok, nil
	}
	return "", &UnknownStatusError{Value: status, Accepted: Statuses}
}

// SeverityColor maps a severity label to its color token.
func SeverityColor(severity string) (StyleToken, error) {
	if tok, ok := severityColors[severity]; ok {
		return tok, nil
	}
	return "", &UnknownStatusError{Value: severity, Accepted: Severities}
}

// OverallStatusColor maps the overall recommendation to its color token.
func OverallStatusColor(status string) (StyleToken, error) {
	if tok, ok := overallColors[status]; ok {
		return tok, nil
	}
	return "", &UnknownStatusError{Value: status, Accepted: OverallRecommendations}
}

// RelationshipStatusColor maps a free-text relationship status to a color.
// Statuses outside the known groups are shown in gray.
func RelationshipStatusColor(status string) StyleToken {
	switch status {
	case "Active", "Funded":
		return SuccessGreen
	case "Informal", "Not Engaged":
		return WarningYellow
	default:
		return Gray
	}
}

// statusLabel prefixes a dimension status with its mark, e.g. "✓ PASS".
func statusLabel(status string) string {
	return statusMarks[status] + " " + status
}
