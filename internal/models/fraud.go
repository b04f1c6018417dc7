package models

// RiskLevel classifies the aggregate risk of a transaction.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// CheckResult is the outcome of a single fraud check. A passed check may still
// carry a nonzero weight when it represents partial risk.
type CheckResult struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
	Weight int    `json:"weight"`
}

// CleanCheck is the zero-weight passing result used by checks that found
// nothing of note.
func CleanCheck() CheckResult {
	return CheckResult{Passed: true}
}

// FraudAnalysisResult is the aggregated verdict over all fraud checks.
type FraudAnalysisResult struct {
	Approved       bool      `json:"approved"`
	Reason         string    `json:"reason,omitempty"`
	RiskLevel      RiskLevel `json:"risk_level"`
	TotalRiskScore int       `json:"total_risk_score"`
}
