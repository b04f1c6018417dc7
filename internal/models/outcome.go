package models

import "time"

// AuthorizationOutcome is the caller-facing result of one authorization run.
type AuthorizationOutcome struct {
	TransactionID     string        `json:"transaction_id"`
	Approved          bool          `json:"approved"`
	AuthorizationCode string        `json:"authorization_code,omitempty"`
	Reason            string        `json:"reason,omitempty"`
	RiskLevel         RiskLevel     `json:"risk_level"`
	TotalRiskScore    int           `json:"total_risk_score"`
	Duration          time.Duration `json:"duration"`
}
