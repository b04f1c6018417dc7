package models

import "time"

// SlaViolationRecord captures one SLA breach for the observability report.
type SlaViolationRecord struct {
	TransactionID string        `json:"transaction_id"`
	Duration      time.Duration `json:"duration"`
	Timestamp     time.Time     `json:"timestamp"`
}

// MetricsSnapshot is a point-in-time view of the collector's state.
type MetricsSnapshot struct {
	TotalRequests     int64                `json:"total_requests"`
	ApprovedCount     int64                `json:"approved_count"`
	DeniedCount       int64                `json:"denied_count"`
	SlaViolations     int64                `json:"sla_violations"`
	ApprovalRate      float64              `json:"approval_rate"`
	SlaComplianceRate float64              `json:"sla_compliance_rate"`
	AverageDuration   time.Duration        `json:"average_duration"`
	P95Duration       time.Duration        `json:"p95_duration"`
	P99Duration       time.Duration        `json:"p99_duration"`
	RecentViolations  []SlaViolationRecord `json:"recent_violations"`
}
