package models

import (
	"fmt"
	"strings"
	"time"
)

// RiskSignals carries the pre-computed risk indicators attached to a purchase
// by the upstream scoring pipeline. All fields are optional hints; the fraud
// checks treat a missing record as a clean one.
type RiskSignals struct {
	Score               float64   `json:"score"`
	RiskLevel           string    `json:"risk_level"`
	TransactionVelocity int       `json:"transaction_velocity"`
	AvsMatch            string    `json:"avs_match"`
	CvcMatch            string    `json:"cvc_match"`
	SpendingPattern     string    `json:"spending_pattern"`
	IPCountry           string    `json:"ip_country"`
	CountryMatch        *bool     `json:"country_match"`
	FailedAttempts      int       `json:"failed_attempts"`
	IsBlacklisted       bool      `json:"is_blacklisted"`
	ScoreGeneratedAt    time.Time `json:"score_generated_at"`
}

// PurchaseRequest is the inbound card-purchase authorization command.
// It is immutable once received; the orchestrator owns it for the lifetime
// of a single authorization attempt.
type PurchaseRequest struct {
	TransactionID   string                 `json:"transaction_id"`
	CorrelationID   string                 `json:"correlation_id"`
	Amount          float64                `json:"amount"`
	Currency        string                 `json:"currency"`
	CardID          string                 `json:"card_id"`
	PanHash         string                 `json:"pan_hash"`
	Account         string                 `json:"account"`
	Merchant        string                 `json:"merchant"`
	MerchantCountry string                 `json:"merchant_country"`
	EntryMode       string                 `json:"entry_mode"`
	Mcc             string                 `json:"mcc"`
	AcquirerCode    string                 `json:"acquirer_code"`
	Nsu             string                 `json:"nsu"`
	ReferenceNumber string                 `json:"reference_number"`
	Timestamp       time.Time              `json:"timestamp"`
	CardExpiration  string                 `json:"card_expiration"`
	CardHolder      string                 `json:"card_holder"`
	Installments    *int                   `json:"installments,omitempty"`
	RiskScore       *RiskSignals           `json:"risk_score,omitempty"`
	AdditionalData  map[string]interface{} `json:"additional_data,omitempty"`
}

func (p *PurchaseRequest) Sanitize() {
	p.TransactionID = strings.TrimSpace(p.TransactionID)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.MerchantCountry = strings.ToUpper(strings.TrimSpace(p.MerchantCountry))
}

func (p *PurchaseRequest) Validate() error {
	if p.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if p.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}

// StreamID derives the event stream identifier for a transaction.
func StreamID(transactionID string) string {
	return "transaction-" + transactionID
}
