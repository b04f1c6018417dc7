package models

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies one of the fixed domain event variants. The vocabulary
// is closed; the event store rejects any kind outside this set on read.
type EventKind string

const (
	KindTransactionReceived   EventKind = "transaction_received"
	KindFraudCheckStarted     EventKind = "fraud_check_started"
	KindFraudCheckCompleted   EventKind = "fraud_check_completed"
	KindTransactionAuthorized EventKind = "transaction_authorized"
	KindTransactionDenied     EventKind = "transaction_denied"
	KindSlaViolation          EventKind = "sla_violation"
)

// EventMeta is the envelope shared by every domain event. Version is assigned
// by the event store on append, never by the caller.
type EventMeta struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	AggregateID string    `json:"aggregate_id"`
	Version     int64     `json:"version"`
}

// DomainEvent is the closed sum of transaction state transitions. Events are
// immutable facts once appended to a stream.
type DomainEvent interface {
	Kind() EventKind
	Meta() *EventMeta
}

func newEventMeta(aggregateID string) EventMeta {
	return EventMeta{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		AggregateID: aggregateID,
	}
}

type TransactionReceived struct {
	EventMeta
	Payload PurchaseRequest `json:"payload"`
}

func NewTransactionReceived(aggregateID string, payload PurchaseRequest) *TransactionReceived {
	return &TransactionReceived{EventMeta: newEventMeta(aggregateID), Payload: payload}
}

func (e *TransactionReceived) Kind() EventKind { return KindTransactionReceived }
func (e *TransactionReceived) Meta() *EventMeta { return &e.EventMeta }

type FraudCheckStarted struct {
	EventMeta
	TransactionID string    `json:"transaction_id"`
	StartedAt     time.Time `json:"started_at"`
}

func NewFraudCheckStarted(aggregateID, transactionID string, startedAt time.Time) *FraudCheckStarted {
	return &FraudCheckStarted{
		EventMeta:     newEventMeta(aggregateID),
		TransactionID: transactionID,
		StartedAt:     startedAt,
	}
}

func (e *FraudCheckStarted) Kind() EventKind { return KindFraudCheckStarted }
func (e *FraudCheckStarted) Meta() *EventMeta { return &e.EventMeta }

type FraudCheckCompleted struct {
	EventMeta
	TransactionID string              `json:"transaction_id"`
	Result        FraudAnalysisResult `json:"result"`
	Duration      time.Duration       `json:"duration"`
}

func NewFraudCheckCompleted(aggregateID, transactionID string, result FraudAnalysisResult, duration time.Duration) *FraudCheckCompleted {
	return &FraudCheckCompleted{
		EventMeta:     newEventMeta(aggregateID),
		TransactionID: transactionID,
		Result:        result,
		Duration:      duration,
	}
}

func (e *FraudCheckCompleted) Kind() EventKind { return KindFraudCheckCompleted }
func (e *FraudCheckCompleted) Meta() *EventMeta { return &e.EventMeta }

type TransactionAuthorized struct {
	EventMeta
	TransactionID     string    `json:"transaction_id"`
	AuthorizationCode string    `json:"authorization_code"`
	AuthorizedAt      time.Time `json:"authorized_at"`
}

func NewTransactionAuthorized(aggregateID, transactionID, authorizationCode string, authorizedAt time.Time) *TransactionAuthorized {
	return &TransactionAuthorized{
		EventMeta:         newEventMeta(aggregateID),
		TransactionID:     transactionID,
		AuthorizationCode: authorizationCode,
		AuthorizedAt:      authorizedAt,
	}
}

func (e *TransactionAuthorized) Kind() EventKind { return KindTransactionAuthorized }
func (e *TransactionAuthorized) Meta() *EventMeta { return &e.EventMeta }

type TransactionDenied struct {
	EventMeta
	TransactionID string    `json:"transaction_id"`
	Reason        string    `json:"reason"`
	DeniedAt      time.Time `json:"denied_at"`
}

func NewTransactionDenied(aggregateID, transactionID, reason string, deniedAt time.Time) *TransactionDenied {
	return &TransactionDenied{
		EventMeta:     newEventMeta(aggregateID),
		TransactionID: transactionID,
		Reason:        reason,
		DeniedAt:      deniedAt,
	}
}

func (e *TransactionDenied) Kind() EventKind { return KindTransactionDenied }
func (e *TransactionDenied) Meta() *EventMeta { return &e.EventMeta }

type SlaViolation struct {
	EventMeta
	TransactionID  string        `json:"transaction_id"`
	ActualDuration time.Duration `json:"actual_duration"`
	SlaLimit       time.Duration `json:"sla_limit"`
}

func NewSlaViolation(aggregateID, transactionID string, actualDuration, slaLimit time.Duration) *SlaViolation {
	return &SlaViolation{
		EventMeta:      newEventMeta(aggregateID),
		TransactionID:  transactionID,
		ActualDuration: actualDuration,
		SlaLimit:       slaLimit,
	}
}

func (e *SlaViolation) Kind() EventKind { return KindSlaViolation }
func (e *SlaViolation) Meta() *EventMeta { return &e.EventMeta }
