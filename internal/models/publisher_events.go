package models

import "time"

const (
	AuthorizeTransactionTopic       = "transactions.authorize"
	TransactionAuthorizedEventTopic = "transactions.authorized"
	TransactionDeniedEventTopic     = "transactions.denied"
	TransactionsDLQTopic            = "transactions.dlq"
)

// TransactionAuthorizedNotification is the external event published after an
// authorization has been durably recorded.
type TransactionAuthorizedNotification struct {
	TransactionID     string    `json:"transaction_id"`
	AuthorizationCode string    `json:"authorization_code"`
	AuthorizedAt      time.Time `json:"authorized_at"`
}

// TransactionDeniedNotification is the external event published after a denial
// has been durably recorded. On pipeline faults the reason is masked; the
// internal event log keeps the diagnostic detail.
type TransactionDeniedNotification struct {
	TransactionID string    `json:"transaction_id"`
	Reason        string    `json:"reason"`
	DeniedAt      time.Time `json:"denied_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
