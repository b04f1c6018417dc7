package eventstore

import (
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
)

// eventFactories maps each event kind to a constructor for its concrete
// variant. The table is fixed at compile time; there is no runtime type
// scanning and no way to register kinds dynamically.
var eventFactories = map[models.EventKind]func() models.DomainEvent{
	models.KindTransactionReceived:   func() models.DomainEvent { return &models.TransactionReceived{} },
	models.KindFraudCheckStarted:     func() models.DomainEvent { return &models.FraudCheckStarted{} },
	models.KindFraudCheckCompleted:   func() models.DomainEvent { return &models.FraudCheckCompleted{} },
	models.KindTransactionAuthorized: func() models.DomainEvent { return &models.TransactionAuthorized{} },
	models.KindTransactionDenied:     func() models.DomainEvent { return &models.TransactionDenied{} },
	models.KindSlaViolation:          func() models.DomainEvent { return &models.SlaViolation{} },
}

// decodeEvent reconstructs a concrete event variant from its recorded kind and
// serialized payload.
func decodeEvent(kind models.EventKind, data []byte) (models.DomainEvent, error) {
	factory, ok := eventFactories[kind]
	if !ok {
		return nil, &UnknownEventKindError{Kind: kind}
	}

	event := factory()
	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("error decoding %s event: %w", kind, err)
	}
	return event, nil
}
