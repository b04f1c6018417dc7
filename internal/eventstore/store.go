// Package eventstore provides the append-only, optimistically concurrent
// event log backing the transaction audit trail. Streams hold contiguous
// versions starting at 1; appends race on a (stream, version) conditional
// write and lose with ErrVersionConflict, which callers must treat as
// retryable.
package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
)

// ErrVersionConflict reports that another writer already claimed the version
// this append computed. The conflict is expected under concurrent writers and
// must be retried with a fresh version read, not treated as fatal.
var ErrVersionConflict = errors.New("event version already exists for stream")

// UnknownEventKindError reports a stored event whose kind is outside the fixed
// vocabulary. Reads failing this way are corrupt data, never retried.
type UnknownEventKindError struct {
	Kind models.EventKind
}

func (e *UnknownEventKindError) Error() string {
	return fmt.Sprintf("unknown event kind: %s", e.Kind)
}

// Store is the event log contract shared by the in-memory and Postgres
// implementations.
type Store interface {
	// Append writes event as the next version of the stream and returns the
	// version it was stored under. Fails with ErrVersionConflict when the
	// computed version was taken by a concurrent writer.
	Append(ctx context.Context, streamID string, event models.DomainEvent) (int64, error)
	// GetEvents returns the stream's events in version order, 1..N. A stream
	// that has never been written yields an empty slice.
	GetEvents(ctx context.Context, streamID string) ([]models.DomainEvent, error)
	// GetEventsByKind returns all events of one kind that occurred inside
	// [from, to], across streams.
	GetEventsByKind(ctx context.Context, kind models.EventKind, from, to time.Time) ([]models.DomainEvent, error)
	// GetVersion returns the stream's latest version, 0 if the stream is absent.
	GetVersion(ctx context.Context, streamID string) (int64, error)
}
