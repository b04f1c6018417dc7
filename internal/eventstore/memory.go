package eventstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
)

// storedRecord is the persisted shape of one event, mirroring the columns of
// the Postgres store so both implementations exercise the same decode path.
type storedRecord struct {
	streamID    string
	version     int64
	eventID     string
	kind        models.EventKind
	data        []byte
	occurredAt  time.Time
	aggregateID string
}

// MemoryStore is an in-process Store used by tests and DB-less runs. It keeps
// the optimistic-concurrency window of the durable store: the version read and
// the conditional insert are separate critical sections, so concurrent writers
// to one stream race and the losers observe ErrVersionConflict.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[string]map[int64]storedRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		streams: make(map[string]map[int64]storedRecord),
	}
}

func (s *MemoryStore) Append(ctx context.Context, streamID string, event models.DomainEvent) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	current, err := s.GetVersion(ctx, streamID)
	if err != nil {
		return 0, err
	}
	next := current + 1

	meta := event.Meta()
	meta.Version = next
	if meta.AggregateID == "" {
		meta.AggregateID = streamID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("error encoding %s event: %w", event.Kind(), err)
	}

	record := storedRecord{
		streamID:    streamID,
		version:     next,
		eventID:     meta.EventID,
		kind:        event.Kind(),
		data:        data,
		occurredAt:  meta.OccurredAt,
		aggregateID: meta.AggregateID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream, ok := s.streams[streamID]
	if !ok {
		stream = make(map[int64]storedRecord)
		s.streams[streamID] = stream
	}
	if _, taken := stream[next]; taken {
		return 0, fmt.Errorf("appending version %d to stream %s: %w", next, streamID, ErrVersionConflict)
	}
	stream[next] = record

	return next, nil
}

func (s *MemoryStore) GetEvents(ctx context.Context, streamID string) ([]models.DomainEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	records := make([]storedRecord, 0, len(s.streams[streamID]))
	for version := int64(1); version <= int64(len(s.streams[streamID])); version++ {
		records = append(records, s.streams[streamID][version])
	}
	s.mu.RUnlock()

	return decodeRecords(records)
}

func (s *MemoryStore) GetEventsByKind(ctx context.Context, kind models.EventKind, from, to time.Time) ([]models.DomainEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var records []storedRecord
	for _, stream := range s.streams {
		for _, record := range stream {
			if record.kind != kind {
				continue
			}
			if record.occurredAt.Before(from) || record.occurredAt.After(to) {
				continue
			}
			records = append(records, record)
		}
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].occurredAt.Before(records[j].occurredAt)
	})

	return decodeRecords(records)
}

func (s *MemoryStore) GetVersion(ctx context.Context, streamID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.streams[streamID])), nil
}

func decodeRecords(records []storedRecord) ([]models.DomainEvent, error) {
	events := make([]models.DomainEvent, 0, len(records))
	for _, record := range records {
		event, err := decodeEvent(record.kind, record.data)
		if err != nil {
			return nil, err
		}
		meta := event.Meta()
		meta.Version = record.version
		meta.AggregateID = record.aggregateID
		events = append(events, event)
	}
	return events, nil
}
