package eventstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"gorm.io/gorm"
)

// EventRecord is the persisted event row. The composite primary key
// (stream_id, version) makes the insert a conditional write: a second writer
// proposing the same version hits the key constraint instead of overwriting.
type EventRecord struct {
	StreamID    string    `gorm:"column:stream_id;primaryKey"`
	Version     int64     `gorm:"column:version;primaryKey;autoIncrement:false"`
	EventID     string    `gorm:"column:event_id"`
	EventKind   string    `gorm:"column:event_kind;index:idx_event_kind_occurred"`
	EventData   []byte    `gorm:"column:event_data;type:jsonb"`
	OccurredAt  time.Time `gorm:"column:occurred_at;index:idx_event_kind_occurred"`
	AggregateID string    `gorm:"column:aggregate_id"`
}

func (EventRecord) TableName() string {
	return "event_store"
}

// PostgresStore is the durable Store implementation. The database connection
// must be opened with TranslateError so key collisions surface as
// gorm.ErrDuplicatedKey.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, streamID string, event models.DomainEvent) (int64, error) {
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

	record, err := toRecord(streamID, next, event)
	if err != nil {
		return 0, err
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("appending version %d to stream %s: %w", next, streamID, ErrVersionConflict)
		}
		return 0, fmt.Errorf("error appending event to stream %s: %w", streamID, err)
	}

	return next, nil
}

func (s *PostgresStore) GetEvents(ctx context.Context, streamID string) ([]models.DomainEvent, error) {
	var records []EventRecord
	err := s.db.WithContext(ctx).
		Where("stream_id = ?", streamID).
		Order("version asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error reading stream %s: %w", streamID, err)
	}

	return decodeEventRecords(records)
}

func (s *PostgresStore) GetEventsByKind(ctx context.Context, kind models.EventKind, from, to time.Time) ([]models.DomainEvent, error) {
	var records []EventRecord
	err := s.db.WithContext(ctx).
		Where("event_kind = ? AND occurred_at BETWEEN ? AND ?", string(kind), from, to).
		Order("occurred_at asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error reading events of kind %s: %w", kind, err)
	}

	return decodeEventRecords(records)
}

func (s *PostgresStore) GetVersion(ctx context.Context, streamID string) (int64, error) {
	var version int64
	err := s.db.WithContext(ctx).
		Model(&EventRecord{}).
		Where("stream_id = ?", streamID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("error reading version of stream %s: %w", streamID, err)
	}
	return version, nil
}

func toRecord(streamID string, version int64, event models.DomainEvent) (*EventRecord, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s event: %w", event.Kind(), err)
	}

	meta := event.Meta()
	return &EventRecord{
		StreamID:    streamID,
		Version:     version,
		EventID:     meta.EventID,
		EventKind:   string(event.Kind()),
		EventData:   data,
		OccurredAt:  meta.OccurredAt,
		AggregateID: meta.AggregateID,
	}, nil
}

func decodeEventRecords(records []EventRecord) ([]models.DomainEvent, error) {
	events := make([]models.DomainEvent, 0, len(records))
	for _, record := range records {
		event, err := decodeEvent(models.EventKind(record.EventKind), record.EventData)
		if err != nil {
			return nil, err
		}
		meta := event.Meta()
		meta.Version = record.Version
		meta.AggregateID = record.AggregateID
		events = append(events, event)
	}
	return events, nil
}
