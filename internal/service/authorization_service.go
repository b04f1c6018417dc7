// Package service drives the per-transaction authorization protocol: append
// the audit events, run the fraud analysis, decide the outcome, measure the
// SLA and compensate on failure. Every durable append completes before the
// matching external notification is published.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-authorizer-service/internal/eventstore"
	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultSlaLimit is the maximum acceptable end-to-end processing time.
	// The orchestrator measures against it and records violations; it never
	// hard-aborts its own pipeline. The inbound cancellation guard lives at
	// the transport boundary.
	DefaultSlaLimit = 1500 * time.Millisecond

	defaultAppendAttempts = 3
	defaultAppendBackoff  = 20 * time.Millisecond
)

// EventStore is the slice of the store contract the orchestrator needs.
type EventStore interface {
	Append(ctx context.Context, streamID string, event models.DomainEvent) (int64, error)
	GetEvents(ctx context.Context, streamID string) ([]models.DomainEvent, error)
}

// FraudAnalyzer evaluates a purchase under the analysis deadline.
type FraudAnalyzer interface {
	Analyze(ctx context.Context, payload models.PurchaseRequest) (models.FraudAnalysisResult, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// MetricsRecorder receives authorization outcomes and SLA breaches.
type MetricsRecorder interface {
	RecordAuthorization(duration time.Duration, approved bool)
	RecordSlaViolation(transactionID string, duration time.Duration)
	GetSnapshot() models.MetricsSnapshot
}

// AuthorizationService sequences the authorization protocol for one
// transaction at a time. Concurrent transactions share nothing but the
// metrics recorder.
type AuthorizationService struct {
	Store     EventStore
	Analyzer  FraudAnalyzer
	Publisher Publisher
	Metrics   MetricsRecorder

	slaLimit       time.Duration
	appendAttempts int
	appendBackoff  time.Duration
}

type Option func(*AuthorizationService)

// WithSlaLimit overrides the SLA limit, used by tests.
func WithSlaLimit(limit time.Duration) Option {
	return func(s *AuthorizationService) {
		s.slaLimit = limit
	}
}

// WithAppendRetry overrides the bounded retry applied to version-conflicting
// appends.
func WithAppendRetry(attempts int, backoff time.Duration) Option {
	return func(s *AuthorizationService) {
		s.appendAttempts = attempts
		s.appendBackoff = backoff
	}
}

func NewAuthorizationService(store EventStore, analyzer FraudAnalyzer, publisher Publisher, metrics MetricsRecorder, opts ...Option) *AuthorizationService {
	s := &AuthorizationService{
		Store:          store,
		Analyzer:       analyzer,
		Publisher:      publisher,
		Metrics:        metrics,
		slaLimit:       DefaultSlaLimit,
		appendAttempts: defaultAppendAttempts,
		appendBackoff:  defaultAppendBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthorizeTransaction runs the full protocol for one purchase request. Any
// fault inside the pipeline is compensated with an internal TransactionDenied
// event carrying the diagnostic reason, a masked external denial, and the
// original error wrapped for the transport layer's retry/DLQ policy.
func (s *AuthorizationService) AuthorizeTransaction(ctx context.Context, req models.PurchaseRequest) (models.AuthorizationOutcome, error) {
	start := time.Now()
	streamID := models.StreamID(req.TransactionID)

	logrus.Infof("Processing transaction %s - Amount: %.2f %s", req.TransactionID, req.Amount, req.Currency)

	outcome, err := s.runPipeline(ctx, streamID, req, start)
	if err != nil {
		s.compensate(ctx, streamID, req.TransactionID, start, err)
		return models.AuthorizationOutcome{}, fmt.Errorf("error authorizing transaction %s: %w", req.TransactionID, err)
	}

	return outcome, nil
}

func (s *AuthorizationService) runPipeline(ctx context.Context, streamID string, req models.PurchaseRequest, start time.Time) (models.AuthorizationOutcome, error) {
	if err := s.appendWithRetry(ctx, streamID, models.NewTransactionReceived(streamID, req)); err != nil {
		return models.AuthorizationOutcome{}, err
	}

	if err := s.appendWithRetry(ctx, streamID, models.NewFraudCheckStarted(streamID, req.TransactionID, time.Now().UTC())); err != nil {
		return models.AuthorizationOutcome{}, err
	}

	result, err := s.Analyzer.Analyze(ctx, req)
	if err != nil {
		return models.AuthorizationOutcome{}, fmt.Errorf("fraud analysis aborted: %w", err)
	}

	if err := s.appendWithRetry(ctx, streamID, models.NewFraudCheckCompleted(streamID, req.TransactionID, result, time.Since(start))); err != nil {
		return models.AuthorizationOutcome{}, err
	}

	outcome := models.AuthorizationOutcome{
		TransactionID:  req.TransactionID,
		Approved:       result.Approved,
		Reason:         result.Reason,
		RiskLevel:      result.RiskLevel,
		TotalRiskScore: result.TotalRiskScore,
	}

	if result.Approved {
		authCode := generateAuthCode()
		authorizedAt := time.Now().UTC()

		if err := s.appendWithRetry(ctx, streamID, models.NewTransactionAuthorized(streamID, req.TransactionID, authCode, authorizedAt)); err != nil {
			return models.AuthorizationOutcome{}, err
		}

		notification := models.TransactionAuthorizedNotification{
			TransactionID:     req.TransactionID,
			AuthorizationCode: authCode,
			AuthorizedAt:      authorizedAt,
		}
		if err := s.Publisher.Publish(ctx, models.TransactionAuthorizedEventTopic, notification); err != nil {
			return models.AuthorizationOutcome{}, fmt.Errorf("error publishing authorized notification: %w", err)
		}

		outcome.AuthorizationCode = authCode
		logrus.Infof("Transaction %s authorized with code %s", req.TransactionID, authCode)
	} else {
		deniedAt := time.Now().UTC()

		if err := s.appendWithRetry(ctx, streamID, models.NewTransactionDenied(streamID, req.TransactionID, result.Reason, deniedAt)); err != nil {
			return models.AuthorizationOutcome{}, err
		}

		notification := models.TransactionDeniedNotification{
			TransactionID: req.TransactionID,
			Reason:        result.Reason,
			DeniedAt:      deniedAt,
		}
		if err := s.Publisher.Publish(ctx, models.TransactionDeniedEventTopic, notification); err != nil {
			return models.AuthorizationOutcome{}, fmt.Errorf("error publishing denied notification: %w", err)
		}

		logrus.Warnf("Transaction %s denied. Reason: %s", req.TransactionID, result.Reason)
	}

	elapsed := time.Since(start)
	outcome.Duration = elapsed

	if elapsed > s.slaLimit {
		if err := s.appendWithRetry(ctx, streamID, models.NewSlaViolation(streamID, req.TransactionID, elapsed, s.slaLimit)); err != nil {
			return models.AuthorizationOutcome{}, err
		}
		s.Metrics.RecordSlaViolation(req.TransactionID, elapsed)
		logrus.Warnf("SLA violation for transaction %s. Duration: %s", req.TransactionID, elapsed)
	}

	s.Metrics.RecordAuthorization(elapsed, result.Approved)

	return outcome, nil
}

// compensate records the true failure cause in the audit trail and emits a
// masked external denial. The diagnostic never leaves the internal log.
func (s *AuthorizationService) compensate(ctx context.Context, streamID, transactionID string, start time.Time, cause error) {
	logrus.Errorf("Error processing transaction %s: %s", transactionID, cause.Error())

	deniedAt := time.Now().UTC()
	denied := models.NewTransactionDenied(streamID, transactionID, fmt.Sprintf("System error: %v", cause), deniedAt)
	if err := s.appendWithRetry(ctx, streamID, denied); err != nil {
		logrus.Errorf("Error appending compensating denial for transaction %s: %s", transactionID, err.Error())
	}

	notification := models.TransactionDeniedNotification{
		TransactionID: transactionID,
		Reason:        "System unavailable",
		DeniedAt:      deniedAt,
	}
	if err := s.Publisher.Publish(ctx, models.TransactionDeniedEventTopic, notification); err != nil {
		logrus.Errorf("Error publishing masked denial for transaction %s: %s", transactionID, err.Error())
	}

	if elapsed := time.Since(start); elapsed > s.slaLimit {
		s.Metrics.RecordSlaViolation(transactionID, elapsed)
	}
}

// appendWithRetry wraps the store append in a bounded retry so expected
// optimistic-concurrency conflicts do not fail the pipeline outright.
func (s *AuthorizationService) appendWithRetry(ctx context.Context, streamID string, event models.DomainEvent) error {
	var lastErr error

	for attempt := 0; attempt < s.appendAttempts; attempt++ {
		_, err := s.Store.Append(ctx, streamID, event)
		if err == nil {
			return nil
		}
		if !errors.Is(err, eventstore.ErrVersionConflict) {
			return err
		}
		lastErr = err

		if attempt == s.appendAttempts-1 {
			break
		}

		delay := s.appendBackoff * time.Duration(1<<attempt)
		logrus.Warnf("Version conflict on stream %s, retry %d/%d in %s", streamID, attempt+1, s.appendAttempts, delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during append retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("append to stream %s failed after %d attempts: %w", streamID, s.appendAttempts, lastErr)
}

// GetTransactionEvents replays the audit trail of one transaction.
func (s *AuthorizationService) GetTransactionEvents(ctx context.Context, transactionID string) ([]models.DomainEvent, error) {
	return s.Store.GetEvents(ctx, models.StreamID(transactionID))
}

// GetMetricsSnapshot reports the collector's current state.
func (s *AuthorizationService) GetMetricsSnapshot() models.MetricsSnapshot {
	return s.Metrics.GetSnapshot()
}

func generateAuthCode() string {
	return "AUTH-" + uuid.NewString()
}
