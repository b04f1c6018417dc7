package eventstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/eventstore"
	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload(transactionID string) models.PurchaseRequest {
	return models.PurchaseRequest{
		TransactionID: transactionID,
		CorrelationID: "corr-1",
		Amount:        250.75,
		Currency:      "USD",
		Merchant:      "ACME Store",
	}
}

func TestAppend_AssignsContiguousVersions(t *testing.T) {
	store := eventstore.NewMemoryStore()
	ctx := context.Background()
	streamID := models.StreamID("tx-1")

	v1, err := store.Append(ctx, streamID, models.NewTransactionReceived(streamID, samplePayload("tx-1")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	v2, err := store.Append(ctx, streamID, models.NewFraudCheckStarted(streamID, "tx-1", time.Now().UTC()))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2)

	version, err := store.GetVersion(ctx, streamID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestGetVersion_AbsentStream(t *testing.T) {
	store := eventstore.NewMemoryStore()

	version, err := store.GetVersion(context.Background(), models.StreamID("missing"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestGetEvents_EmptyStreamReturnsNoEvents(t *testing.T) {
	store := eventstore.NewMemoryStore()

	events, err := store.GetEvents(context.Background(), models.StreamID("missing"))

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEvents_ReconstructsConcreteVariants(t *testing.T) {
	store := eventstore.NewMemoryStore()
	ctx := context.Background()
	streamID := models.StreamID("tx-2")
	now := time.Now().UTC()

	result := models.FraudAnalysisResult{Approved: true, RiskLevel: models.RiskLevelLow}

	_, err := store.Append(ctx, streamID, models.NewTransactionReceived(streamID, samplePayload("tx-2")))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamID, models.NewFraudCheckStarted(streamID, "tx-2", now))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamID, models.NewFraudCheckCompleted(streamID, "tx-2", result, 120*time.Millisecond))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamID, models.NewTransactionAuthorized(streamID, "tx-2", "AUTH-abc", now))
	require.NoError(t, err)

	events, err := store.GetEvents(ctx, streamID)
	require.NoError(t, err)
	require.Len(t, events, 4)

	received, ok := events[0].(*models.TransactionReceived)
	require.True(t, ok)
	assert.Equal(t, "tx-2", received.Payload.TransactionID)
	assert.Equal(t, int64(1), received.Meta().Version)

	_, ok = events[1].(*models.FraudCheckStarted)
	require.True(t, ok)

	completed, ok := events[2].(*models.FraudCheckCompleted)
	require.True(t, ok)
	assert.Equal(t, models.RiskLevelLow, completed.Result.RiskLevel)
	assert.Equal(t, 120*time.Millisecond, completed.Duration)

	authorized, ok := events[3].(*models.TransactionAuthorized)
	require.True(t, ok)
	assert.Equal(t, "AUTH-abc", authorized.AuthorizationCode)
	assert.Equal(t, int64(4), authorized.Meta().Version)
}

func TestGetEvents_ReadsAreIdempotent(t *testing.T) {
	store := eventstore.NewMemoryStore()
	ctx := context.Background()
	streamID := models.StreamID("tx-3")

	_, err := store.Append(ctx, streamID, models.NewTransactionReceived(streamID, samplePayload("tx-3")))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamID, models.NewTransactionDenied(streamID, "tx-3", "Card in blacklist", time.Now().UTC()))
	require.NoError(t, err)

	first, err := store.GetEvents(ctx, streamID)
	require.NoError(t, err)
	second, err := store.GetEvents(ctx, streamID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAppend_ConcurrentWriters_NoGapsNoDuplicates(t *testing.T) {
	store := eventstore.NewMemoryStore()
	ctx := context.Background()
	streamID := models.StreamID("tx-race")
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event := models.NewFraudCheckStarted(streamID, "tx-race", time.Now().UTC())
			for {
				_, err := store.Append(ctx, streamID, event)
				if err == nil {
					return
				}
				// Conflicts are the only retryable failure here.
				if !errors.Is(err, eventstore.ErrVersionConflict) {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	events, err := store.GetEvents(ctx, streamID)
	require.NoError(t, err)
	require.Len(t, events, writers)

	for i, event := range events {
		assert.Equal(t, int64(i+1), event.Meta().Version)
	}
}

func TestGetEventsByKind_FiltersKindAndWindow(t *testing.T) {
	store := eventstore.NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	streamA := models.StreamID("tx-a")
	streamB := models.StreamID("tx-b")

	_, err := store.Append(ctx, streamA, models.NewTransactionReceived(streamA, samplePayload("tx-a")))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamA, models.NewTransactionDenied(streamA, "tx-a", "High risk score", now))
	require.NoError(t, err)
	_, err = store.Append(ctx, streamB, models.NewTransactionDenied(streamB, "tx-b", "Country mismatch", now))
	require.NoError(t, err)

	denied, err := store.GetEventsByKind(ctx, models.KindTransactionDenied, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, denied, 2)

	none, err := store.GetEventsByKind(ctx, models.KindTransactionDenied, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}
