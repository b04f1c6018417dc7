package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/eventstore"
	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"github.com/jeffleon2/draftea-authorizer-service/internal/service"
	"github.com/jeffleon2/draftea-authorizer-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func purchaseRequest() models.PurchaseRequest {
	return models.PurchaseRequest{
		TransactionID: "tx-123",
		CorrelationID: "corr-456",
		Amount:        99.90,
		Currency:      "USD",
		Merchant:      "ACME Store",
	}
}

func approvedResult() models.FraudAnalysisResult {
	return models.FraudAnalysisResult{
		Approved:       true,
		RiskLevel:      models.RiskLevelLow,
		TotalRiskScore: 0,
	}
}

func TestAuthorizeTransaction_HappyPath(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(mockStore, mockAnalyzer, mockPublisher, mockMetrics)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)

	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(1, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckStarted")).
		Return(2, nil).
		Once()
	mockAnalyzer.EXPECT().
		Analyze(ctx, req).
		Return(approvedResult(), nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckCompleted")).
		Return(3, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionAuthorized")).
		Return(4, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionAuthorizedEventTopic, mock.MatchedBy(func(n models.TransactionAuthorizedNotification) bool {
			return n.TransactionID == req.TransactionID && n.AuthorizationCode != ""
		})).
		Return(nil).
		Once()
	mockMetrics.EXPECT().
		RecordAuthorization(mock.AnythingOfType("time.Duration"), true).
		Return().
		Once()

	outcome, err := authService.AuthorizeTransaction(ctx, req)

	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	assert.NotEmpty(t, outcome.AuthorizationCode)
	assert.Equal(t, req.TransactionID, outcome.TransactionID)
	mockStore.AssertNumberOfCalls(t, "Append", 4)
	mockMetrics.AssertNotCalled(t, "RecordSlaViolation", mock.Anything, mock.Anything)
}

func TestAuthorizeTransaction_Denied(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(mockStore, mockAnalyzer, mockPublisher, mockMetrics)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)

	deniedResult := models.FraudAnalysisResult{
		Approved:       false,
		Reason:         "Card in blacklist",
		RiskLevel:      models.RiskLevelCritical,
		TotalRiskScore: 1000,
	}

	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(1, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckStarted")).
		Return(2, nil).
		Once()
	mockAnalyzer.EXPECT().
		Analyze(ctx, req).
		Return(deniedResult, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckCompleted")).
		Return(3, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.MatchedBy(func(e *models.TransactionDenied) bool {
			return e.Reason == "Card in blacklist"
		})).
		Return(4, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionDeniedEventTopic, mock.MatchedBy(func(n models.TransactionDeniedNotification) bool {
			return n.TransactionID == req.TransactionID && n.Reason == "Card in blacklist"
		})).
		Return(nil).
		Once()
	mockMetrics.EXPECT().
		RecordAuthorization(mock.AnythingOfType("time.Duration"), false).
		Return().
		Once()

	outcome, err := authService.AuthorizeTransaction(ctx, req)

	require.NoError(t, err)
	assert.False(t, outcome.Approved)
	assert.Empty(t, outcome.AuthorizationCode)
	assert.Equal(t, models.RiskLevelCritical, outcome.RiskLevel)
}

func TestAuthorizeTransaction_StoreFault_CompensatesAndPropagates(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(mockStore, mockAnalyzer, mockPublisher, mockMetrics)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)
	storeErr := errors.New("dynamo is down")

	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(1, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckStarted")).
		Return(0, storeErr).
		Once()
	// The compensating event keeps the diagnostic; the notification masks it.
	mockStore.EXPECT().
		Append(ctx, streamID, mock.MatchedBy(func(e *models.TransactionDenied) bool {
			return e.Reason == fmt.Sprintf("System error: %v", storeErr)
		})).
		Return(2, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionDeniedEventTopic, mock.MatchedBy(func(n models.TransactionDeniedNotification) bool {
			return n.Reason == "System unavailable"
		})).
		Return(nil).
		Once()

	_, err := authService.AuthorizeTransaction(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	mockAnalyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
	mockMetrics.AssertNotCalled(t, "RecordAuthorization", mock.Anything, mock.Anything)
}

func TestAuthorizeTransaction_VersionConflict_RetriesAppend(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(
		mockStore, mockAnalyzer, mockPublisher, mockMetrics,
		service.WithAppendRetry(3, time.Millisecond),
	)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)

	conflict := fmt.Errorf("appending version 1: %w", eventstore.ErrVersionConflict)

	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(0, conflict).
		Twice()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(1, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckStarted")).
		Return(2, nil).
		Once()
	mockAnalyzer.EXPECT().
		Analyze(ctx, req).
		Return(approvedResult(), nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.FraudCheckCompleted")).
		Return(3, nil).
		Once()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionAuthorized")).
		Return(4, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionAuthorizedEventTopic, mock.Anything).
		Return(nil).
		Once()
	mockMetrics.EXPECT().
		RecordAuthorization(mock.AnythingOfType("time.Duration"), true).
		Return().
		Once()

	outcome, err := authService.AuthorizeTransaction(ctx, req)

	require.NoError(t, err)
	assert.True(t, outcome.Approved)
}

func TestAuthorizeTransaction_VersionConflictExhausted_Compensates(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(
		mockStore, mockAnalyzer, mockPublisher, mockMetrics,
		service.WithAppendRetry(2, time.Millisecond),
	)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)

	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionReceived")).
		Return(0, eventstore.ErrVersionConflict).
		Twice()
	mockStore.EXPECT().
		Append(ctx, streamID, mock.AnythingOfType("*models.TransactionDenied")).
		Return(1, nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionDeniedEventTopic, mock.MatchedBy(func(n models.TransactionDeniedNotification) bool {
			return n.Reason == "System unavailable"
		})).
		Return(nil).
		Once()

	_, err := authService.AuthorizeTransaction(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, eventstore.ErrVersionConflict)
}

func TestAuthorizeTransaction_SlaViolation_RecordedAndAppended(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(
		mockStore, mockAnalyzer, mockPublisher, mockMetrics,
		service.WithSlaLimit(10*time.Millisecond),
	)

	ctx := context.Background()
	req := purchaseRequest()
	streamID := models.StreamID(req.TransactionID)

	mockStore.EXPECT().
		Append(ctx, streamID, mock.Anything).
		Return(1, nil).
		Times(5)
	mockAnalyzer.EXPECT().
		Analyze(ctx, req).
		RunAndReturn(func(ctx context.Context, payload models.PurchaseRequest) (models.FraudAnalysisResult, error) {
			time.Sleep(20 * time.Millisecond)
			return approvedResult(), nil
		}).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.TransactionAuthorizedEventTopic, mock.Anything).
		Return(nil).
		Once()
	mockMetrics.EXPECT().
		RecordSlaViolation(req.TransactionID, mock.AnythingOfType("time.Duration")).
		Return().
		Once()
	mockMetrics.EXPECT().
		RecordAuthorization(mock.AnythingOfType("time.Duration"), true).
		Return().
		Once()

	outcome, err := authService.AuthorizeTransaction(ctx, req)

	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	assert.Greater(t, outcome.Duration, 10*time.Millisecond)
}

func TestGetTransactionEvents_DerivesStreamID(t *testing.T) {
	mockStore := mocks.NewMockEventStore(t)
	mockAnalyzer := mocks.NewMockFraudAnalyzer(t)
	mockPublisher := mocks.NewMockPublisher(t)
	mockMetrics := mocks.NewMockMetricsRecorder(t)
	authService := service.NewAuthorizationService(mockStore, mockAnalyzer, mockPublisher, mockMetrics)

	ctx := context.Background()
	events := []models.DomainEvent{
		models.NewTransactionReceived("transaction-tx-9", purchaseRequest()),
	}

	mockStore.EXPECT().
		GetEvents(ctx, "transaction-tx-9").
		Return(events, nil).
		Once()

	got, err := authService.GetTransactionEvents(ctx, "tx-9")

	require.NoError(t, err)
	assert.Equal(t, events, got)
}
