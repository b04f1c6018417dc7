package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
	"github.com/sirupsen/logrus"
)

// AuthorizationService is the orchestrator surface the transport layer needs.
type AuthorizationService interface {
	AuthorizeTransaction(ctx context.Context, req models.PurchaseRequest) (models.AuthorizationOutcome, error)
	GetTransactionEvents(ctx context.Context, transactionID string) ([]models.DomainEvent, error)
	GetMetricsSnapshot() models.MetricsSnapshot
}

// AuthorizationHandler adapts inbound transports (HTTP and Kafka) to the
// orchestrator. The inbound cancellation guard is enforced here, at the
// transport boundary only; the orchestrator itself never hard-aborts.
type AuthorizationHandler struct {
	Service      AuthorizationService
	InboundGuard time.Duration
}

func NewAuthorizationHandler(s AuthorizationService, inboundGuard time.Duration) *AuthorizationHandler {
	return &AuthorizationHandler{
		Service:      s,
		InboundGuard: inboundGuard,
	}
}

// POST /authorizations
func (h *AuthorizationHandler) AuthorizeTransaction(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Sanitize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.InboundGuard)
	defer cancel()

	outcome, err := h.Service.AuthorizeTransaction(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "authorization timed out"})
			return
		}
		// Diagnostic detail stays in the internal log and audit trail.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "system unavailable"})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// GET /authorizations/metrics
func (h *AuthorizationHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.GetMetricsSnapshot())
}

// GET /authorizations/events/:transactionId
func (h *AuthorizationHandler) GetTransactionEvents(c *gin.Context) {
	transactionID := c.Param("transactionId")

	events, err := h.Service.GetTransactionEvents(c.Request.Context(), transactionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// HandleEvents processes queue-delivered authorization commands. Returning an
// error hands the retry/DLQ decision back to the consumer. Redelivery is
// tolerated but not deduplicated.
func (h *AuthorizationHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.AuthorizeTransactionTopic:
		var req models.PurchaseRequest
		if err := json.Unmarshal(value, &req); err != nil {
			logrus.Errorf("Error unmarshalling PurchaseRequest: %s", err.Error())
			return err
		}

		req.Sanitize()
		if err := req.Validate(); err != nil {
			logrus.Errorf("Invalid purchase request: %s", err.Error())
			return err
		}

		guardCtx, cancel := context.WithTimeout(ctx, h.InboundGuard)
		defer cancel()

		if _, err := h.Service.AuthorizeTransaction(guardCtx, req); err != nil {
			logrus.Errorf("Error authorizing transaction %s: %s", req.TransactionID, err.Error())
			return err
		}

		logrus.Info("Authorization command handled successfully")
	default:
		logrus.Warnf("Unknown topic: %s", topic)
	}

	return nil
}
