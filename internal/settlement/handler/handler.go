package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"stagepass/internal/apierrors"
	"stagepass/internal/observability"
	"stagepass/internal/settlement/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const signatureHeader = "X-Razorpay-Signature"

// SettlementEngine defines the engine operations required by the handler.
type SettlementEngine interface {
	Settle(ctx context.Context, notification processor.PaymentNotification) (processor.SettlementResult, error)
	ResendDelivery(ctx context.Context, paymentID uuid.UUID) (processor.SettlementResult, error)
}

type Handler struct {
	engine        SettlementEngine
	webhookSecret string
	logger        *observability.Logger
}

func New(engine SettlementEngine, webhookSecret string, logger *observability.Logger) *Handler {
	return &Handler{
		engine:        engine,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleProviderWebhook ingests payment-link webhooks from the provider.
// The provider delivers at least once and retries on non-2xx, so every
// acknowledged path must be safe to replay. The signature is verified
// before the payload is trusted in any way.
func (h *Handler) HandleProviderWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}

	if !VerifySignature(payload, c.GetHeader(signatureHeader), h.webhookSecret) {
		h.logger.Warn(ctx, "webhook signature verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid webhook signature"})
		return
	}

	var envelope processor.WebhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		h.logger.InfoWithError(ctx, "malformed webhook payload", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "malformed webhook payload"})
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "webhook_event", Value: envelope.Event})

	// The provider must see 2xx for events this system does not act on,
	// otherwise it keeps redelivering them.
	if envelope.Event != processor.EventPaymentLinkPaid {
		h.logger.Info(ctx, "ignoring webhook event")
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	result, err := h.engine.Settle(ctx, envelope.ToNotification())
	if err != nil {
		apiErr := apierrors.MapError(err)
		h.logger.Error(ctx, "settlement failed", err)
		c.JSON(apiErr.StatusCode, gin.H{
			"success": false,
			"error":   apiErr.Message,
			"code":    apiErr.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"replayed":           result.Replayed,
		"email_sent":         result.EmailSent,
		"analytics_credited": result.AnalyticsCredited,
	})
}

// HandleResendDelivery re-runs delivery for a settled payment whose email
// never went out. Operator-facing.
func (h *Handler) HandleResendDelivery(c *gin.Context) {
	ctx := c.Request.Context()

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid payment id"))
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: paymentID.String()})

	result, err := h.engine.ResendDelivery(ctx, paymentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(ctx, "delivery resent")
	c.JSON(http.StatusOK, gin.H{
		"payment_id":         result.PaymentID,
		"email_sent":         result.EmailSent,
		"analytics_credited": result.AnalyticsCredited,
	})
}
