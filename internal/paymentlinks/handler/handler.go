package handler

import (
	"net/http"

	"stagepass/internal/apierrors"
	"stagepass/internal/observability"
	"stagepass/internal/paymentlinks/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(linkProcessor *processor.Processor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: linkProcessor,
		logger:    logger,
	}
}

// CreatePaymentLinkRequest is the storefront's checkout request.
type CreatePaymentLinkRequest struct {
	ProductID     string `json:"product_id" binding:"required,uuid"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CallbackURL   string `json:"callback_url" binding:"omitempty,url"`
}

// HandleCreatePaymentLink issues a hosted payment link for a product.
func (h *Handler) HandleCreatePaymentLink(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	created, err := h.processor.CreatePaymentLink(ctx, processor.CreatePaymentLinkParams{
		ProductID:     uuid.MustParse(req.ProductID),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CallbackURL:   req.CallbackURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(ctx, "payment link created for storefront")
	c.JSON(http.StatusCreated, created)
}
