package handler

import (
	"stagepass/internal/analytics/processor"
	"stagepass/internal/apierrors"
	"stagepass/internal/observability"

	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the reporting read surface over sales analytics.
type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(analyticsProcessor *processor.Processor, logger *observability.Logger) *Handler {
	return &Handler{
		processor: analyticsProcessor,
		logger:    logger,
	}
}

// HandleGetEventAnalytics returns every product rollup for an event.
func (h *Handler) HandleGetEventAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, err := uuid.Parse(c.Param("eventID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid event id"))
		return
	}

	records, err := h.processor.GetEventAnalytics(ctx, eventID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "products": records})
}

// HandleGetProductAnalytics returns the rollup for one product of an event.
func (h *Handler) HandleGetProductAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, err := uuid.Parse(c.Param("eventID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid event id"))
		return
	}
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid product id"))
		return
	}

	record, err := h.processor.GetProductAnalytics(ctx, eventID, productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
