package api

import (
	"net/http"

	analyticsHandler "stagepass/internal/analytics/handler"
	paymentlinksHandler "stagepass/internal/paymentlinks/handler"
	settlementHandler "stagepass/internal/settlement/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	settlementHandler   *settlementHandler.Handler
	paymentLinksHandler *paymentlinksHandler.Handler
	analyticsHandler    *analyticsHandler.Handler
}

func New(router *gin.RouterGroup, settlement *settlementHandler.Handler, paymentLinks *paymentlinksHandler.Handler, analytics *analyticsHandler.Handler) API {
	return API{
		router:              router,
		settlementHandler:   settlement,
		paymentLinksHandler: paymentLinks,
		analyticsHandler:    analytics,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/payments/webhook", a.settlementHandler.HandleProviderWebhook)
		apiGroup.POST("/payments/:id/resend", a.settlementHandler.HandleResendDelivery)
		apiGroup.POST("/payment-links", a.paymentLinksHandler.HandleCreatePaymentLink)

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.GET("/events/:eventID", a.analyticsHandler.HandleGetEventAnalytics)
		analyticsGroup.GET("/events/:eventID/products/:productID", a.analyticsHandler.HandleGetProductAnalytics)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
