package processor

import (
	"context"
	"stagepass/internal/store"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by the analytics aggregator.
type AnalyticsStore interface {
	GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (store.Payment, error)
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	CreditSale(ctx context.Context, params store.CreditSaleParams) (store.SalesAnalyticsRecord, bool, error)
	GetSalesAnalytics(ctx context.Context, eventID, productID uuid.UUID) (store.SalesAnalyticsRecord, error)
	ListSalesAnalyticsByEvent(ctx context.Context, eventID uuid.UUID) ([]store.SalesAnalyticsRecord, error)
}
