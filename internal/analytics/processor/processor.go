package processor

import (
	"context"
	"errors"
	"fmt"
	"stagepass/internal/observability"
	"stagepass/internal/store"

	"github.com/google/uuid"
)

var ErrPaymentNotCompleted = errors.New("payment is not completed")

// Processor maintains the per-(event, product) sales rollup. Crediting is
// idempotent per payment id, so the settlement engine and the reconciler
// can both call it without double-counting.
type Processor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(analyticsStore AnalyticsStore, logger *observability.Logger) *Processor {
	return &Processor{
		store:  analyticsStore,
		logger: logger,
	}
}

// CreditSale folds a completed payment into its product's sales rollup.
// Returns credited=false when the payment was already credited.
func (p *Processor) CreditSale(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: paymentID.String()})

	payment, err := p.store.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to load payment for credit: %w", err)
	}
	if payment.Status != store.PaymentStatusCompleted {
		return false, ErrPaymentNotCompleted
	}

	product, err := p.store.GetProductByID(ctx, payment.ProductID)
	if err != nil {
		return false, fmt.Errorf("failed to load product for credit: %w", err)
	}

	eventID := product.EventID
	if payment.EventID != nil {
		eventID = *payment.EventID
	}

	entry := store.CustomerEntry{
		CustomerName:  payment.CustomerName,
		CustomerEmail: payment.CustomerEmail,
		PurchaseDate:  payment.UpdatedAt,
		Amount:        payment.Amount,
		PaymentID:     payment.ID,
	}

	_, credited, err := p.store.CreditSale(ctx, store.CreditSaleParams{
		EventID:     eventID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Entry:       entry,
	})
	if err != nil {
		return false, fmt.Errorf("failed to credit sale: %w", err)
	}

	if credited {
		p.logger.Info(ctx, "sale credited to analytics")
	} else {
		p.logger.Info(ctx, "sale already credited, skipping")
	}
	return credited, nil
}

// GetEventAnalytics returns all product rollups for an event.
func (p *Processor) GetEventAnalytics(ctx context.Context, eventID uuid.UUID) ([]store.SalesAnalyticsRecord, error) {
	return p.store.ListSalesAnalyticsByEvent(ctx, eventID)
}

// GetProductAnalytics returns the rollup for one (event, product) pair.
func (p *Processor) GetProductAnalytics(ctx context.Context, eventID, productID uuid.UUID) (store.SalesAnalyticsRecord, error) {
	return p.store.GetSalesAnalytics(ctx, eventID, productID)
}
