package processor

import (
	"context"
	"stagepass/internal/clients/paymentlink"
	"stagepass/internal/store"

	"github.com/google/uuid"
)

// LinkStore defines the database operations required by link issuance.
type LinkStore interface {
	GetProductByID(ctx context.Context, productID uuid.UUID) (store.Product, error)
	CreatePayment(ctx context.Context, params store.CreatePaymentParams) (store.Payment, error)
}

// ProviderClient creates hosted payment links with the payment provider.
type ProviderClient interface {
	CreatePaymentLink(ctx context.Context, params paymentlink.CreateLinkParams) (paymentlink.PaymentLink, error)
}
