package processor

import (
	"context"
	"errors"
	"fmt"
	"stagepass/internal/clients/paymentlink"
	"stagepass/internal/observability"
	"stagepass/internal/store"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProviderFailure = errors.New("payment provider failure")
)

// Processor issues hosted payment links. A pending payment is recorded
// against the provider-assigned link id; the settlement engine picks it up
// when the paid webhook arrives.
type Processor struct {
	store    LinkStore
	provider ProviderClient
	logger   *observability.Logger
}

func New(linkStore LinkStore, provider ProviderClient, logger *observability.Logger) *Processor {
	return &Processor{
		store:    linkStore,
		provider: provider,
		logger:   logger,
	}
}

// CreatePaymentLinkParams describes a checkout request for one product.
type CreatePaymentLinkParams struct {
	ProductID     uuid.UUID
	CustomerName  string
	CustomerEmail string
	CallbackURL   string
}

// CreatedPaymentLink is the issuance result handed back to the storefront.
type CreatedPaymentLink struct {
	Payment  store.Payment `json:"payment"`
	ShortURL string        `json:"short_url"`
}

// CreatePaymentLink creates a provider-hosted link for the product and
// records the pending payment correlated to it. The provider call happens
// first: a payment row without a link id would be unreachable by the
// webhook and never settle.
func (p *Processor) CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (CreatedPaymentLink, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: params.ProductID.String()})

	product, err := p.store.GetProductByID(ctx, params.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CreatedPaymentLink{}, ErrProductNotFound
		}
		return CreatedPaymentLink{}, fmt.Errorf("failed to load product: %w", err)
	}

	link, err := p.provider.CreatePaymentLink(ctx, paymentlink.CreateLinkParams{
		Amount:      product.Price,
		Currency:    product.Currency,
		Description: product.Name,
		ReferenceID: uuid.New().String(),
		CallbackURL: params.CallbackURL,
	})
	if err != nil {
		p.logger.Error(ctx, "provider rejected payment link creation", err)
		return CreatedPaymentLink{}, fmt.Errorf("%w: %s", ErrProviderFailure, err.Error())
	}

	payment, err := p.store.CreatePayment(ctx, store.CreatePaymentParams{
		PaymentLinkID: link.ID,
		ProductID:     product.ID,
		EventID:       product.EventID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		Amount:        product.Price,
		Currency:      product.Currency,
	})
	if err != nil {
		// Link exists at the provider but has no local payment. The webhook
		// for it will report PaymentNotFound; surface now so the storefront
		// retries instead of handing out a dead link.
		return CreatedPaymentLink{}, fmt.Errorf("failed to record pending payment: %w", err)
	}

	p.logger.Info(ctx, "payment link issued")
	return CreatedPaymentLink{Payment: payment, ShortURL: link.ShortURL}, nil
}
