package processor

import (
	"context"
	"stagepass/internal/clients/kafka"
	"stagepass/internal/store"
	"time"

	"github.com/google/uuid"
)

// PaymentStore defines the database operations required by the settlement engine.
type PaymentStore interface {
	GetPaymentsByLinkID(ctx context.Context, paymentLinkID string) ([]store.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (store.Payment, error)
	CompletePaymentIfPending(ctx context.Context, paymentID uuid.UUID, customerName, customerEmail string) (store.Payment, bool, error)
	MarkPaymentEmailSent(ctx context.Context, paymentID uuid.UUID, sentAt time.Time) error
	SetPaymentEventID(ctx context.Context, paymentID, eventID uuid.UUID) error
	IncrementProductDownloads(ctx context.Context, productID uuid.UUID) error
}

// Catalog resolves the product, event, and owner chain plus the product
// file's download URL.
type Catalog interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (store.Product, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (store.Event, error)
	GetOwner(ctx context.Context, event store.Event) (store.Account, error)
	ResolveFileURL(ctx context.Context, product store.Product) (string, error)
}

// DeliveryMailer sends the buyer's delivery email.
type DeliveryMailer interface {
	SendDeliveryEmail(ctx context.Context, to, customerName, productName, eventName, downloadURL string) error
}

// SalesLedger credits a settled payment into the sales analytics rollup.
type SalesLedger interface {
	CreditSale(ctx context.Context, paymentID uuid.UUID) (bool, error)
}

// EventPublisher fans settled payments out to downstream consumers.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}
