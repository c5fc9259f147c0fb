package processor

import (
	"context"
	"errors"
	"fmt"
	"stagepass/internal/clients/kafka"
	"stagepass/internal/observability"
	"stagepass/internal/store"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrOwnerNotFound    = errors.New("owner account not found")
	ErrNotCompleted     = errors.New("payment is not completed")
	ErrAlreadyDelivered = errors.New("delivery email already sent")
)

const defaultDispatchTimeout = 10 * time.Second

// SettlementResult describes what a settlement invocation actually did.
// Replayed means the payment had already left the pending state and no
// side effects were repeated.
type SettlementResult struct {
	PaymentID         uuid.UUID
	Replayed          bool
	EmailSent         bool
	AnalyticsCredited bool
}

// Processor is the settlement engine. It owns the payment state machine:
// correlating a provider notification to a payment, transitioning it to
// completed exactly once, and running delivery and accounting afterwards.
type Processor struct {
	store           PaymentStore
	catalog         Catalog
	mailer          DeliveryMailer
	ledger          SalesLedger
	publisher       EventPublisher
	dispatchTimeout time.Duration
	logger          *observability.Logger
}

func New(paymentStore PaymentStore, catalog Catalog, mailer DeliveryMailer, ledger SalesLedger, publisher EventPublisher, logger *observability.Logger) *Processor {
	return &Processor{
		store:           paymentStore,
		catalog:         catalog,
		mailer:          mailer,
		ledger:          ledger,
		publisher:       publisher,
		dispatchTimeout: defaultDispatchTimeout,
		logger:          logger,
	}
}

// Settle processes one paid notification. The conditional status update in
// the store is the idempotency guard: a redelivered notification finds the
// payment already completed and returns a replay result with no side
// effects. Errors before the transition leave no writes behind; delivery
// and accounting failures after it are soft and left for the
// reconciliation sweep.
func (p *Processor) Settle(ctx context.Context, notification PaymentNotification) (SettlementResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payment_link_id", Value: notification.PaymentLinkID},
	)

	payments, err := p.store.GetPaymentsByLinkID(ctx, notification.PaymentLinkID)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("failed to correlate payment link: %w", err)
	}
	if len(payments) == 0 {
		return SettlementResult{}, ErrPaymentNotFound
	}
	if len(payments) > 1 {
		p.logger.Warn(ctx, fmt.Sprintf("payment link correlates to %d payments, settling the oldest", len(payments)))
	}
	payment := payments[0]
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: payment.ID.String()})

	payment, transitioned, err := p.store.CompletePaymentIfPending(ctx, payment.ID, notification.CustomerName, notification.CustomerEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SettlementResult{}, ErrPaymentNotFound
		}
		return SettlementResult{}, fmt.Errorf("failed to transition payment: %w", err)
	}
	if !transitioned {
		if payment.Status == store.PaymentStatusFailed {
			p.logger.Warn(ctx, "paid notification received for a failed payment, ignoring")
		} else {
			p.logger.Info(ctx, "payment already settled, replaying as no-op")
		}
		return SettlementResult{
			PaymentID: payment.ID,
			Replayed:  true,
			EmailSent: payment.EmailSent,
		}, nil
	}

	p.logger.Info(ctx, "payment transitioned to completed")

	result, err := p.deliverAndAccount(ctx, payment)
	if err != nil {
		return result, err
	}

	p.publishSettled(ctx, payment, result)
	return result, nil
}

// ResendDelivery re-runs delivery and accounting for a settled payment
// whose email never went out. Closes the inconsistency window left by a
// dispatch failure, either operator-triggered or from the reconciler.
func (p *Processor) ResendDelivery(ctx context.Context, paymentID uuid.UUID) (SettlementResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: paymentID.String()})

	payment, err := p.store.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SettlementResult{}, ErrPaymentNotFound
		}
		return SettlementResult{}, fmt.Errorf("failed to load payment: %w", err)
	}
	if payment.Status != store.PaymentStatusCompleted {
		return SettlementResult{}, ErrNotCompleted
	}
	if payment.EmailSent {
		return SettlementResult{PaymentID: payment.ID, EmailSent: true}, ErrAlreadyDelivered
	}

	return p.deliverAndAccount(ctx, payment)
}

// deliverAndAccount runs the post-transition steps for a completed payment:
// resolve the delivery target, dispatch the email, and on confirmed
// dispatch stamp the payment, bump the download counter, and credit the
// sale. Referential-integrity failures are fatal; dispatch and accounting
// failures are soft.
func (p *Processor) deliverAndAccount(ctx context.Context, payment store.Payment) (SettlementResult, error) {
	result := SettlementResult{PaymentID: payment.ID}

	product, err := p.catalog.GetProduct(ctx, payment.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return result, ErrProductNotFound
		}
		return result, fmt.Errorf("failed to load product: %w", err)
	}

	eventID := product.EventID
	if payment.EventID != nil {
		eventID = *payment.EventID
	} else if err := p.store.SetPaymentEventID(ctx, payment.ID, product.EventID); err != nil {
		p.logger.Error(ctx, "failed to backfill payment event id", err)
	}

	event, err := p.catalog.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return result, ErrEventNotFound
		}
		return result, fmt.Errorf("failed to load event: %w", err)
	}

	owner, err := p.catalog.GetOwner(ctx, event)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return result, ErrOwnerNotFound
		}
		return result, fmt.Errorf("failed to load event owner: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "organizer_id", Value: owner.ID.String()})

	downloadURL, err := p.catalog.ResolveFileURL(ctx, product)
	if err != nil {
		// Payment stays settled; the reconciler retries delivery later.
		p.logger.Error(ctx, "failed to resolve product file url, delivery deferred", err)
		return result, nil
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, p.dispatchTimeout)
	defer cancel()
	err = p.mailer.SendDeliveryEmail(dispatchCtx, payment.CustomerEmail, payment.CustomerName, product.Name, event.Name, downloadURL)
	if err != nil {
		p.logger.Error(ctx, "delivery email dispatch failed, accounting deferred", err)
		return result, nil
	}
	result.EmailSent = true

	if err := p.store.MarkPaymentEmailSent(ctx, payment.ID, time.Now().UTC()); err != nil {
		p.logger.Error(ctx, "failed to stamp delivery email on payment", err)
	}
	if err := p.store.IncrementProductDownloads(ctx, product.ID); err != nil {
		p.logger.Error(ctx, "failed to increment product downloads", err)
	}

	credited, err := p.ledger.CreditSale(ctx, payment.ID)
	if err != nil {
		// The analytics projection is now stale relative to the payment
		// record. Loud log so operators reconcile it.
		p.logger.Error(ctx, "analytics credit failed after settlement", err)
	} else {
		result.AnalyticsCredited = credited
	}

	return result, nil
}

// publishSettled fans the settled payment out to Kafka. Best-effort:
// settlement already committed, a publish failure is only logged.
func (p *Processor) publishSettled(ctx context.Context, payment store.Payment, result SettlementResult) {
	if p.publisher == nil {
		return
	}

	var eventID *string
	if payment.EventID != nil {
		id := payment.EventID.String()
		eventID = &id
	}

	msg := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      "payment.settled",
		PaymentID: payment.ID.String(),
		EventID:   eventID,
		Data: map[string]interface{}{
			"product_id":     payment.ProductID.String(),
			"amount":         payment.Amount,
			"currency":       payment.Currency,
			"email_sent":     result.EmailSent,
			"customer_email": payment.CustomerEmail,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := p.publisher.PublishEvent(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to publish settlement event", err)
	}
}
