package workers

import (
	"context"
	"errors"
	"fmt"
	"stagepass/internal/observability"
	"stagepass/internal/settlement/processor"
	"stagepass/internal/store"
	"time"

	"github.com/google/uuid"
)

const sweepBatchSize = 100

// ReconcilerStore feeds the sweep with payments needing attention.
type ReconcilerStore interface {
	GetUndeliveredCompletedPayments(ctx context.Context, olderThan time.Time, limit int) ([]store.Payment, error)
	GetStalePendingPayments(ctx context.Context, cutoff time.Time, limit int) ([]store.Payment, error)
	FailPaymentIfPending(ctx context.Context, paymentID uuid.UUID) (store.Payment, bool, error)
}

// DeliveryResender re-runs delivery for a settled payment.
type DeliveryResender interface {
	ResendDelivery(ctx context.Context, paymentID uuid.UUID) (processor.SettlementResult, error)
}

// ReconcilerWorker periodically closes the inconsistency windows the
// settlement pipeline tolerates: settled payments whose delivery email
// never went out, and pending payments whose link expired unredeemed.
// Both sweeps are idempotent batch operations.
type ReconcilerWorker struct {
	store         ReconcilerStore
	engine        DeliveryResender
	logger        *observability.Logger
	stopChan      chan bool
	interval      time.Duration
	deliveryGrace time.Duration
	pendingTTL    time.Duration
}

// New creates a new ReconcilerWorker. deliveryGrace keeps the sweep from
// racing in-flight settlements; pendingTTL matches the provider's link
// expiry.
func New(reconcilerStore ReconcilerStore, engine DeliveryResender, logger *observability.Logger, interval, deliveryGrace, pendingTTL time.Duration) *ReconcilerWorker {
	return &ReconcilerWorker{
		store:         reconcilerStore,
		engine:        engine,
		logger:        logger,
		stopChan:      make(chan bool),
		interval:      interval,
		deliveryGrace: deliveryGrace,
		pendingTTL:    pendingTTL,
	}
}

// Start begins the background worker
func (w *ReconcilerWorker) Start(ctx context.Context) {
	w.logger.Info(ctx, "Starting settlement reconciler worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep immediately on start
	w.Sweep(ctx)

	for {
		select {
		case <-ticker.C:
			w.Sweep(ctx)
		case <-w.stopChan:
			w.logger.Info(ctx, "Stopping settlement reconciler worker")
			return
		case <-ctx.Done():
			w.logger.Info(ctx, "Context cancelled, stopping settlement reconciler worker")
			return
		}
	}
}

// Stop stops the background worker
func (w *ReconcilerWorker) Stop() {
	close(w.stopChan)
}

// Sweep runs one reconciliation pass. Exported so cmd/reconciler can run
// it one-shot.
func (w *ReconcilerWorker) Sweep(ctx context.Context) {
	w.logger.Info(ctx, "Running settlement reconciliation sweep")

	if err := w.redeliverUndelivered(ctx); err != nil {
		w.logger.Error(ctx, "failed to redeliver undelivered payments", err)
	}
	if err := w.expireStalePending(ctx); err != nil {
		w.logger.Error(ctx, "failed to expire stale pending payments", err)
	}

	w.logger.Info(ctx, "Finished settlement reconciliation sweep")
}

// redeliverUndelivered re-runs delivery and accounting for settled payments
// whose email never went out. Per-payment failures are logged and skipped
// so one bad payment cannot stall the batch.
func (w *ReconcilerWorker) redeliverUndelivered(ctx context.Context) error {
	olderThan := time.Now().UTC().Add(-w.deliveryGrace)
	payments, err := w.store.GetUndeliveredCompletedPayments(ctx, olderThan, sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to load undelivered payments: %w", err)
	}

	for _, payment := range payments {
		paymentCtx := observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: payment.ID.String()})

		result, err := w.engine.ResendDelivery(paymentCtx, payment.ID)
		if err != nil {
			if errors.Is(err, processor.ErrAlreadyDelivered) {
				continue
			}
			w.logger.Error(paymentCtx, "failed to redeliver payment", err)
			continue
		}
		if result.EmailSent {
			w.logger.Info(paymentCtx, "redelivered payment email")
		}
	}
	return nil
}

// expireStalePending fails pending payments older than the link TTL. The
// conditional transition in the store guarantees a payment that settled
// between the read and the write is left alone.
func (w *ReconcilerWorker) expireStalePending(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.pendingTTL)
	payments, err := w.store.GetStalePendingPayments(ctx, cutoff, sweepBatchSize)
	if err != nil {
		return fmt.Errorf("failed to load stale pending payments: %w", err)
	}

	for _, payment := range payments {
		paymentCtx := observability.WithFields(ctx, observability.Field{Key: "payment_id", Value: payment.ID.String()})

		_, transitioned, err := w.store.FailPaymentIfPending(paymentCtx, payment.ID)
		if err != nil {
			w.logger.Error(paymentCtx, "failed to expire pending payment", err)
			continue
		}
		if transitioned {
			w.logger.Info(paymentCtx, "expired stale pending payment")
		}
	}
	return nil
}
