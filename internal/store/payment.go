package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Payment represents one purchase attempt, correlated to the provider's
// hosted payment link via PaymentLinkID.
type Payment struct {
	ID            uuid.UUID     `db:"id"`
	PaymentLinkID string        `db:"payment_link_id"`
	ProductID     uuid.UUID     `db:"product_id"`
	EventID       *uuid.UUID    `db:"event_id"` // nullable on legacy rows, backfilled during settlement
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	Amount        int64         `db:"amount"`
	Currency      string        `db:"currency"`
	Status        PaymentStatus `db:"status"`
	EmailSent     bool          `db:"email_sent"`
	EmailSentAt   *time.Time    `db:"email_sent_at"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

const paymentColumns = `id, payment_link_id, product_id, event_id, customer_name, customer_email, amount, currency, status, email_sent, email_sent_at, created_at, updated_at`

// CreatePaymentParams represents the parameters used to create a pending payment.
type CreatePaymentParams struct {
	PaymentLinkID string
	ProductID     uuid.UUID
	EventID       uuid.UUID
	CustomerName  string
	CustomerEmail string
	Amount        int64
	Currency      string
}

const sqlCreatePayment = `
INSERT INTO payments (payment_link_id, product_id, event_id, customer_name, customer_email, amount, currency, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
RETURNING ` + paymentColumns

// CreatePayment creates a pending payment for a freshly issued payment link.
func (s *Store) CreatePayment(ctx context.Context, params CreatePaymentParams) (Payment, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlCreatePayment,
		params.PaymentLinkID,
		params.ProductID,
		params.EventID,
		params.CustomerName,
		params.CustomerEmail,
		params.Amount,
		params.Currency)
	if err != nil {
		s.logger.Error(ctx, "failed to create payment", err)
		return Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

const sqlGetPaymentByID = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
`

// GetPaymentByID retrieves a payment by ID.
func (s *Store) GetPaymentByID(ctx context.Context, paymentID uuid.UUID) (Payment, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlGetPaymentByID, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payment{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get payment", err)
		return Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

const sqlGetPaymentsByLinkID = `
SELECT ` + paymentColumns + `
FROM payments
WHERE payment_link_id = $1
ORDER BY created_at ASC
`

// GetPaymentsByLinkID retrieves all payments correlated to a provider
// payment-link id. Historical data contains duplicate link ids; rows are
// returned oldest first so callers can pick the original.
func (s *Store) GetPaymentsByLinkID(ctx context.Context, paymentLinkID string) ([]Payment, error) {
	var payments []Payment
	err := s.db.SelectContext(ctx, &payments, sqlGetPaymentsByLinkID, paymentLinkID)
	if err != nil {
		s.logger.Error(ctx, "failed to get payments by link id", err)
		return nil, fmt.Errorf("failed to get payments by link id: %w", err)
	}
	return payments, nil
}

const sqlCompletePaymentIfPending = `
UPDATE payments
SET status = 'completed',
    customer_name = COALESCE(NULLIF($2, ''), customer_name),
    customer_email = COALESCE(NULLIF($3, ''), customer_email),
    updated_at = NOW()
WHERE id = $1 AND status = 'pending'
RETURNING ` + paymentColumns

// CompletePaymentIfPending transitions a payment to completed if and only if
// it is still pending, patching customer identity fields from the provider
// notification when present. The conditional UPDATE is the serialization
// point for concurrent webhook deliveries: exactly one caller observes the
// transition, every other caller gets the already-settled row back with
// transitioned=false.
func (s *Store) CompletePaymentIfPending(ctx context.Context, paymentID uuid.UUID, customerName, customerEmail string) (Payment, bool, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlCompletePaymentIfPending, paymentID, customerName, customerEmail)
	if err == nil {
		return payment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to complete payment", err)
		return Payment{}, false, fmt.Errorf("failed to complete payment: %w", err)
	}

	// No pending row matched: either the payment does not exist or it has
	// already left the pending state. Re-read to tell the two apart.
	payment, err = s.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return Payment{}, false, err
	}
	return payment, false, nil
}

const sqlFailPaymentIfPending = `
UPDATE payments
SET status = 'failed', updated_at = NOW()
WHERE id = $1 AND status = 'pending'
RETURNING ` + paymentColumns

// FailPaymentIfPending transitions a payment to failed if it is still
// pending. Completed payments are never touched.
func (s *Store) FailPaymentIfPending(ctx context.Context, paymentID uuid.UUID) (Payment, bool, error) {
	var payment Payment
	err := s.db.GetContext(ctx, &payment, sqlFailPaymentIfPending, paymentID)
	if err == nil {
		return payment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to fail payment", err)
		return Payment{}, false, fmt.Errorf("failed to fail payment: %w", err)
	}

	payment, err = s.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return Payment{}, false, err
	}
	return payment, false, nil
}

const sqlMarkPaymentEmailSent = `
UPDATE payments
SET email_sent = true, email_sent_at = $2, updated_at = NOW()
WHERE id = $1
`

// MarkPaymentEmailSent stamps the delivery email as sent.
func (s *Store) MarkPaymentEmailSent(ctx context.Context, paymentID uuid.UUID, sentAt time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlMarkPaymentEmailSent, paymentID, sentAt)
	if err != nil {
		s.logger.Error(ctx, "failed to mark payment email sent", err)
		return fmt.Errorf("failed to mark payment email sent: %w", err)
	}
	return nil
}

const sqlSetPaymentEventID = `
UPDATE payments
SET event_id = $2, updated_at = NOW()
WHERE id = $1 AND event_id IS NULL
`

// SetPaymentEventID backfills the owning event on legacy payments created
// before event_id was recorded at issuance.
func (s *Store) SetPaymentEventID(ctx context.Context, paymentID, eventID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlSetPaymentEventID, paymentID, eventID)
	if err != nil {
		s.logger.Error(ctx, "failed to backfill payment event id", err)
		return fmt.Errorf("failed to backfill payment event id: %w", err)
	}
	return nil
}

const sqlGetUndeliveredCompletedPayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE status = 'completed' AND email_sent = false AND updated_at < $1
ORDER BY updated_at ASC
LIMIT $2
`

// GetUndeliveredCompletedPayments returns settled payments whose delivery or
// accounting is still outstanding, for the reconciliation sweep.
func (s *Store) GetUndeliveredCompletedPayments(ctx context.Context, olderThan time.Time, limit int) ([]Payment, error) {
	var payments []Payment
	err := s.db.SelectContext(ctx, &payments, sqlGetUndeliveredCompletedPayments, olderThan, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get undelivered completed payments", err)
		return nil, fmt.Errorf("failed to get undelivered completed payments: %w", err)
	}
	return payments, nil
}

const sqlGetStalePendingPayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE status = 'pending' AND created_at < $1
ORDER BY created_at ASC
LIMIT $2
`

// GetStalePendingPayments returns pending payments older than the payment
// link TTL, candidates for the expiry sweep.
func (s *Store) GetStalePendingPayments(ctx context.Context, cutoff time.Time, limit int) ([]Payment, error) {
	var payments []Payment
	err := s.db.SelectContext(ctx, &payments, sqlGetStalePendingPayments, cutoff, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get stale pending payments", err)
		return nil, fmt.Errorf("failed to get stale pending payments: %w", err)
	}
	return payments, nil
}
