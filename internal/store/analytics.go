package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SalesAnalyticsRecord is the per-(event, product) sales rollup. It is a
// derived projection of the payment stream, owned exclusively by the
// analytics aggregator and read by reporting UIs.
type SalesAnalyticsRecord struct {
	ID            uuid.UUID       `db:"id"`
	EventID       uuid.UUID       `db:"event_id"`
	ProductID     uuid.UUID       `db:"product_id"`
	ProductName   string          `db:"product_name"`
	TotalSales    int64           `db:"total_sales"`
	TotalUnits    int             `db:"total_units"`
	CustomerCount int             `db:"customer_count"`
	Customers     CustomerEntries `db:"customers"`
	LastSaleDate  *time.Time      `db:"last_sale_date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

const salesAnalyticsColumns = `id, event_id, product_id, product_name, total_sales, total_units, customer_count, customers, last_sale_date, created_at, updated_at`

// CreditSaleParams represents one settled payment to fold into the rollup.
type CreditSaleParams struct {
	EventID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Entry       CustomerEntry
}

const sqlInsertSalesAnalytics = `
INSERT INTO sales_analytics (event_id, product_id, product_name, total_sales, total_units, customer_count, customers, last_sale_date)
VALUES ($1, $2, $3, $4, 1, 1, $5, $6)
ON CONFLICT (event_id, product_id) DO NOTHING
RETURNING ` + salesAnalyticsColumns

const sqlLockSalesAnalytics = `
SELECT ` + salesAnalyticsColumns + `
FROM sales_analytics
WHERE event_id = $1 AND product_id = $2
FOR UPDATE
`

const sqlUpdateSalesAnalytics = `
UPDATE sales_analytics
SET total_sales = $2,
    total_units = $3,
    customer_count = $4,
    customers = $5,
    last_sale_date = $6,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + salesAnalyticsColumns

// CreditSale folds one settled payment into the (event, product) rollup.
// The first sale creates the record with the entry already applied; later
// sales lock the row (FOR UPDATE serializes concurrent settlements of the
// same product) and append. A payment id already present in the customer
// list makes the call a no-op, so crediting is idempotent per payment.
// Returns credited=false on such a replay.
func (s *Store) CreditSale(ctx context.Context, params CreditSaleParams) (SalesAnalyticsRecord, bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to begin credit transaction: %w", err)
	}
	defer tx.Rollback()

	var record SalesAnalyticsRecord
	entry := params.Entry

	// First sale for this (event, product): create the record with the entry
	// applied so readers never observe an empty rollup.
	err = tx.GetContext(ctx, &record, sqlInsertSalesAnalytics,
		params.EventID,
		params.ProductID,
		params.ProductName,
		entry.Amount,
		CustomerEntries{entry},
		entry.PurchaseDate)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to commit credit transaction: %w", err)
		}
		return record, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to insert sales analytics record", err)
		return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to insert sales analytics record: %w", err)
	}

	// Record exists: take the row lock and fold the entry in.
	err = tx.GetContext(ctx, &record, sqlLockSalesAnalytics, params.EventID, params.ProductID)
	if err != nil {
		s.logger.Error(ctx, "failed to lock sales analytics record", err)
		return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to lock sales analytics record: %w", err)
	}

	if record.Customers.Contains(entry.PaymentID) {
		// Already credited for this payment.
		return record, false, nil
	}

	record.Customers = append(record.Customers, entry)
	record.TotalSales += entry.Amount
	record.TotalUnits = len(record.Customers)
	record.CustomerCount = record.Customers.DistinctEmails()
	if record.LastSaleDate == nil || entry.PurchaseDate.After(*record.LastSaleDate) {
		saleDate := entry.PurchaseDate
		record.LastSaleDate = &saleDate
	}

	err = tx.GetContext(ctx, &record, sqlUpdateSalesAnalytics,
		record.ID,
		record.TotalSales,
		record.TotalUnits,
		record.CustomerCount,
		record.Customers,
		record.LastSaleDate)
	if err != nil {
		s.logger.Error(ctx, "failed to update sales analytics record", err)
		return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to update sales analytics record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SalesAnalyticsRecord{}, false, fmt.Errorf("failed to commit credit transaction: %w", err)
	}
	return record, true, nil
}

const sqlGetSalesAnalytics = `
SELECT ` + salesAnalyticsColumns + `
FROM sales_analytics
WHERE event_id = $1 AND product_id = $2
`

// GetSalesAnalytics retrieves the rollup for one (event, product) pair.
func (s *Store) GetSalesAnalytics(ctx context.Context, eventID, productID uuid.UUID) (SalesAnalyticsRecord, error) {
	var record SalesAnalyticsRecord
	err := s.db.GetContext(ctx, &record, sqlGetSalesAnalytics, eventID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SalesAnalyticsRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get sales analytics", err)
		return SalesAnalyticsRecord{}, fmt.Errorf("failed to get sales analytics: %w", err)
	}
	return record, nil
}

const sqlListSalesAnalyticsByEvent = `
SELECT ` + salesAnalyticsColumns + `
FROM sales_analytics
WHERE event_id = $1
ORDER BY total_sales DESC
`

// ListSalesAnalyticsByEvent retrieves all product rollups for an event.
func (s *Store) ListSalesAnalyticsByEvent(ctx context.Context, eventID uuid.UUID) ([]SalesAnalyticsRecord, error) {
	var records []SalesAnalyticsRecord
	err := s.db.SelectContext(ctx, &records, sqlListSalesAnalyticsByEvent, eventID)
	if err != nil {
		s.logger.Error(ctx, "failed to list sales analytics by event", err)
		return nil, fmt.Errorf("failed to list sales analytics by event: %w", err)
	}
	return records, nil
}
