package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a downloadable item sold for an event. Read-only to the
// settlement pipeline except for the downloads counter.
type Product struct {
	ID          uuid.UUID `db:"id"`
	EventID     uuid.UUID `db:"event_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Currency    string    `db:"currency"`
	FileKey     string    `db:"file_key"`
	Downloads   int       `db:"downloads"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const productColumns = `id, event_id, name, description, price, currency, file_key, downloads, created_at, updated_at`

const sqlGetProductByID = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

// GetProductByID retrieves a product by ID.
func (s *Store) GetProductByID(ctx context.Context, productID uuid.UUID) (Product, error) {
	var product Product
	err := s.db.GetContext(ctx, &product, sqlGetProductByID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get product", err)
		return Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

const sqlIncrementProductDownloads = `
UPDATE products
SET downloads = downloads + 1, updated_at = NOW()
WHERE id = $1
`

// IncrementProductDownloads bumps the download counter after a confirmed
// delivery.
func (s *Store) IncrementProductDownloads(ctx context.Context, productID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementProductDownloads, productID)
	if err != nil {
		s.logger.Error(ctx, "failed to increment product downloads", err)
		return fmt.Errorf("failed to increment product downloads: %w", err)
	}
	return nil
}
