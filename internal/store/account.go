package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Account is an organizer account owning events.
type Account struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const sqlGetAccountByID = `
SELECT id, name, email, created_at, updated_at
FROM accounts
WHERE id = $1
`

// GetAccountByID retrieves an account by ID.
func (s *Store) GetAccountByID(ctx context.Context, accountID uuid.UUID) (Account, error) {
	var account Account
	err := s.db.GetContext(ctx, &account, sqlGetAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get account", err)
		return Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}
