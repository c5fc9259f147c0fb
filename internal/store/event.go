package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is an organizer's event. Immutable from the pipeline's perspective.
type Event struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Name      string    `db:"name"`
	Venue     string    `db:"venue"`
	StartsAt  time.Time `db:"starts_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const sqlGetEventByID = `
SELECT id, account_id, name, venue, starts_at, created_at, updated_at
FROM events
WHERE id = $1
`

// GetEventByID retrieves an event by ID.
func (s *Store) GetEventByID(ctx context.Context, eventID uuid.UUID) (Event, error) {
	var event Event
	err := s.db.GetContext(ctx, &event, sqlGetEventByID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get event", err)
		return Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}
