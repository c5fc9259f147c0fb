package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CustomerEntry is one settled sale inside a sales analytics record. The
// payment id doubles as the idempotency key for crediting.
type CustomerEntry struct {
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Amount        int64     `json:"amount"`
	PaymentID     uuid.UUID `json:"payment_id"`
}

// CustomerEntries is the append-only JSONB customer list of a sales
// analytics record.
type CustomerEntries []CustomerEntry

// Value implements the driver.Valuer interface for CustomerEntries
func (e CustomerEntries) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	return json.Marshal(e)
}

// Scan implements the sql.Scanner interface for CustomerEntries
func (e *CustomerEntries) Scan(value interface{}) error {
	if value == nil {
		*e = CustomerEntries{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for CustomerEntries")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*e = CustomerEntries{}
		return nil
	}

	var result CustomerEntries
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*e = result
	return nil
}

// Contains reports whether a payment id has already been credited.
func (e CustomerEntries) Contains(paymentID uuid.UUID) bool {
	for _, entry := range e {
		if entry.PaymentID == paymentID {
			return true
		}
	}
	return false
}

// DistinctEmails counts distinct customer email addresses in the list.
func (e CustomerEntries) DistinctEmails() int {
	seen := make(map[string]struct{}, len(e))
	for _, entry := range e {
		seen[entry.CustomerEmail] = struct{}{}
	}
	return len(seen)
}
