package favorite

import (
	"fmt"
	"time"
)

// Record is a persisted favorite. Existence is the only meaningful state;
// records are never updated in place.
type Record struct {
	MealID    string    `json:"meal_id" db:"meal_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StoreError wraps a persistence failure. It is deliberately a separate type
// from the meal domain errors; callers must not confuse the two.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("favorite: %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying driver error.
func (e *StoreError) Unwrap() error {
	return e.Err
}
