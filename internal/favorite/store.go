package favorite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store defines the favorite persistence operations. Add and Remove are
// idempotent; Toggle reports the new state. FetchAll returns records in
// insertion order and Count always equals len(FetchAll()).
type Store interface {
	Add(ctx context.Context, mealID string) error
	Remove(ctx context.Context, mealID string) error
	Toggle(ctx context.Context, mealID string) (bool, error)
	IsFavorite(ctx context.Context, mealID string) (bool, error)
	FetchAll(ctx context.Context) ([]Record, error)
	Count(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

// PostgresStore implements Store for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to the database and ensures the favorites table
// exists.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		meal_id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create favorites table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Add marks a meal as favorite. Adding an existing favorite is a no-op; the
// primary key guarantees a second add never produces a duplicate row.
func (s *PostgresStore) Add(ctx context.Context, mealID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO favorites (meal_id) VALUES ($1) ON CONFLICT (meal_id) DO NOTHING",
		mealID,
	)
	if err != nil {
		return &StoreError{Op: "add", Err: err}
	}
	return nil
}

// Remove unmarks a meal. Removing a non-favorite is a no-op.
func (s *PostgresStore) Remove(ctx context.Context, mealID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE meal_id = $1", mealID)
	if err != nil {
		return &StoreError{Op: "remove", Err: err}
	}
	return nil
}

// Toggle flips the favorite state of a meal and returns the new state. The
// conditional insert races safely on the primary key: of two concurrent
// toggles for the same id, exactly one insert wins.
func (s *PostgresStore) Toggle(ctx context.Context, mealID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO favorites (meal_id) VALUES ($1) ON CONFLICT (meal_id) DO NOTHING",
		mealID,
	)
	if err != nil {
		return false, &StoreError{Op: "toggle", Err: err}
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, &StoreError{Op: "toggle", Err: err}
	}
	if inserted > 0 {
		return true, nil
	}

	// Already a favorite, so the toggle removes it.
	if _, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE meal_id = $1", mealID); err != nil {
		return false, &StoreError{Op: "toggle", Err: err}
	}
	return false, nil
}

// IsFavorite reports whether a meal is currently favorited.
func (s *PostgresStore) IsFavorite(ctx context.Context, mealID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favorites WHERE meal_id = $1)", mealID,
	).Scan(&exists)
	if err != nil {
		return false, &StoreError{Op: "is_favorite", Err: err}
	}
	return exists, nil
}

// FetchAll returns every favorite in insertion order. The meal_id tiebreak
// keeps the order deterministic when timestamps collide.
func (s *PostgresStore) FetchAll(ctx context.Context) ([]Record, error) {
	records := []Record{}
	err := s.db.SelectContext(ctx, &records,
		"SELECT meal_id, created_at FROM favorites ORDER BY created_at, meal_id",
	)
	if err != nil {
		return nil, &StoreError{Op: "fetch_all", Err: err}
	}
	return records, nil
}

// Count returns the number of favorites.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM favorites").Scan(&count)
	if err != nil {
		return 0, &StoreError{Op: "count", Err: err}
	}
	return count, nil
}

// ClearAll removes every favorite.
func (s *PostgresStore) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM favorites"); err != nil {
		return &StoreError{Op: "clear_all", Err: err}
	}
	return nil
}
