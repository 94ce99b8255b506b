package favorite

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store. It keeps insertion order and serializes
// all operations behind a mutex, so same-id toggles cannot double-insert.
// Intended for tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
	index   map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// Add marks a meal as favorite; adding twice is a no-op.
func (s *MemoryStore) Add(ctx context.Context, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(mealID)
	return nil
}

// Remove unmarks a meal; removing a non-favorite is a no-op.
func (s *MemoryStore) Remove(ctx context.Context, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(mealID)
	return nil
}

// Toggle flips the favorite state and returns the new state.
func (s *MemoryStore) Toggle(ctx context.Context, mealID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[mealID]; ok {
		s.remove(mealID)
		return false, nil
	}
	s.add(mealID)
	return true, nil
}

// IsFavorite reports whether a meal is currently favorited.
func (s *MemoryStore) IsFavorite(ctx context.Context, mealID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[mealID]
	return ok, nil
}

// FetchAll returns a copy of every favorite in insertion order.
func (s *MemoryStore) FetchAll(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records, nil
}

// Count returns the number of favorites.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records), nil
}

// ClearAll removes every favorite.
func (s *MemoryStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.index = make(map[string]int)
	return nil
}

func (s *MemoryStore) add(mealID string) {
	if _, ok := s.index[mealID]; ok {
		return
	}
	s.index[mealID] = len(s.records)
	s.records = append(s.records, Record{MealID: mealID, CreatedAt: time.Now().UTC()})
}

func (s *MemoryStore) remove(mealID string) {
	pos, ok := s.index[mealID]
	if !ok {
		return
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, mealID)
	for id, i := range s.index {
		if i > pos {
			s.index[id] = i - 1
		}
	}
}
