package roster

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no roster entry matches the given id.
var ErrNotFound = errors.New("person not found")

// MemRepository keeps the roster in an insertion-ordered slice. All
// mutations are serialized behind a single lock; the session is
// single-threaded but the discipline keeps the repo safe if a caller
// ever drives it concurrently.
type MemRepository struct {
	mu      sync.RWMutex
	persons []Person
}

func NewMemRepository() *MemRepository {
	return &MemRepository{}
}

func (m *MemRepository) Add(_ context.Context, p Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persons = append(m.persons, p)
	return nil
}

// Remove deletes the first entry with the given id.
func (m *MemRepository) Remove(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.persons {
		if p.PersonID() == id {
			m.persons = append(m.persons[:i], m.persons[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemRepository) FindByID(_ context.Context, id uuid.UUID) (Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.persons {
		if p.PersonID() == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemRepository) List(_ context.Context) ([]Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Person, len(m.persons))
	copy(out, m.persons)
	return out, nil
}

func (m *MemRepository) ListByKind(_ context.Context, kind Kind) ([]Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Person
	for _, p := range m.persons {
		if p.Kind() == kind {
			out = append(out, p)
		}
	}
	return out, nil
}
