package billing

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no bill matches the given id.
var ErrNotFound = errors.New("bill not found")

// MemRepository keeps bills in insertion order behind a single lock.
type MemRepository struct {
	mu    sync.RWMutex
	bills []*Bill
}

func NewMemRepository() *MemRepository {
	return &MemRepository{}
}

func (m *MemRepository) Create(_ context.Context, b *Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bills = append(m.bills, b)
	return nil
}

func (m *MemRepository) GetByID(_ context.Context, id uuid.UUID) (*Bill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemRepository) List(_ context.Context) ([]*Bill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Bill, len(m.bills))
	copy(out, m.bills)
	return out, nil
}

func (m *MemRepository) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Bill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Bill
	for _, b := range m.bills {
		if b.PatientID == patientID {
			out = append(out, b)
		}
	}
	return out, nil
}
