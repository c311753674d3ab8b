package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateAppointment is returned when an appointment with the
	// same (patient, doctor, when) triple already exists.
	ErrDuplicateAppointment = errors.New("duplicate appointment")
)

// MemRepository keeps appointments in insertion order behind a single
// lock, matching the one-writer-at-a-time discipline of the session.
type MemRepository struct {
	mu           sync.RWMutex
	appointments []*Appointment
}

func NewMemRepository() *MemRepository {
	return &MemRepository{}
}

func (m *MemRepository) Create(_ context.Context, a *Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments = append(m.appointments, a)
	return nil
}

func (m *MemRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.appointments {
		if a.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemRepository) List(_ context.Context) ([]*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *MemRepository) FindMatch(_ context.Context, patientID, doctorID uuid.UUID, when time.Time) (*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.appointments {
		if a.Matches(patientID, doctorID, when) {
			return a, nil
		}
	}
	return nil, ErrNotFound
}
