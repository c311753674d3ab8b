package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service books and cancels appointments. Schedule models a
// backing-store round trip with a fixed latency; the call always runs
// to completion, there is no cancellation or timeout.
type Service struct {
	repo    Repository
	latency time.Duration
}

func NewService(repo Repository, latency time.Duration) *Service {
	return &Service{repo: repo, latency: latency}
}

// Schedule books an appointment after the simulated latency elapses.
// A booking that collides with an existing (patient, doctor, when)
// triple fails with ErrDuplicateAppointment and leaves the list
// untouched.
func (s *Service) Schedule(ctx context.Context, patientID, doctorID uuid.UUID, when time.Time) (*Appointment, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if doctorID == uuid.Nil {
		return nil, fmt.Errorf("doctor_id is required")
	}
	if when.IsZero() {
		return nil, fmt.Errorf("when is required")
	}

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	existing, err := s.repo.FindMatch(ctx, patientID, doctorID, when)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("appointment for patient %s with doctor %s at %s: %w",
			patientID, doctorID, when.Format(time.RFC3339), ErrDuplicateAppointment)
	}

	a := NewAppointment(patientID, doctorID, when)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete cancels an appointment by id. ErrNotFound when no such
// appointment exists; the list is left unchanged in that case.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// All returns the current appointments in insertion order.
func (s *Service) All(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}
