package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Appointment, error)
	FindMatch(ctx context.Context, patientID, doctorID uuid.UUID, when time.Time) (*Appointment, error)
}
