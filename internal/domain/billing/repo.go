package billing

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	List(ctx context.Context) ([]*Bill, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Bill, error)
}
