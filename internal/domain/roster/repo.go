package roster

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Add(ctx context.Context, p Person) error
	Remove(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (Person, error)
	List(ctx context.Context) ([]Person, error)
	ListByKind(ctx context.Context, kind Kind) ([]Person, error)
}
