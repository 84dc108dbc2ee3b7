package animals

import (
	"context"
	"errors"

	"animal-training-api/internal/platform/paging"
)

var ErrNotFound = errors.New("animal not found")

type Repository interface {
	Create(ctx context.Context, a Animal) error
	// GetByID devuelve ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, p paging.Params) ([]Animal, error)
	Count(ctx context.Context) (int64, error)
}
