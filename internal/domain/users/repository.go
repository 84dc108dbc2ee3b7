package users

import (
	"context"
	"errors"

	"animal-training-api/internal/platform/paging"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	// Create devuelve ErrEmailTaken si el email ya existe.
	Create(ctx context.Context, u User) error
	// GetByEmail devuelve ErrNotFound si no hay usuario.
	GetByEmail(ctx context.Context, email string) (User, error)
	// List devuelve la página pedida sin PasswordHash.
	List(ctx context.Context, p paging.Params) ([]User, error)
	Count(ctx context.Context) (int64, error)
}
