package training

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/platform/paging"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAnimalNotFound = errors.New("animal not found")
	ErrNotOwner       = errors.New("animal does not belong to user")
)

// AnimalOwners resuelve el dueño de un animal (lo implementa animals.Service).
// Debe devolver animals.ErrNotFound si el animal no existe.
type AnimalOwners interface {
	OwnerOf(ctx context.Context, animalID string) (string, error)
}

type Service struct {
	repo    Repository
	animals AnimalOwners
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, animals AnimalOwners) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

type CreateInput struct {
	AnimalID    string
	Description string
	Hours       float64
}

// Create registra la sesión si el animal existe y es de userID.
// El chequeo y la escritura no son atómicos: la propiedad no cambia después del alta.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Log, error) {
	if strings.TrimSpace(userID) == "" {
		return Log{}, ErrInvalidInput
	}
	if in.AnimalID == "" || in.Description == "" || in.Hours == 0 {
		return Log{}, ErrInvalidInput
	}

	owner, err := s.animals.OwnerOf(ctx, in.AnimalID)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			return Log{}, ErrAnimalNotFound
		}
		return Log{}, err
	}
	if owner != userID {
		return Log{}, ErrNotOwner
	}

	l := Log{
		ID:          s.newID(),
		Date:        s.now().UTC(),
		Description: in.Description,
		Hours:       in.Hours,
		AnimalID:    in.AnimalID,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return Log{}, err
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, p paging.Params) ([]Log, int64, error) {
	items, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
