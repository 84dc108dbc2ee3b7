package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-training-api/internal/platform/paging"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name string
	// Species se exige en el request pero el documento no tiene ese campo:
	// se valida y se descarta.
	Species     string
	DateOfBirth time.Time
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if in.Name == "" || in.Species == "" {
		return Animal{}, ErrInvalidInput
	}
	if in.DateOfBirth.IsZero() {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		ID:           s.newID(),
		OwnerUserID:  ownerUserID,
		Name:         in.Name,
		HoursTrained: 0,
		DateOfBirth:  in.DateOfBirth,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	if strings.TrimSpace(id) == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, p paging.Params) ([]Animal, int64, error) {
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
