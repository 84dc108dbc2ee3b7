package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/platform/paging"
)

type animalRepo struct {
	mu    sync.RWMutex
	byID  map[string]animals.Animal
	order []string
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context, p paging.Params) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := p.Window(len(r.order))
	out := make([]animals.Animal, 0, end-start)
	for _, id := range r.order[start:end] {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *animalRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.order)), nil
}
