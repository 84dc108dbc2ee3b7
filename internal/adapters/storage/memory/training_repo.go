package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training-api/internal/domain/training"
	"animal-training-api/internal/platform/paging"
)

type trainingRepo struct {
	mu   sync.RWMutex
	logs []training.Log // orden de alta
}

func NewTrainingRepo() training.Repository {
	return &trainingRepo{}
}

func (r *trainingRepo) Create(ctx context.Context, l training.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("training log id required")
	}
	r.logs = append(r.logs, l)
	return nil
}

func (r *trainingRepo) List(ctx context.Context, p paging.Params) ([]training.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := p.Window(len(r.logs))
	out := make([]training.Log, end-start)
	copy(out, r.logs[start:end])
	return out, nil
}

func (r *trainingRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.logs)), nil
}
