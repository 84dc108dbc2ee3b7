package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training-api/internal/domain/users"
	"animal-training-api/internal/platform/paging"
)

type userRepo struct {
	mu      sync.RWMutex
	byEmail map[string]users.User
	order   []string // emails en orden de alta
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byEmail: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byEmail[u.Email]; exists {
		return users.ErrEmailTaken
	}
	r.byEmail[u.Email] = u
	r.order = append(r.order, u.Email)
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context, p paging.Params) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := p.Window(len(r.order))
	out := make([]users.User, 0, end-start)
	for _, email := range r.order[start:end] {
		u := r.byEmail[email]
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.order)), nil
}
