package users

import (
	"context"
	"errors"
	"fmt"

	"animal-training-api/internal/platform/paging"
	"animal-training-api/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// HashCost equivale a genSalt(10).
const HashCost = bcrypt.DefaultCost

type Service struct {
	repo   Repository
	tokens auth.TokenIssuer
	newID  func() string
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		newID:  uuid.NewString,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register hashea la password con bcrypt (sal aleatoria) y persiste el usuario.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), HashCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           s.newID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate valida email + password. Usuario inexistente y password
// incorrecta devuelven el mismo ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("compare password: %w", err)
	}
	return u, nil
}

// IssueToken autentica y firma un token con {id, email, firstName, lastName}.
func (s *Service) IssueToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(auth.Claims{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

func (s *Service) List(ctx context.Context, p paging.Params) ([]User, int64, error) {
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
