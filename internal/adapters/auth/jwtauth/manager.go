package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-training-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL es la vida de los tokens emitidos por /api/user/verify.
const DefaultTTL = time.Hour

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrSecretRequired = errors.New("jwt secret is required")
	ErrInvalidClaims  = errors.New("token claims missing user id")
)

// tokenClaims replica el payload {id, email, firstName, lastName} + iat/exp.
type tokenClaims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// Manager implementa auth.TokenService con HS256 y un secreto compartido.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock fija el reloj usado al emitir y al validar exp/iat.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func New(secret string, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	m := &Manager{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Issue(c auth.Claims) (string, error) {
	now := m.now()
	claims := tokenClaims{
		ID:        c.UserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify token: %w", err)
	}

	if strings.TrimSpace(claims.ID) == "" {
		return auth.Claims{}, ErrInvalidClaims
	}

	return auth.Claims{
		UserID:    claims.ID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
