// Package storage elige el backend según el esquema de DATABASE_URI.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"animal-training-api/internal/adapters/storage/memory"
	"animal-training-api/internal/adapters/storage/mongodb"
	"animal-training-api/internal/adapters/storage/postgres"
	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/domain/training"
	"animal-training-api/internal/domain/users"
)

var ErrUnsupportedScheme = errors.New("unsupported database uri scheme")

// Repositories agrupa los repos de un mismo backend y cómo cerrarlo.
type Repositories struct {
	Backend  string
	Users    users.Repository
	Animals  animals.Repository
	Training training.Repository

	closeFn func(ctx context.Context) error
}

func (r Repositories) Close(ctx context.Context) error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn(ctx)
}

// Memory devuelve repos en memoria (dev/tests).
func Memory() Repositories {
	return Repositories{
		Backend:  "memory",
		Users:    memory.NewUserRepo(),
		Animals:  memory.NewAnimalRepo(),
		Training: memory.NewTrainingRepo(),
	}
}

// Open conecta al backend indicado por la URI:
//   - mongodb:// o mongodb+srv://  => documentos (users, animals, traininglogs)
//   - postgres:// o postgresql://  => tablas equivalentes
//   - memory://                    => en memoria
func Open(ctx context.Context, uri string, connectTimeout time.Duration) (Repositories, error) {
	switch scheme := uriScheme(uri); scheme {
	case "mongodb", "mongodb+srv":
		store, err := mongodb.Open(ctx, uri, connectTimeout)
		if err != nil {
			return Repositories{}, err
		}
		db := store.Database()
		return Repositories{
			Backend:  "mongodb",
			Users:    mongodb.NewUsersRepo(db),
			Animals:  mongodb.NewAnimalsRepo(db),
			Training: mongodb.NewTrainingRepo(db),
			closeFn:  store.Close,
		}, nil

	case "postgres", "postgresql":
		db, err := postgres.Open(ctx, uri, connectTimeout)
		if err != nil {
			return Repositories{}, fmt.Errorf("postgres open: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return Repositories{}, err
		}
		return Repositories{
			Backend:  "postgres",
			Users:    postgres.NewUsersRepo(db),
			Animals:  postgres.NewAnimalsRepo(db),
			Training: postgres.NewTrainingRepo(db),
			closeFn:  func(context.Context) error { return db.Close() },
		}, nil

	case "memory":
		return Memory(), nil

	default:
		return Repositories{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

func uriScheme(uri string) string {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}
