package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/platform/paging"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (id, owner_user_id, name, hours_trained, date_of_birth)
		VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		a.OwnerUserID,
		a.Name,
		a.HoursTrained,
		a.DateOfBirth,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, hours_trained, date_of_birth
		FROM animals
		WHERE id = $1
	`, id)

	var a animals.Animal
	if err := row.Scan(&a.ID, &a.OwnerUserID, &a.Name, &a.HoursTrained, &a.DateOfBirth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	a.DateOfBirth = a.DateOfBirth.UTC()
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, p paging.Params) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, name, hours_trained, date_of_birth
		FROM animals
		ORDER BY seq ASC
		LIMIT $1 OFFSET $2
	`, p.Limit, p.Skip())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var a animals.Animal
		if err := rows.Scan(&a.ID, &a.OwnerUserID, &a.Name, &a.HoursTrained, &a.DateOfBirth); err != nil {
			return nil, err
		}
		a.DateOfBirth = a.DateOfBirth.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM animals`).Scan(&n)
	return n, err
}
