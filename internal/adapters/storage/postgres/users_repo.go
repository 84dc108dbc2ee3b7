package postgres

import (
	"context"
	"database/sql"
	"errors"

	"animal-training-api/internal/domain/users"
	"animal-training-api/internal/platform/paging"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash)
		VALUES ($1,$2,$3,$4,$5)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
	)
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password_hash
		FROM users
		WHERE email = $1
	`, email)

	var u users.User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

// List no selecciona password_hash.
func (r *UsersRepo) List(ctx context.Context, p paging.Params) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email
		FROM users
		ORDER BY seq ASC
		LIMIT $1 OFFSET $2
	`, p.Limit, p.Skip())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}
