package postgres

import (
	"context"
	"database/sql"

	"animal-training-api/internal/domain/training"
	"animal-training-api/internal/platform/paging"
)

type TrainingRepo struct {
	db *sql.DB
}

func NewTrainingRepo(db *sql.DB) *TrainingRepo {
	return &TrainingRepo{db: db}
}

func (r *TrainingRepo) Create(ctx context.Context, l training.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO training_logs (id, date, description, hours, animal_id, user_id, video_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		l.ID,
		l.Date,
		l.Description,
		l.Hours,
		l.AnimalID,
		l.UserID,
		toNullString(l.VideoURL),
	)
	return err
}

func (r *TrainingRepo) List(ctx context.Context, p paging.Params) ([]training.Log, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, description, hours, animal_id, user_id, video_url
		FROM training_logs
		ORDER BY seq ASC
		LIMIT $1 OFFSET $2
	`, p.Limit, p.Skip())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]training.Log, 0)
	for rows.Next() {
		var l training.Log
		var video sql.NullString
		if err := rows.Scan(&l.ID, &l.Date, &l.Description, &l.Hours, &l.AnimalID, &l.UserID, &video); err != nil {
			return nil, err
		}
		l.Date = l.Date.UTC()
		l.VideoURL = video.String
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *TrainingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM training_logs`).Scan(&n)
	return n, err
}

// video_url es opcional: "" se guarda como NULL.
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
