package training

import (
	"context"

	"animal-training-api/internal/platform/paging"
)

type Repository interface {
	Create(ctx context.Context, l Log) error
	List(ctx context.Context, p paging.Params) ([]Log, error)
	Count(ctx context.Context) (int64, error)
}
