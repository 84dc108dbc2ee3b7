package mongodb

import (
	"context"
	"time"

	"animal-training-api/internal/domain/training"
	"animal-training-api/internal/platform/paging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type trainingLogDoc struct {
	ID               string    `bson:"_id"`
	Date             time.Time `bson:"date"`
	Description      string    `bson:"description"`
	Hours            float64   `bson:"hours"`
	Animal           string    `bson:"animal"`
	User             string    `bson:"user"`
	TrainingLogVideo string    `bson:"trainingLogVideo,omitempty"`
}

type TrainingRepo struct {
	coll *mongo.Collection
}

func NewTrainingRepo(db *mongo.Database) *TrainingRepo {
	return &TrainingRepo{coll: db.Collection(TrainingLogsCollection)}
}

func (r *TrainingRepo) Create(ctx context.Context, l training.Log) error {
	_, err := r.coll.InsertOne(ctx, trainingLogDoc{
		ID:               l.ID,
		Date:             l.Date,
		Description:      l.Description,
		Hours:            l.Hours,
		Animal:           l.AnimalID,
		User:             l.UserID,
		TrainingLogVideo: l.VideoURL,
	})
	return err
}

func (r *TrainingRepo) List(ctx context.Context, p paging.Params) ([]training.Log, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, findPage(p.Skip(), p.Limit))
	if err != nil {
		return nil, err
	}

	var docs []trainingLogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]training.Log, 0, len(docs))
	for _, d := range docs {
		out = append(out, training.Log{
			ID:          d.ID,
			Date:        d.Date.UTC(),
			Description: d.Description,
			Hours:       d.Hours,
			AnimalID:    d.Animal,
			UserID:      d.User,
			VideoURL:    d.TrainingLogVideo,
		})
	}
	return out, nil
}

func (r *TrainingRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
