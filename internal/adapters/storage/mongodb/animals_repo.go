package mongodb

import (
	"context"
	"errors"
	"time"

	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/platform/paging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type animalDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	HoursTrained float64   `bson:"hoursTrained"`
	Owner        string    `bson:"owner"`
	DateOfBirth  time.Time `bson:"dateOfBirth"`
}

type AnimalsRepo struct {
	coll *mongo.Collection
}

func NewAnimalsRepo(db *mongo.Database) *AnimalsRepo {
	return &AnimalsRepo{coll: db.Collection(AnimalsCollection)}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.coll.InsertOne(ctx, animalDoc{
		ID:           a.ID,
		Name:         a.Name,
		HoursTrained: a.HoursTrained,
		Owner:        a.OwnerUserID,
		DateOfBirth:  a.DateOfBirth,
	})
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	var d animalDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return d.toDomain(), nil
}

func (r *AnimalsRepo) List(ctx context.Context, p paging.Params) ([]animals.Animal, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, findPage(p.Skip(), p.Limit))
	if err != nil {
		return nil, err
	}

	var docs []animalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *AnimalsRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (d animalDoc) toDomain() animals.Animal {
	return animals.Animal{
		ID:           d.ID,
		OwnerUserID:  d.Owner,
		Name:         d.Name,
		HoursTrained: d.HoursTrained,
		DateOfBirth:  d.DateOfBirth.UTC(),
	}
}
