package mongodb

import (
	"context"
	"errors"

	"animal-training-api/internal/domain/users"
	"animal-training-api/internal/platform/paging"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID        string `bson:"_id"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Email     string `bson:"email"`
	Password  string `bson:"password,omitempty"`
}

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(UsersCollection)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.coll.InsertOne(ctx, userDoc{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.PasswordHash,
	})
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return d.toDomain(), nil
}

func (r *UsersRepo) List(ctx context.Context, p paging.Params) ([]users.User, error) {
	opts := findPage(p.Skip(), p.Limit).SetProjection(bson.D{{Key: "password", Value: 0}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *UsersRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (d userDoc) toDomain() users.User {
	return users.User{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.Password,
	}
}
