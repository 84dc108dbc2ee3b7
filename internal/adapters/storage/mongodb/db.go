package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Nombres de colección (modelo pluralizado en minúsculas). Los _id y las referencias
// owner/animal/user son strings UUID, no ObjectId.
const (
	UsersCollection        = "users"
	AnimalsCollection      = "animals"
	TrainingLogsCollection = "traininglogs"

	// defaultDatabase se usa cuando la URI no trae path.
	defaultDatabase = "test"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open conecta, hace ping y asegura los índices. Un único client (pool) por proceso.
func Open(ctx context.Context, uri string, connectTimeout time.Duration) (*Store, error) {
	name, err := databaseName(uri)
	if err != nil {
		return nil, err
	}

	opts := options.Client().ApplyURI(uri)
	if connectTimeout > 0 {
		opts.SetConnectTimeout(connectTimeout).SetServerSelectionTimeout(connectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(name)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// EnsureIndexes crea el índice único de email (idempotente).
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_1"),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure users.email index: %w", err)
	}
	return nil
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func databaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongo uri: %w", err)
	}
	if cs.Database == "" {
		return defaultDatabase, nil
	}
	return cs.Database, nil
}

func findPage(skip, limit int) *options.FindOptions {
	return options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
}
