// Package store provides MongoDB connectivity and the repositories the
// services are built on. Everything lives in one users collection: movies
// are embedded subdocuments and the follow graph is a pair of ObjectID
// arrays, so most operations are single-document reads and writes. The one
// exception is the feed, which runs as an aggregation pipeline so the server
// never pulls whole movie histories into memory just to sort them.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/cinelog-go/config"
)

// Sentinel errors returned by repositories. Services translate these into
// user-facing apperror values at the boundary.
var (
	// ErrUserNotFound is returned when the referenced user document does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrMovieNotFound is returned when a movie subdocument id matches nothing.
	ErrMovieNotFound = errors.New("movie not found")
)

const usersCollection = "users"

// Store wraps the MongoDB client and the application database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB, verifies the connection with a ping and returns
// a Store ready for use.
func Open(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.DBName),
	}, nil
}

// Collection returns a handle to a named collection in the application database.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the application relies on. Usernames are
// unique; a duplicate registration surfaces as a duplicate key error on
// insert. Index creation is idempotent, so this runs at every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	usernameIdx := mongo.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.Collection(usersCollection).Indexes().CreateOne(ctx, usernameIdx); err != nil {
		return err
	}

	// Email lookups back the duplicate-registration check.
	emailIdx := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index(),
	}
	if _, err := s.Collection(usersCollection).Indexes().CreateOne(ctx, emailIdx); err != nil {
		return err
	}

	return nil
}
