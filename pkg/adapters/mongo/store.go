// Package mongo provides a BlobStore backed by a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/introspection"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection blobs are kept in.
const DefaultCollection = "blobs"

type blob struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store implements core.BlobStore with one document per key.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect dials uri, checks the connection and selects dbName.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(dbName).Collection(DefaultCollection),
	}, nil
}

// New wraps an existing database handle; the caller keeps ownership of the client.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(DefaultCollection)}
}

// Close disconnects the client opened by Connect.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var b blob
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find blob %q: %w", key, err)
	}
	return b.Value, true, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	b := blob{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, b, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace blob %q: %w", key, err)
	}
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Database   string `json:"database"`
	Collection string `json:"collection"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Database:   s.coll.Database().Name(),
		Collection: s.coll.Name(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "mongo"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
