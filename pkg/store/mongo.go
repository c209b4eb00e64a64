package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

// MongoStore persists plan documents in a MongoDB collection, one
// document per room keyed by the "_id" field.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig holds connection settings for [NewMongoStore].
type MongoConfig struct {
	URI        string
	Database   string // defaults to "rackroom"
	Collection string // defaults to "plans"
}

// mongoPlan is the stored shape: the room id doubles as the document id
// so upserts are natural and ids stay unique.
type mongoPlan struct {
	ID  string          `bson:"_id"`
	Doc planio.Document `bson:"plan"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping before returning the store.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "rackroom"
	}
	if cfg.Collection == "" {
		cfg.Collection = "plans"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Load retrieves the plan for a room.
func (s *MongoStore) Load(ctx context.Context, roomID string) (planio.Document, error) {
	var stored mongoPlan
	err := s.collection.FindOne(ctx, bson.M{"_id": roomID}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return planio.Document{}, fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	if err != nil {
		return planio.Document{}, fmt.Errorf("mongo find: %w", err)
	}
	return stored.Doc, nil
}

// Save stores a plan, overwriting any previous plan for the room.
func (s *MongoStore) Save(ctx context.Context, doc planio.Document) error {
	if doc.Room.RoomID == "" {
		return ErrInvalidKey
	}

	stored := mongoPlan{ID: doc.Room.RoomID, Doc: doc}
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": stored.ID},
		stored,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}

// Delete removes the plan for a room.
func (s *MongoStore) Delete(ctx context.Context, roomID string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": roomID})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	return nil
}

// List returns the room ids of all stored plans.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var stored struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&stored); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		ids = append(ids, stored.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return ids, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
