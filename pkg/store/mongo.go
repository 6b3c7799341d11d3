package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/errors"
)

// MongoStore persists records as BSON documents, one per plan, keyed by the
// record ID as _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures the MongoDB connection.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping, retrying briefly if the server is still coming up.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connecting to mongodb at %s", opts.URI)
	}

	err = cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx, nil); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "pinging mongodb at %s", opts.URI)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

// Put stores a record, replacing any document with the same ID.
func (s *MongoStore) Put(ctx context.Context, rec Record) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": rec.ID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "storing plan %s", rec.ID)
	}
	return nil
}

// Get returns a record by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "loading plan %s", id)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]Record, error) {
	cur, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "listing plans")
	}
	defer cur.Close(ctx)

	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decoding plans")
	}
	return out, nil
}

// Delete removes a record by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "deleting plan %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
