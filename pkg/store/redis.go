package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/jwinther/homeplan/pkg/cache"
	"github.com/jwinther/homeplan/pkg/errors"
)

const redisKeyPrefix = "homeplan:plan:"

// RedisStore persists records as JSON values in Redis, one key per plan.
type RedisStore struct {
	client *redis.Client
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection with a ping,
// retrying briefly if the server is still coming up.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	err := cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connecting to redis at %s", opts.Addr)
	}
	return &RedisStore{client: client}, nil
}

// Put stores a record.
func (s *RedisStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "encoding plan %s", rec.ID)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+rec.ID, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "storing plan %s", rec.ID)
	}
	return nil
}

// Get returns a record by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "loading plan %s", id)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "decoding plan %s", id)
	}
	return rec, nil
}

// List scans all plan keys and returns the records, newest first.
func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	var out []Record

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // deleted between scan and get
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "loading %s", iter.Val())
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decoding %s", iter.Val())
		}
		out = append(out, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "scanning plans")
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a record by ID.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "deleting plan %s", id)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
