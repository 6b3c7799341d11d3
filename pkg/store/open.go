package store

import (
	"context"

	"github.com/jwinther/homeplan/pkg/config"
	"github.com/jwinther/homeplan/pkg/errors"
)

// Open creates the store backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "mongo":
		return NewMongoStore(ctx, MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
}
