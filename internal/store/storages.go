package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/utils"
)

// Storages aggregates the repositories of the selected backend.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	TrackingRepository TrackingRepository

	closers []func(ctx context.Context) error
}

// NewStorages connects the backend selected by the DSN scheme, applies its
// schema and wires the optional Redis product cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, err := cfg.DB.Backend()
	if err != nil {
		return nil, err
	}

	s := &Storages{}

	switch backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })

		if err := db.Migrate(); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}

		s.UserRepository = NewUserRepository(db, utils.NewUUIDGenerator(), log)
		s.ProductRepository = NewProductRepository(db, log)
		s.TrackingRepository = NewTrackingRepository(db, log)

	case config.BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		if err := db.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}

		s.UserRepository = NewMongoUserRepository(db.Database, log)
		s.ProductRepository = NewMongoProductRepository(db.Database, log)
		s.TrackingRepository = NewMongoTrackingRepository(db.Database, log)
	}

	if cfg.Cache.RedisAddress != "" {
		client, err := NewRedisClient(ctx, cfg.Cache, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("error connecting product cache: %w", err)
		}
		s.closers = append(s.closers, func(context.Context) error { return client.Close() })
		s.ProductRepository = NewCachedProductRepository(s.ProductRepository, client, cfg.Cache.TTL, log)
	}

	return s, nil
}

// Close releases every connection opened by NewStorages.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
