package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client used by the product cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedProductRepository is a read-through cache in front of a
// [ProductRepository]. Single product lookups are cached, lists are not.
// Redis failures degrade to the wrapped repository.
type cachedProductRepository struct {
	next   ProductRepository
	client RedisClient
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient connects to the product cache.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting to redis")
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("addr", cfg.RedisAddress).Msg("connected to product cache")

	return client, nil
}

// NewCachedProductRepository wraps next with a Redis read-through cache.
func NewCachedProductRepository(next ProductRepository, client RedisClient, ttl time.Duration, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating cached product repository")
	return &cachedProductRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func productIDKey(id string) string {
	return "product:id:" + id
}

func productURLKey(url string) string {
	return "product:url:" + url
}

func (c *cachedProductRepository) FindProductByID(ctx context.Context, productID string) (models.Product, error) {
	return c.readThrough(ctx, productIDKey(productID), func() (models.Product, error) {
		return c.next.FindProductByID(ctx, productID)
	})
}

func (c *cachedProductRepository) FindProductByURL(ctx context.Context, url string) (models.Product, error) {
	return c.readThrough(ctx, productURLKey(url), func() (models.Product, error) {
		return c.next.FindProductByURL(ctx, url)
	})
}

func (c *cachedProductRepository) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return c.next.ListProducts(ctx, limit)
}

func (c *cachedProductRepository) FindProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	return c.next.FindProductsByIDs(ctx, ids)
}

func (c *cachedProductRepository) readThrough(ctx context.Context, key string, load func() (models.Product, error)) (models.Product, error) {
	log := logger.FromContext(ctx).With().Str("func", "*cachedProductRepository.readThrough").Str("key", key).Logger()

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var product models.Product
		if err := json.Unmarshal(data, &product); err == nil {
			log.Debug().Msg("product cache hit")
			return product, nil
		}
		log.Warn().Msg("corrupted product cache entry")
	case errors.Is(err, redis.Nil):
		log.Debug().Msg("product cache miss")
	default:
		log.Warn().Err(err).Msg("product cache unavailable")
	}

	product, err := load()
	if err != nil {
		return models.Product{}, err
	}

	payload, err := json.Marshal(product)
	if err != nil {
		return product, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("error writing product cache")
	}

	return product, nil
}
