package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Mock ───────────────────────────────────────────────────────────────────

type mockRedisClient struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{data: map[string]string{}}
}

func (m *mockRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockRedisClient) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.sets++
	if m.setErr != nil {
		return redis.NewStatusResult("", m.setErr)
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

type mockProductRepository struct {
	FindProductByIDFn   func(ctx context.Context, id string) (models.Product, error)
	FindProductByURLFn  func(ctx context.Context, url string) (models.Product, error)
	ListProductsFn      func(ctx context.Context, limit int) ([]models.Product, error)
	FindProductsByIDsFn func(ctx context.Context, ids []string) ([]models.Product, error)
	calls               int
}

func (m *mockProductRepository) FindProductByID(ctx context.Context, id string) (models.Product, error) {
	m.calls++
	if m.FindProductByIDFn != nil {
		return m.FindProductByIDFn(ctx, id)
	}
	return models.Product{}, ErrProductNotFound
}

func (m *mockProductRepository) FindProductByURL(ctx context.Context, url string) (models.Product, error) {
	m.calls++
	if m.FindProductByURLFn != nil {
		return m.FindProductByURLFn(ctx, url)
	}
	return models.Product{}, ErrProductNotFound
}

func (m *mockProductRepository) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	m.calls++
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockProductRepository) FindProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	m.calls++
	if m.FindProductsByIDsFn != nil {
		return m.FindProductsByIDsFn(ctx, ids)
	}
	return nil, nil
}

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestCachedProductRepository_MissThenHit(t *testing.T) {
	client := newMockRedisClient()
	next := &mockProductRepository{
		FindProductByURLFn: func(_ context.Context, url string) (models.Product, error) {
			return models.Product{ID: "p1", URL: url, CurrentPrice: 999}, nil
		},
	}
	repo := NewCachedProductRepository(next, client, time.Minute, logger.Nop())

	first, err := repo.FindProductByURL(context.Background(), "https://shop/item")
	require.NoError(t, err)
	second, err := repo.FindProductByURL(context.Background(), "https://shop/item")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)
	assert.Contains(t, client.data, "product:url:https://shop/item")
}

func TestCachedProductRepository_NotFoundIsNotCached(t *testing.T) {
	client := newMockRedisClient()
	next := &mockProductRepository{}
	repo := NewCachedProductRepository(next, client, time.Minute, logger.Nop())

	_, err := repo.FindProductByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, client.sets)
}

func TestCachedProductRepository_RedisDown(t *testing.T) {
	client := newMockRedisClient()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("connection refused")
	next := &mockProductRepository{
		FindProductByIDFn: func(_ context.Context, id string) (models.Product, error) {
			return models.Product{ID: id}, nil
		},
	}
	repo := NewCachedProductRepository(next, client, time.Minute, logger.Nop())

	product, err := repo.FindProductByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
}

func TestCachedProductRepository_CorruptedEntry(t *testing.T) {
	client := newMockRedisClient()
	client.data[productIDKey("p1")] = "{not json"
	next := &mockProductRepository{
		FindProductByIDFn: func(_ context.Context, id string) (models.Product, error) {
			return models.Product{ID: id, Name: "fresh"}, nil
		},
	}
	repo := NewCachedProductRepository(next, client, time.Minute, logger.Nop())

	product, err := repo.FindProductByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "fresh", product.Name)

	var cached models.Product
	require.NoError(t, json.Unmarshal([]byte(client.data[productIDKey("p1")]), &cached))
	assert.Equal(t, "fresh", cached.Name)
}

func TestCachedProductRepository_ListsBypassCache(t *testing.T) {
	client := newMockRedisClient()
	next := &mockProductRepository{
		ListProductsFn: func(_ context.Context, limit int) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}
	repo := NewCachedProductRepository(next, client, time.Minute, logger.Nop())

	products, err := repo.ListProducts(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = repo.FindProductsByIDs(context.Background(), []string{"p1"})
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
	assert.Zero(t, client.sets)
}
