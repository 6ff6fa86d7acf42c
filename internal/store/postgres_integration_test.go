//go:build integration

package store

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newPostgresStorages(t *testing.T) *Storages {
	t.Helper()
	s, _ := newPostgresStoragesWithDSN(t)
	return s
}

func newPostgresStoragesWithDSN(t *testing.T) (*Storages, string) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pricewise_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	return s, dsn
}

func TestPostgres_ConcurrentTrackingCreatesOneEntry(t *testing.T) {
	s := newPostgresStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		added    int
		rejected int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.TrackingRepository.AddTrackedProduct(ctx, user.UserID, user.Email, models.TrackedProduct{
				ProductID: "p1", DateTracked: time.Now().UTC(), TrackPrice: 1000,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				added++
			case assert.ErrorIs(t, err, ErrAlreadyTracked):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)
	assert.Equal(t, workers-1, rejected)

	record, err := s.TrackingRepository.GetTrackingRecord(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, record.TrackedProducts, 1)
}

func TestPostgres_UpdateRemoveRoundTrip(t *testing.T) {
	s := newPostgresStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	require.NoError(t, s.TrackingRepository.AddTrackedProduct(ctx, user.UserID, user.Email,
		models.TrackedProduct{ProductID: "p1", DateTracked: time.Now().UTC(), TrackPrice: 1000}))

	entries, err := s.TrackingRepository.UpdateTrackPrice(ctx, user.UserID, "p1", 800, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 800.0, entries[0].TrackPrice)

	require.NoError(t, s.TrackingRepository.RemoveTrackedProduct(ctx, user.UserID, "p1"))
	assert.ErrorIs(t, s.TrackingRepository.RemoveTrackedProduct(ctx, user.UserID, "p1"), ErrTrackedProductNotFound)

	_, err = s.ProductRepository.FindProductByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestPostgres_DueAlertsAfterPriceDrop(t *testing.T) {
	s, dsn := newPostgresStoragesWithDSN(t)
	ctx := context.Background()

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO products (product_id, url, name, current_price)
		VALUES ('p1', 'https://shop.example/p1', 'Kettle', 1000)`)
	require.NoError(t, err)

	user, err := s.UserRepository.CreateUser(ctx, models.User{Name: "Carol", Email: "carol@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.NoError(t, s.TrackingRepository.AddTrackedProduct(ctx, user.UserID, user.Email,
		models.TrackedProduct{ProductID: "p1", DateTracked: time.Now().UTC(), TrackPrice: 1000}))

	// tracked at the current price
	due, err := s.TrackingRepository.DueAlerts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// a target below the price is not reached either
	_, err = s.TrackingRepository.UpdateTrackPrice(ctx, user.UserID, "p1", 900, time.Now().UTC())
	require.NoError(t, err)
	due, err = s.TrackingRepository.DueAlerts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = db.ExecContext(ctx, `UPDATE products SET current_price = 850 WHERE product_id = 'p1'`)
	require.NoError(t, err)

	due, err = s.TrackingRepository.DueAlerts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, user.UserID, due[0].UserID)
	assert.Equal(t, 850.0, due[0].CurrentPrice)
	assert.Equal(t, 900.0, due[0].TrackPrice)

	require.NoError(t, s.TrackingRepository.MarkNotified(ctx, user.UserID, "p1", time.Now().UTC()))
	due, err = s.TrackingRepository.DueAlerts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, due)
}
