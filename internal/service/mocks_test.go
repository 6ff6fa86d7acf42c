package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.UserID = "u1"
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

// ─────────────────────────────────────────────
// Fake: store.ProductRepository backed by a map
// ─────────────────────────────────────────────

type fakeProductRepository struct {
	products map[string]models.Product
	err      error
}

func newFakeProductRepository(products ...models.Product) *fakeProductRepository {
	r := &fakeProductRepository{products: map[string]models.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepository) FindProductByID(_ context.Context, id string) (models.Product, error) {
	if r.err != nil {
		return models.Product{}, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, store.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepository) FindProductByURL(_ context.Context, url string) (models.Product, error) {
	if r.err != nil {
		return models.Product{}, r.err
	}
	for _, p := range r.products {
		if p.URL == url {
			return p, nil
		}
	}
	return models.Product{}, store.ErrProductNotFound
}

func (r *fakeProductRepository) ListProducts(_ context.Context, limit int) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]models.Product, 0, limit)
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *fakeProductRepository) FindProductsByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────
// Fake: store.TrackingRepository in memory
// ─────────────────────────────────────────────

// memTrackingRepository keeps records in memory. AddTrackedProduct checks
// and inserts under one lock, like the unique constraint of the real stores.
type memTrackingRepository struct {
	mu      sync.Mutex
	records map[string]*models.TrackingRecord
}

func newMemTrackingRepository() *memTrackingRepository {
	return &memTrackingRepository{records: map[string]*models.TrackingRecord{}}
}

func (r *memTrackingRepository) AddTrackedProduct(_ context.Context, userID, email string, entry models.TrackedProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[userID]
	if !ok {
		rec = &models.TrackingRecord{UserID: userID, Email: email}
		r.records[userID] = rec
	}
	for _, e := range rec.TrackedProducts {
		if e.ProductID == entry.ProductID {
			return store.ErrAlreadyTracked
		}
	}
	rec.TrackedProducts = append(rec.TrackedProducts, entry)
	return nil
}

func (r *memTrackingRepository) UpdateTrackPrice(_ context.Context, userID, productID string, price float64, at time.Time) ([]models.TrackedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[userID]
	if !ok {
		return nil, store.ErrTrackedProductNotFound
	}
	for i := range rec.TrackedProducts {
		if rec.TrackedProducts[i].ProductID == productID {
			rec.TrackedProducts[i].TrackPrice = price
			rec.TrackedProducts[i].DateTracked = at
			rec.TrackedProducts[i].NotifiedAt = nil
			return slices.Clone(rec.TrackedProducts), nil
		}
	}
	return nil, store.ErrTrackedProductNotFound
}

func (r *memTrackingRepository) RemoveTrackedProduct(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[userID]
	if !ok {
		return store.ErrTrackingNotFound
	}
	for i, e := range rec.TrackedProducts {
		if e.ProductID == productID {
			rec.TrackedProducts = slices.Delete(rec.TrackedProducts, i, i+1)
			return nil
		}
	}
	return store.ErrTrackedProductNotFound
}

func (r *memTrackingRepository) GetTrackingRecord(_ context.Context, userID string) (models.TrackingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[userID]
	if !ok {
		return models.TrackingRecord{}, store.ErrTrackingNotFound
	}
	out := *rec
	out.TrackedProducts = slices.Clone(rec.TrackedProducts)
	return out, nil
}

func (r *memTrackingRepository) DueAlerts(context.Context, int) ([]models.PriceAlertCandidate, error) {
	return nil, nil
}

func (r *memTrackingRepository) MarkNotified(context.Context, string, string, time.Time) error {
	return nil
}
