package store

import (
	"context"
	"time"

	"github.com/Anish-A1/pricewise/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts the account and returns it with server-assigned
	// fields. Email uniqueness violations return [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ProductRepository reads the product catalog. Products are written by an
// external ingestion process.
type ProductRepository interface {
	FindProductByID(ctx context.Context, productID string) (models.Product, error)
	FindProductByURL(ctx context.Context, url string) (models.Product, error)
	// ListProducts returns up to limit products in catalog order.
	ListProducts(ctx context.Context, limit int) ([]models.Product, error)
	// FindProductsByIDs returns the existing products among ids, in no
	// particular order. Missing ids are silently skipped.
	FindProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

// TrackingRepository persists per-account tracking records.
type TrackingRepository interface {
	// AddTrackedProduct appends entry to the account's record, creating the
	// record if absent. The check and the insert are a single atomic step:
	// when the product is already tracked [ErrAlreadyTracked] is returned
	// and nothing is written.
	AddTrackedProduct(ctx context.Context, userID, email string, entry models.TrackedProduct) error

	// UpdateTrackPrice sets the target price and the tracking date of one
	// entry and re-arms its price alert. It returns the updated entry list.
	UpdateTrackPrice(ctx context.Context, userID, productID string, price float64, at time.Time) ([]models.TrackedProduct, error)

	// RemoveTrackedProduct deletes one entry. The record itself is kept.
	RemoveTrackedProduct(ctx context.Context, userID, productID string) error

	// GetTrackingRecord returns [ErrTrackingNotFound] when the account never
	// tracked anything.
	GetTrackingRecord(ctx context.Context, userID string) (models.TrackingRecord, error)

	// DueAlerts returns up to limit entries whose product price is strictly
	// below the target price and which were not notified yet. A new entry
	// targets the price it was tracked at, so it is not due until the price
	// drops or the target is raised.
	DueAlerts(ctx context.Context, limit int) ([]models.PriceAlertCandidate, error)

	// MarkNotified records that a price alert was sent for the entry.
	MarkNotified(ctx context.Context, userID, productID string, at time.Time) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
