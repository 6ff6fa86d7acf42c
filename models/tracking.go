package models

import "time"

// TrackingRecord is the per-account set of tracked products.
// A record is created on the first BeginTracking and is never deleted.
type TrackingRecord struct {
	UserID string `json:"userId"`
	// Email is a denormalized copy of the account email.
	Email           string           `json:"email"`
	TrackedProducts []TrackedProduct `json:"trackedProducts"`
}

// TrackedProduct is a single entry of a TrackingRecord.
type TrackedProduct struct {
	// ProductID is a weak reference: the product may disappear without
	// the entry being removed.
	ProductID   string    `json:"productId"`
	DateTracked time.Time `json:"dateTracked"`
	TrackPrice  float64   `json:"trackPrice"`

	// NotifiedAt is set when a price alert was sent for the current
	// target price. Internal bookkeeping of the alert worker.
	NotifiedAt *time.Time `json:"-"`
}

// TrackedProductView is a tracked entry joined with its product.
type TrackedProductView struct {
	Product     Product   `json:"productId"`
	TrackPrice  float64   `json:"trackPrice"`
	DateTracked time.Time `json:"dateTracked"`
}

// PriceAlertCandidate is a tracked entry whose product price has dropped
// below the target price and has not been notified yet.
type PriceAlertCandidate struct {
	UserID       string
	Email        string
	Name         string
	ProductID    string
	ProductName  string
	ProductURL   string
	CurrentPrice float64
	TrackPrice   float64
}

// Due reports whether the price is strictly below the target. An entry is
// created with the current price as its target, so it is not due until the
// price moves.
func (c PriceAlertCandidate) Due() bool {
	return c.CurrentPrice < c.TrackPrice
}
