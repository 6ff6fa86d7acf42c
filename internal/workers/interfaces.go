// Package workers runs the background jobs of the application.
// It defines the Worker interface and a Workers aggregate that runs every
// configured worker until the context is cancelled.
package workers

import (
	"context"
	"time"

	"github.com/Anish-A1/pricewise/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker stopped by
// cancellation returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// AlertSource is the part of the tracking store the price alert worker
// needs.
type AlertSource interface {
	DueAlerts(ctx context.Context, limit int) ([]models.PriceAlertCandidate, error)
	MarkNotified(ctx context.Context, userID, productID string, at time.Time) error
}
