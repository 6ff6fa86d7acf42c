package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
)

// trackingRepository is the PostgreSQL-backed implementation of
// [TrackingRepository]. A tracking record is a row of "tracked" and its
// entries are rows of "tracked_products" ordered by their serial id.
type trackingRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTrackingRepository constructs a [TrackingRepository] backed by db.
func NewTrackingRepository(db *DB, logger *logger.Logger) TrackingRepository {
	logger.Debug().Msg("creating tracking repository")
	return &trackingRepository{
		db:     db,
		logger: logger,
	}
}

// AddTrackedProduct relies on the (user_id, product_id) unique constraint:
// a conflicting insert affects no rows and yields [ErrAlreadyTracked].
func (r *trackingRepository) AddTrackedProduct(ctx context.Context, userID, email string, entry models.TrackedProduct) error {
	log := logger.FromContext(ctx).With().Str("func", "*trackingRepository.AddTrackedProduct").Logger()

	err := r.db.inTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, insertTrackingRecord, userID, email); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, insertTrackedProduct, userID, entry.ProductID, entry.DateTracked, entry.TrackPrice)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrAlreadyTracked
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrAlreadyTracked) {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Msg("error adding tracked product")
	}

	return err
}

func (r *trackingRepository) UpdateTrackPrice(ctx context.Context, userID, productID string, price float64, at time.Time) ([]models.TrackedProduct, error) {
	log := logger.FromContext(ctx).With().Str("func", "*trackingRepository.UpdateTrackPrice").Logger()

	var entries []models.TrackedProduct
	err := r.db.inTx(ctx, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, updateTrackPrice, userID, productID, price, at)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrTrackedProductNotFound
		}

		entries, err = selectTrackedProducts(ctx, tx, userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTrackedProductNotFound) {
			log.Err(err).Msg("error updating track price")
		}
		return nil, err
	}

	return entries, nil
}

func (r *trackingRepository) RemoveTrackedProduct(ctx context.Context, userID, productID string) error {
	log := logger.FromContext(ctx).With().Str("func", "*trackingRepository.RemoveTrackedProduct").Logger()

	res, err := r.db.ExecContext(ctx, deleteTrackedProduct, userID, productID)
	if err != nil {
		log.Err(err).Msg("error deleting tracked product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, trackingRecordExists, userID).Scan(&exists); err != nil {
		log.Err(err).Msg("error checking tracking record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return ErrTrackingNotFound
	}

	return ErrTrackedProductNotFound
}

func (r *trackingRepository) GetTrackingRecord(ctx context.Context, userID string) (models.TrackingRecord, error) {
	log := logger.FromContext(ctx).With().Str("func", "*trackingRepository.GetTrackingRecord").Logger()

	var record models.TrackingRecord
	err := r.db.QueryRowContext(ctx, findTrackingRecord, userID).Scan(&record.UserID, &record.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TrackingRecord{}, ErrTrackingNotFound
	}
	if err != nil {
		log.Err(err).Msg("error selecting tracking record")
		return models.TrackingRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	record.TrackedProducts, err = selectTrackedProducts(ctx, r.db, userID)
	if err != nil {
		log.Err(err).Msg("error selecting tracked products")
		return models.TrackingRecord{}, err
	}

	return record, nil
}

func (r *trackingRepository) DueAlerts(ctx context.Context, limit int) ([]models.PriceAlertCandidate, error) {
	log := logger.FromContext(ctx).With().Str("func", "*trackingRepository.DueAlerts").Logger()

	rows, err := r.db.QueryContext(ctx, findDueAlerts, limit)
	if err != nil {
		log.Err(err).Msg("error selecting due alerts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	candidates := make([]models.PriceAlertCandidate, 0)
	for rows.Next() {
		var c models.PriceAlertCandidate
		if err := rows.Scan(&c.UserID, &c.Email, &c.Name, &c.ProductID, &c.ProductName, &c.ProductURL, &c.CurrentPrice, &c.TrackPrice); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return candidates, nil
}

func (r *trackingRepository) MarkNotified(ctx context.Context, userID, productID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, markNotified, userID, productID, at)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*trackingRepository.MarkNotified").Msg("error marking entry notified")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTrackedProductNotFound
	}

	return nil
}

func selectTrackedProducts(ctx context.Context, q DBTX, userID string) ([]models.TrackedProduct, error) {
	rows, err := q.QueryContext(ctx, findTrackedProducts, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TrackedProduct, 0)
	for rows.Next() {
		var (
			entry      models.TrackedProduct
			notifiedAt sql.NullTime
		)
		if err := rows.Scan(&entry.ProductID, &entry.DateTracked, &entry.TrackPrice, &notifiedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if notifiedAt.Valid {
			entry.NotifiedAt = &notifiedAt.Time
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
