package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/models"
)

type trackingService struct {
	userRepository     store.UserRepository
	productRepository  store.ProductRepository
	trackingRepository store.TrackingRepository
	mailer             adapter.Mailer

	now func() time.Time

	logger *logger.Logger
}

func NewTrackingService(
	users store.UserRepository,
	products store.ProductRepository,
	tracking store.TrackingRepository,
	mailer adapter.Mailer,
	logger *logger.Logger,
) TrackingService {
	return &trackingService{
		userRepository:     users,
		productRepository:  products,
		trackingRepository: tracking,
		mailer:             mailer,
		now:                func() time.Time { return time.Now().UTC() },
		logger:             logger,
	}
}

func (s *trackingService) BeginTracking(ctx context.Context, email, productID string) error {
	log := logger.FromContext(ctx).With().Str("func", "*trackingService.BeginTracking").Logger()

	email = NormalizeEmail(email)
	if email == "" || productID == "" {
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error finding account: %w", err)
	}
	product, err := s.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("error finding product: %w", err)
	}

	entry := models.TrackedProduct{
		ProductID:   product.ID,
		DateTracked: s.now(),
		TrackPrice:  product.CurrentPrice,
	}
	if err = s.trackingRepository.AddTrackedProduct(ctx, user.UserID, user.Email, entry); err != nil {
		return fmt.Errorf("error adding tracked product: %w", err)
	}
	log.Info().Str("user_id", user.UserID).Str("product_id", product.ID).Msg("tracking started")

	err = s.mailer.SendTrackingConfirmation(ctx, models.TrackingConfirmation{
		To:           user.Email,
		Name:         user.Name,
		ProductName:  product.Name,
		CurrentPrice: product.CurrentPrice,
	})
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("tracking confirmation was not sent")
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

// UpdateTrackingPrice accepts any finite price. It is not checked against
// the product's observed price range.
func (s *trackingService) UpdateTrackingPrice(ctx context.Context, userID, productID string, price float64) ([]models.TrackedProduct, error) {
	if userID == "" || productID == "" {
		return nil, ErrInvalidDataProvided
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, ErrInvalidPrice
	}

	entries, err := s.trackingRepository.UpdateTrackPrice(ctx, userID, productID, price, s.now())
	if err != nil {
		return nil, fmt.Errorf("error updating track price: %w", err)
	}

	return entries, nil
}

func (s *trackingService) StopTracking(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.trackingRepository.RemoveTrackedProduct(ctx, userID, productID); err != nil {
		return fmt.Errorf("error removing tracked product: %w", err)
	}

	return nil
}

// ListTracked joins the account's entries with their products, keeping entry
// order. Entries whose product no longer exists are skipped.
func (s *trackingService) ListTracked(ctx context.Context, userID string) ([]models.TrackedProductView, error) {
	log := logger.FromContext(ctx).With().Str("func", "*trackingService.ListTracked").Logger()

	views := make([]models.TrackedProductView, 0)

	record, err := s.trackingRepository.GetTrackingRecord(ctx, userID)
	if errors.Is(err, store.ErrTrackingNotFound) {
		return views, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting tracking record: %w", err)
	}
	if len(record.TrackedProducts) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(record.TrackedProducts))
	for _, e := range record.TrackedProducts {
		ids = append(ids, e.ProductID)
	}
	products, err := s.productRepository.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error getting tracked products: %w", err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, e := range record.TrackedProducts {
		product, ok := byID[e.ProductID]
		if !ok {
			log.Warn().Str("user_id", userID).Str("product_id", e.ProductID).Msg("tracked product no longer exists")
			continue
		}
		views = append(views, models.TrackedProductView{
			Product:     product,
			TrackPrice:  e.TrackPrice,
			DateTracked: e.DateTracked,
		})
	}

	return views, nil
}

func (s *trackingService) GetTrackPrice(ctx context.Context, userID, productID string) (float64, error) {
	if userID == "" || productID == "" {
		return 0, ErrInvalidDataProvided
	}

	record, err := s.trackingRepository.GetTrackingRecord(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error getting tracking record: %w", err)
	}

	for _, e := range record.TrackedProducts {
		if e.ProductID == productID {
			return e.TrackPrice, nil
		}
	}

	return 0, store.ErrTrackedProductNotFound
}
