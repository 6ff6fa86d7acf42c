package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/history"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/models"
)

const (
	DefaultProductListLimit = 10
	MaxProductListLimit     = 50
)

// advisories maps every known prediction to its user-facing advice.
var advisories = map[models.Prediction]models.Advisory{
	models.PredictionSkip: {
		Prediction: models.PredictionSkip,
		Message:    "This is not the right time to buy. Prices are likely to drop soon.",
		BarWidth:   5,
	},
	models.PredictionWait: {
		Prediction: models.PredictionWait,
		Message:    "Hold on! Prices might stabilize or drop further. Consider waiting.",
		BarWidth:   50,
	},
	models.PredictionYes: {
		Prediction: models.PredictionYes,
		Message:    "Now is the best time to buy! Prices are unlikely to decrease further.",
		BarWidth:   100,
	},
}

type productService struct {
	productRepository store.ProductRepository
	classifier        adapter.Classifier

	logger *logger.Logger
}

func NewProductService(products store.ProductRepository, classifier adapter.Classifier, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: products,
		classifier:        classifier,
		logger:            logger,
	}
}

func (s *productService) Lookup(ctx context.Context, url string) (models.Product, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.productRepository.FindProductByURL(ctx, url)
	if err != nil {
		return models.Product{}, fmt.Errorf("error finding product by url: %w", err)
	}
	return product, nil
}

// List returns the first products of the catalog. A non-positive limit
// means [DefaultProductListLimit]; larger limits are capped at
// [MaxProductListLimit].
func (s *productService) List(ctx context.Context, limit int) ([]models.Product, error) {
	switch {
	case limit <= 0:
		limit = DefaultProductListLimit
	case limit > MaxProductListLimit:
		limit = MaxProductListLimit
	}

	products, err := s.productRepository.ListProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	if products == nil {
		products = make([]models.Product, 0)
	}
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("error finding product: %w", err)
	}
	return product, nil
}

func (s *productService) Window(ctx context.Context, productID string, offset int) (models.PriceWindow, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return models.PriceWindow{}, err
	}

	return history.SelectWindow(product.PriceVariations, offset)
}

// Predict asks the classifier about the product's full price history.
// Any classifier failure is reported as [ErrPredictionUnavailable].
func (s *productService) Predict(ctx context.Context, productID string) (models.Advisory, error) {
	log := logger.FromContext(ctx).With().Str("func", "*productService.Predict").Logger()

	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return models.Advisory{}, err
	}
	if len(product.PriceVariations) == 0 {
		return models.Advisory{}, history.ErrNoSamples
	}

	prediction, err := s.classifier.Predict(ctx, product.PriceVariations)
	if err != nil {
		log.Err(err).Str("product_id", productID).Msg("prediction failed")
		return models.Advisory{}, fmt.Errorf("%w: %w", ErrPredictionUnavailable, err)
	}

	advisory, ok := advisories[prediction]
	if !ok {
		return models.Advisory{}, fmt.Errorf("%w: %q", ErrPredictionUnavailable, prediction)
	}
	advisory.ProductID = product.ID

	return advisory, nil
}

