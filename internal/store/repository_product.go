package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
)

// productRepository is the PostgreSQL-backed implementation of [ProductRepository].
type productRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) FindProductByID(ctx context.Context, productID string) (models.Product, error) {
	return r.findOne(ctx, "*productRepository.FindProductByID", findProductByID, productID)
}

func (r *productRepository) FindProductByURL(ctx context.Context, url string) (models.Product, error) {
	return r.findOne(ctx, "*productRepository.FindProductByURL", findProductByURL, url)
}

func (r *productRepository) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	query, args, err := buildListProductsQuery(limit)
	if err != nil {
		return nil, err
	}

	return r.findMany(ctx, "*productRepository.ListProducts", query, args...)
}

func (r *productRepository) FindProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	query, args, err := buildProductsByIDsQuery(ids)
	if err != nil {
		return nil, err
	}

	return r.findMany(ctx, "*productRepository.FindProductsByIDs", query, args...)
}

func (r *productRepository) findOne(ctx context.Context, funcName, query, arg string) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting product")
		return models.Product{}, err
	}

	return product, nil
}

func (r *productRepository) findMany(ctx context.Context, funcName, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning product")
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating products")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads a row in productColumns order. sql.ErrNoRows is
// returned unwrapped.
func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p          models.Product
		rating     sql.NullFloat64
		variations []byte
	)

	err := row.Scan(&p.ID, &p.URL, &p.Name, &p.Image, &p.Description, &p.Website,
		&p.CurrentPrice, &p.LowestPrice, &p.HighestPrice, &rating, &variations)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if rating.Valid {
		p.Rating = &rating.Float64
	}

	p.PriceVariations = make([]models.PriceSample, 0)
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &p.PriceVariations); err != nil {
			return models.Product{}, fmt.Errorf("%w: price_variations: %w", ErrDecodingDocument, err)
		}
	}

	return p, nil
}
