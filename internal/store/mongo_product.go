package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoProductRepository is the MongoDB-backed implementation of [ProductRepository].
type mongoProductRepository struct {
	products *mongo.Collection
	logger   *logger.Logger
}

func NewMongoProductRepository(db *mongo.Database, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating mongo product repository")
	return &mongoProductRepository{
		products: db.Collection(productsCollection),
		logger:   logger,
	}
}

func (r *mongoProductRepository) FindProductByID(ctx context.Context, productID string) (models.Product, error) {
	id, err := objectID(productID)
	if err != nil {
		return models.Product{}, err
	}
	return r.findOne(ctx, "*mongoProductRepository.FindProductByID", bson.M{"_id": id})
}

func (r *mongoProductRepository) FindProductByURL(ctx context.Context, url string) (models.Product, error) {
	return r.findOne(ctx, "*mongoProductRepository.FindProductByURL", bson.M{"url": url})
}

func (r *mongoProductRepository) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrBuildingSQLQuery)
	}

	opts := options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "_id", Value: 1}})
	return r.find(ctx, "*mongoProductRepository.ListProducts", bson.M{}, opts)
}

// FindProductsByIDs skips ids that are not valid ObjectIDs.
func (r *mongoProductRepository) FindProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []models.Product{}, nil
	}

	return r.find(ctx, "*mongoProductRepository.FindProductsByIDs", bson.M{"_id": bson.M{"$in": oids}})
}

func (r *mongoProductRepository) findOne(ctx context.Context, funcName string, filter bson.M) (models.Product, error) {
	var doc productDocument
	err := r.products.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoProductRepository) find(ctx context.Context, funcName string, filter bson.M, opts ...*options.FindOptions) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.products.Find(ctx, filter, opts...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", funcName).Msg("error decoding products")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}
