package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoTrackingRepository is the MongoDB-backed implementation of
// [TrackingRepository]. One document per account holds the ordered entry
// array; the unique userId index backs the conditional insert.
type mongoTrackingRepository struct {
	tracked *mongo.Collection
	logger  *logger.Logger
}

func NewMongoTrackingRepository(db *mongo.Database, logger *logger.Logger) TrackingRepository {
	logger.Debug().Msg("creating mongo tracking repository")
	return &mongoTrackingRepository{
		tracked: db.Collection(trackedCollection),
		logger:  logger,
	}
}

// AddTrackedProduct pushes the entry only when no entry for the product
// exists. If the record exists and already holds the product the filter
// does not match, the upsert collides with the unique userId index and
// the duplicate key error becomes [ErrAlreadyTracked].
func (r *mongoTrackingRepository) AddTrackedProduct(ctx context.Context, userID, email string, entry models.TrackedProduct) error {
	uid, err := objectID(userID)
	if err != nil {
		return err
	}
	pid, err := objectID(entry.ProductID)
	if err != nil {
		return err
	}

	filter := bson.M{
		"userId":                    uid,
		"trackedProducts.productId": bson.M{"$ne": pid},
	}
	update := bson.M{
		"$push": bson.M{"trackedProducts": trackedProductDocument{
			ProductID:   pid,
			DateTracked: flexTime(entry.DateTracked),
			TrackPrice:  entry.TrackPrice,
		}},
		"$setOnInsert": bson.M{"email": email},
	}

	_, err = r.tracked.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyTracked
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTrackingRepository.AddTrackedProduct").Msg("error adding tracked product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateTrackPrice updates the matched array element with the positional
// operator and returns the document after the update.
func (r *mongoTrackingRepository) UpdateTrackPrice(ctx context.Context, userID, productID string, price float64, at time.Time) ([]models.TrackedProduct, error) {
	uid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	pid, err := objectID(productID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"userId": uid, "trackedProducts.productId": pid}
	update := bson.M{
		"$set": bson.M{
			"trackedProducts.$.trackPrice":  price,
			"trackedProducts.$.dateTracked": at,
		},
		"$unset": bson.M{"trackedProducts.$.notifiedAt": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc trackedDocument
	err = r.tracked.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTrackedProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTrackingRepository.UpdateTrackPrice").Msg("error updating track price")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return trackedProductsToModel(doc.TrackedProducts), nil
}

func (r *mongoTrackingRepository) RemoveTrackedProduct(ctx context.Context, userID, productID string) error {
	uid, err := objectID(userID)
	if err != nil {
		return err
	}
	pid, err := objectID(productID)
	if err != nil {
		return err
	}

	res, err := r.tracked.UpdateOne(ctx,
		bson.M{"userId": uid},
		bson.M{"$pull": bson.M{"trackedProducts": bson.M{"productId": pid}}},
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTrackingRepository.RemoveTrackedProduct").Msg("error removing tracked product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if res.MatchedCount == 0 {
		return ErrTrackingNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrTrackedProductNotFound
	}

	return nil
}

func (r *mongoTrackingRepository) GetTrackingRecord(ctx context.Context, userID string) (models.TrackingRecord, error) {
	uid, err := objectID(userID)
	if err != nil {
		return models.TrackingRecord{}, err
	}

	var doc trackedDocument
	err = r.tracked.FindOne(ctx, bson.M{"userId": uid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TrackingRecord{}, ErrTrackingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTrackingRepository.GetTrackingRecord").Msg("error finding tracking record")
		return models.TrackingRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

type dueAlertDocument struct {
	UserID       string  `bson:"userId"`
	Email        string  `bson:"email"`
	Name         string  `bson:"name"`
	ProductID    string  `bson:"productId"`
	ProductName  string  `bson:"productName"`
	ProductURL   string  `bson:"productUrl"`
	CurrentPrice float64 `bson:"currentPrice"`
	TrackPrice   float64 `bson:"trackPrice"`
}

// DueAlerts unwinds the entry arrays and joins products and users.
func (r *mongoTrackingRepository) DueAlerts(ctx context.Context, limit int) ([]models.PriceAlertCandidate, error) {
	log := logger.FromContext(ctx).With().Str("func", "*mongoTrackingRepository.DueAlerts").Logger()

	cursor, err := r.tracked.Aggregate(ctx, dueAlertsPipeline(limit))
	if err != nil {
		log.Err(err).Msg("error aggregating due alerts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []dueAlertDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Err(err).Msg("error decoding due alerts")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	candidates := make([]models.PriceAlertCandidate, 0, len(docs))
	for _, d := range docs {
		candidates = append(candidates, models.PriceAlertCandidate(d))
	}
	return candidates, nil
}

// dueAlertsPipeline unwinds the entry arrays, keeps entries without
// notifiedAt whose product price is strictly below the target, and joins the
// owning user.
func dueAlertsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$trackedProducts"}},
		{{Key: "$match", Value: bson.M{"trackedProducts.notifiedAt": bson.M{"$exists": false}}}},
		{{Key: "$lookup", Value: bson.M{
			"from": productsCollection, "localField": "trackedProducts.productId", "foreignField": "_id", "as": "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$match", Value: bson.M{"$expr": bson.M{"$lt": bson.A{"$product.currentPrice", "$trackedProducts.trackPrice"}}}}},
		{{Key: "$lookup", Value: bson.M{
			"from": usersCollection, "localField": "userId", "foreignField": "_id", "as": "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"userId":       bson.M{"$toString": "$userId"},
			"email":        "$email",
			"name":         bson.M{"$ifNull": bson.A{"$user.name", ""}},
			"productId":    bson.M{"$toString": "$trackedProducts.productId"},
			"productName":  "$product.name",
			"productUrl":   "$product.url",
			"currentPrice": "$product.currentPrice",
			"trackPrice":   "$trackedProducts.trackPrice",
		}}},
	}
}

func (r *mongoTrackingRepository) MarkNotified(ctx context.Context, userID, productID string, at time.Time) error {
	uid, err := objectID(userID)
	if err != nil {
		return err
	}
	pid, err := objectID(productID)
	if err != nil {
		return err
	}

	res, err := r.tracked.UpdateOne(ctx,
		bson.M{"userId": uid, "trackedProducts.productId": pid},
		bson.M{"$set": bson.M{"trackedProducts.$.notifiedAt": at}},
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoTrackingRepository.MarkNotified").Msg("error marking entry notified")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if res.MatchedCount == 0 {
		return ErrTrackedProductNotFound
	}

	return nil
}
