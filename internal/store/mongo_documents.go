package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anish-A1/pricewise/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		UserID:       d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

type productDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	URL             string               `bson:"url"`
	Name            string               `bson:"name"`
	Image           string               `bson:"image"`
	Description     string               `bson:"desc"`
	Website         string               `bson:"website"`
	CurrentPrice    float64              `bson:"currentPrice"`
	LowestPrice     float64              `bson:"lowestPrice"`
	HighestPrice    float64              `bson:"highestPrice"`
	Rating          *float64             `bson:"rating,omitempty"`
	PriceVariations []models.PriceSample `bson:"priceVariations"`
}

func (d productDocument) toModel() models.Product {
	variations := d.PriceVariations
	if variations == nil {
		variations = make([]models.PriceSample, 0)
	}

	return models.Product{
		ID:              d.ID.Hex(),
		URL:             d.URL,
		Name:            d.Name,
		Image:           d.Image,
		Description:     d.Description,
		Website:         d.Website,
		CurrentPrice:    d.CurrentPrice,
		LowestPrice:     d.LowestPrice,
		HighestPrice:    d.HighestPrice,
		Rating:          d.Rating,
		PriceVariations: variations,
	}
}

type trackedDocument struct {
	ID              primitive.ObjectID       `bson:"_id,omitempty"`
	UserID          primitive.ObjectID       `bson:"userId"`
	Email           string                   `bson:"email"`
	TrackedProducts []trackedProductDocument `bson:"trackedProducts"`
}

type trackedProductDocument struct {
	ProductID   primitive.ObjectID `bson:"productId"`
	DateTracked flexTime           `bson:"dateTracked"`
	TrackPrice  float64            `bson:"trackPrice"`
	NotifiedAt  *time.Time         `bson:"notifiedAt,omitempty"`
}

func (d trackedDocument) toModel() models.TrackingRecord {
	return models.TrackingRecord{
		UserID:          d.UserID.Hex(),
		Email:           d.Email,
		TrackedProducts: trackedProductsToModel(d.TrackedProducts),
	}
}

func trackedProductsToModel(docs []trackedProductDocument) []models.TrackedProduct {
	entries := make([]models.TrackedProduct, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, models.TrackedProduct{
			ProductID:   d.ProductID.Hex(),
			DateTracked: time.Time(d.DateTracked),
			TrackPrice:  d.TrackPrice,
			NotifiedAt:  d.NotifiedAt,
		})
	}
	return entries
}

// jsDateLayout is the output of JavaScript's Date.prototype.toString without
// the trailing zone name, e.g. "Tue Nov 05 2024 10:00:00 GMT+0000".
const jsDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

// flexTime is written as a BSON datetime. It also reads the string dates
// found in tracking documents created by the Node.js deployment: ISO 8601
// strings and Date.toString output.
type flexTime time.Time

func (t flexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(t))
}

func (t *flexTime) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: typ, Value: data}

	switch typ {
	case bson.TypeDateTime:
		*t = flexTime(raw.Time().UTC())
		return nil
	case bson.TypeNull:
		*t = flexTime{}
		return nil
	case bson.TypeString:
		parsed, err := parseFlexTime(raw.StringValue())
		if err != nil {
			return err
		}
		*t = flexTime(parsed)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into a date", typ)
	}
}

func parseFlexTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if i := strings.Index(s, " ("); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(jsDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t.UTC(), nil
}
