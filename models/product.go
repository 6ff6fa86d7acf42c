package models

// Product is a catalog item with its price history.
// It is populated by an external ingestion process and is read-only here.
type Product struct {
	// ID is the opaque identifier of the product.
	ID string `json:"_id"`

	// URL is the unique source page of the product.
	URL string `json:"url"`

	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"desc"`
	Website     string `json:"website"`

	CurrentPrice float64 `json:"currentPrice"`
	LowestPrice  float64 `json:"lowestPrice"`
	HighestPrice float64 `json:"highestPrice"`

	// Rating is nil when the source page has no rating.
	Rating *float64 `json:"rating"`

	// PriceVariations is the price history in chronological (insertion) order.
	PriceVariations []PriceSample `json:"priceVariations"`
}

// PriceSample is a single observed price.
// Date is kept in the textual form it was ingested with.
type PriceSample struct {
	Price float64 `json:"price" bson:"price"`
	Date  string  `json:"date" bson:"date"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
