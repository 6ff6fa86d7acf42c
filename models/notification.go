package models

// TrackingConfirmation is the message sent when a user starts tracking a product.
type TrackingConfirmation struct {
	To           string
	Name         string
	ProductName  string
	CurrentPrice float64
}

// PriceAlert is the message sent when a product's current price reaches
// the user's tracking price.
type PriceAlert struct {
	To           string
	Name         string
	ProductName  string
	ProductURL   string
	CurrentPrice float64
	TrackPrice   float64
}
