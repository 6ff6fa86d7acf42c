package models

import "time"

// Prediction is a buy/wait label produced by the external classifier.
type Prediction string

const (
	PredictionSkip Prediction = "Skip"
	PredictionWait Prediction = "Wait"
	PredictionYes  Prediction = "Yes"
)

// Valid reports whether p is one of the known labels.
func (p Prediction) Valid() bool {
	switch p {
	case PredictionSkip, PredictionWait, PredictionYes:
		return true
	}
	return false
}

// Advisory is the user-facing interpretation of a Prediction.
type Advisory struct {
	ProductID  string     `json:"productId"`
	Prediction Prediction `json:"predictionType"`
	Message    string     `json:"message"`
	// BarWidth is the recommendation strength in percent.
	BarWidth int `json:"barWidth"`
}

// PriceWindow is a three-month slice of a product's price history.
type PriceWindow struct {
	Offset       int           `json:"offset"`
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Label        string        `json:"label"`
	Samples      []PriceSample `json:"samples"`
	YMin         float64       `json:"yMin"`
	YMax         float64       `json:"yMax"`
	CanGoBack    bool          `json:"canGoBack"`
	CanGoForward bool          `json:"canGoForward"`
}
