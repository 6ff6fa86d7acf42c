package models

// MessageResponse is the generic body of informational and error replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// ProfileResponse is returned by GET /api/profile.
type ProfileResponse struct {
	Message string `json:"message"`
	User    Claims `json:"user"`
}

// UpdatedTrackingResponse is returned by a successful track price update.
type UpdatedTrackingResponse struct {
	Message                string           `json:"message"`
	UpdatedTrackedProducts []TrackedProduct `json:"updatedTrackedProducts"`
}

// TrackedProductsResponse is returned by GET /api/getTrackedProducts.
// Message is only set when nothing is tracked.
type TrackedProductsResponse struct {
	Message         string               `json:"message,omitempty"`
	TrackedProducts []TrackedProductView `json:"trackedProducts"`
}

// TrackPriceResponse is returned by POST /api/getTPrice.
type TrackPriceResponse struct {
	TrackPrice float64 `json:"trackPrice"`
	ProductID  string  `json:"productId"`
}
