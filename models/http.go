package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TrackRequest is the body of POST /api/track.
type TrackRequest struct {
	Email     string `json:"email" validate:"required,email"`
	ProductID string `json:"productId" validate:"required"`
}

// TrackPriceRequest is the body of POST /api/updateTrackingPrice.
// TrackPrice is a pointer so that a missing value can be told apart from zero.
type TrackPriceRequest struct {
	UserID     string   `json:"userId" validate:"required"`
	ProductID  string   `json:"productId" validate:"required"`
	TrackPrice *float64 `json:"trackPrice" validate:"required,finite"`
}

// TrackedProductRequest is the body of POST /api/untrackProduct and
// POST /api/getTPrice.
type TrackedProductRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}
