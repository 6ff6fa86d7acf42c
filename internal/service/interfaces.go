package service

import (
	"context"

	"github.com/Anish-A1/pricewise/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login returns [ErrInvalidCredentials] both for an unknown email and
	// for a wrong password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TrackingService manages the products an account tracks and their target prices.
type TrackingService interface {
	// BeginTracking adds productID to the account of email with the current
	// product price as target and sends a confirmation email. When the email
	// cannot be sent the entry stays and [ErrNotificationFailed] is returned.
	BeginTracking(ctx context.Context, email, productID string) error
	UpdateTrackingPrice(ctx context.Context, userID, productID string, price float64) ([]models.TrackedProduct, error)
	StopTracking(ctx context.Context, userID, productID string) error
	// ListTracked never fails for an account without tracked products; it
	// returns an empty slice.
	ListTracked(ctx context.Context, userID string) ([]models.TrackedProductView, error)
	GetTrackPrice(ctx context.Context, userID, productID string) (float64, error)
}

// ProductService reads the catalog and derives chart and advisory data from it.
type ProductService interface {
	Lookup(ctx context.Context, url string) (models.Product, error)
	List(ctx context.Context, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, productID string) (models.Product, error)
	Window(ctx context.Context, productID string, offset int) (models.PriceWindow, error)
	Predict(ctx context.Context, productID string) (models.Advisory, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
