package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/validators"
	"github.com/Anish-A1/pricewise/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

// ParseToken accepts "good-token" as the credential of alice (u1) unless
// overridden.
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != "good-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{
		Claims:       models.Claims{UserID: "u1", Email: "alice@example.com", Name: "Alice"},
		SignedString: tokenString,
	}, nil
}

type mockTrackingService struct {
	beginFn  func(ctx context.Context, email, productID string) error
	updateFn func(ctx context.Context, userID, productID string, price float64) ([]models.TrackedProduct, error)
	stopFn   func(ctx context.Context, userID, productID string) error
	listFn   func(ctx context.Context, userID string) ([]models.TrackedProductView, error)
	priceFn  func(ctx context.Context, userID, productID string) (float64, error)
}

func (m *mockTrackingService) BeginTracking(ctx context.Context, email, productID string) error {
	return m.beginFn(ctx, email, productID)
}

func (m *mockTrackingService) UpdateTrackingPrice(ctx context.Context, userID, productID string, price float64) ([]models.TrackedProduct, error) {
	return m.updateFn(ctx, userID, productID, price)
}

func (m *mockTrackingService) StopTracking(ctx context.Context, userID, productID string) error {
	return m.stopFn(ctx, userID, productID)
}

func (m *mockTrackingService) ListTracked(ctx context.Context, userID string) ([]models.TrackedProductView, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTrackingService) GetTrackPrice(ctx context.Context, userID, productID string) (float64, error) {
	return m.priceFn(ctx, userID, productID)
}

type mockProductService struct {
	lookupFn  func(ctx context.Context, url string) (models.Product, error)
	listFn    func(ctx context.Context, limit int) ([]models.Product, error)
	getByIDFn func(ctx context.Context, productID string) (models.Product, error)
	windowFn  func(ctx context.Context, productID string, offset int) (models.PriceWindow, error)
	predictFn func(ctx context.Context, productID string) (models.Advisory, error)
}

func (m *mockProductService) Lookup(ctx context.Context, url string) (models.Product, error) {
	return m.lookupFn(ctx, url)
}

func (m *mockProductService) List(ctx context.Context, limit int) ([]models.Product, error) {
	return m.listFn(ctx, limit)
}

func (m *mockProductService) GetByID(ctx context.Context, productID string) (models.Product, error) {
	return m.getByIDFn(ctx, productID)
}

func (m *mockProductService) Window(ctx context.Context, productID string, offset int) (models.PriceWindow, error) {
	return m.windowFn(ctx, productID, offset)
}

func (m *mockProductService) Predict(ctx context.Context, productID string) (models.Advisory, error) {
	return m.predictFn(ctx, productID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testSettings = Settings{TokenDuration: time.Hour, RequestTimeout: 5 * time.Second}

// newTestHandler builds a Handler whose unset services are empty fn-field
// mocks.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.TrackingService == nil {
		svcs.TrackingService = &mockTrackingService{}
	}
	if svcs.ProductService == nil {
		svcs.ProductService = &mockProductService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, validators.NewRequestValidator(), testSettings, logger.Nop())
}

// serve runs a request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookie(token string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token}) }
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}
