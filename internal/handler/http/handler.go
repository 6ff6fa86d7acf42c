package http

import (
	"time"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/service"
	"github.com/Anish-A1/pricewise/internal/validators"
)

// Settings holds the transport options taken from the application config.
type Settings struct {
	// SecureCookie marks the credential cookie Secure.
	SecureCookie bool
	// TokenDuration is the Max-Age of the credential cookie.
	TokenDuration time.Duration
	// RequestTimeout bounds every request. Zero disables the limit.
	RequestTimeout time.Duration
}

func SettingsFromConfig(cfg *config.StructuredConfig) Settings {
	return Settings{
		SecureCookie:   cfg.App.SecureCookie,
		TokenDuration:  cfg.App.TokenDuration,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	settings  Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		settings:  settings,
		logger:    logger,
	}
}
