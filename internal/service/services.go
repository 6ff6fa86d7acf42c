package service

import (
	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/store"
	"github.com/Anish-A1/pricewise/models"
)

type Services struct {
	AuthService     AuthService
	TrackingService TrackingService
	ProductService  ProductService
	AppInfoService  AppInfoService
}

// Adapters groups the outbound clients the services depend on.
type Adapters struct {
	Classifier adapter.Classifier
	Mailer     adapter.Mailer
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		TrackingService: NewTrackingService(
			storages.UserRepository,
			storages.ProductRepository,
			storages.TrackingRepository,
			adapters.Mailer,
			logger,
		),
		ProductService: NewProductService(storages.ProductRepository, adapters.Classifier, logger),
		AppInfoService: appInfo,
	}, nil
}
