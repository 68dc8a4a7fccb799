package service

import (
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/validators"
)

type Services struct {
	AuthService     AuthService
	Authenticator   Authenticator
	UserService     UserService
	PlaceService    PlaceService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

// NewServices wires every service on top of storages. Request validation is
// layered over the core services with the *ValidationService wrappers.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authenticator, err := NewAuthenticator(cfg.App, storages.SessionStore, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		Authenticator: authenticator,
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, cfg.App, logger)),
		PlaceService: NewPlaceValidationService(validator).
			Wrap(NewPlaceService(storages.PlaceRepository, logger)),
		FavoriteService: NewFavoriteValidationService(validator).
			Wrap(NewFavoriteService(storages.FavoriteRepository, storages.UserRepository, storages.PlaceRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
