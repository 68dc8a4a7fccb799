package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService serves the version reported by GET /version. The value
// comes from APP_VERSION or, when unset, from the build-time ldflags.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Str("auth_mode", cfg.AuthMode).Msg("app info service created")
	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
