package http

import (
	"time"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/service"
)

const defaultLoginRateLimit = 10

type Handler struct {
	services *service.Services
	carrier  credentialCarrier
	metrics  *httpMetrics

	loginRateLimit int
	corsOrigins    []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	mode := config.AuthModeToken
	if services.Authenticator != nil {
		mode = services.Authenticator.Mode()
	}

	loginRateLimit := cfg.App.LoginRateLimit
	if loginRateLimit == 0 {
		loginRateLimit = defaultLoginRateLimit
	}

	logger.Info().Str("auth_mode", mode).Msg("http handler created")
	return &Handler{
		services:       services,
		carrier:        newCredentialCarrier(mode, cfg.App),
		metrics:        newHTTPMetrics(),
		loginRateLimit: loginRateLimit,
		corsOrigins:    cfg.App.CORSAllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
