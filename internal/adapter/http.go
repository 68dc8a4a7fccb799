package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/go-resty/resty/v2"
)

const sessionCookieName = "sessao"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and configures the
// underlying client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClientFor(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the user to /usuarios and returns the created id.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	var created models.IDResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post("/usuarios/")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

// Login POSTs the credentials to /login. A token body is stored for later
// requests; otherwise the response must have set the session cookie.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	var issued models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&issued).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if issued.Token != "" {
		h.SetToken(issued.Token)
		h.logger.Debug().Time("expires_at", issued.ExpiresAt).Msg("bearer token stored")
		return nil
	}

	if hasCookie(resp.Cookies(), sessionCookieName) {
		h.logger.Debug().Msg("session cookie stored")
		return nil
	}

	return ErrNoCredential
}

// ListPlaces GETs /locais with the non-empty filter fields as query params.
func (h *httpServerAdapter) ListPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.Place, error) {
	var places []models.Place

	req := h.authedRequest(ctx).SetResult(&places)
	if filter.Type != "" {
		req.SetQueryParam("tipo", filter.Type)
	}
	if filter.NamePrefix != "" {
		req.SetQueryParam("nome", filter.NamePrefix)
	}

	resp, err := req.Get("/locais/")
	if err != nil {
		return nil, fmt.Errorf("list places request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return places, nil
}

// Locations GETs the public marker feed.
func (h *httpServerAdapter) Locations(ctx context.Context) ([]models.Marker, error) {
	markers := []models.Marker{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&markers).
		Get("/locations")
	if err != nil {
		return nil, fmt.Errorf("locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return markers, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func hasCookie(cookies []*http.Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name && c.Value != "" {
			return true
		}
	}
	return false
}
