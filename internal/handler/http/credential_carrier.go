package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-map-places/internal/app"
	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
)

const (
	authorizationHeader = "Authorization"
	sessionCookieName   = "sessao"
)

// credentialCarrier moves a credential between the client and the server.
// Token mode uses the Authorization header, session mode a cookie.
type credentialCarrier interface {
	// extract returns the raw credential of r, or "" when there is none.
	extract(r *http.Request) (string, error)

	// attach hands a freshly issued credential to the client.
	attach(w http.ResponseWriter, credential models.Credential)

	// clear tells the client to forget its credential.
	clear(w http.ResponseWriter)

	// loginBody is the JSON body of a successful login.
	loginBody(credential models.Credential) any
}

func newCredentialCarrier(mode string, cfg config.App) credentialCarrier {
	if mode == config.AuthModeSession {
		return cookieCarrier{secure: cfg.SessionCookieSecure}
	}
	return bearerCarrier{}
}

type bearerCarrier struct{}

func (bearerCarrier) extract(r *http.Request) (string, error) {
	header := r.Header.Get(authorizationHeader)
	if header == "" {
		return "", nil
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrInvalidToken, err)
	}
	return token, nil
}

func (bearerCarrier) attach(w http.ResponseWriter, credential models.Credential) {
	w.Header().Set(authorizationHeader, "Bearer "+credential.Value)
}

func (bearerCarrier) clear(http.ResponseWriter) {}

func (bearerCarrier) loginBody(credential models.Credential) any {
	return models.TokenResponse{Token: credential.Value, ExpiresAt: credential.ExpiresAt}
}

type cookieCarrier struct {
	secure bool
}

func (c cookieCarrier) extract(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrInvalidToken, err)
	}
	return cookie.Value, nil
}

func (c cookieCarrier) attach(w http.ResponseWriter, credential models.Credential) {
	http.SetCookie(w, c.cookie(credential.Value, credential.ExpiresAt))
}

func (c cookieCarrier) clear(w http.ResponseWriter) {
	cookie := c.cookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (c cookieCarrier) loginBody(models.Credential) any {
	return models.MessageResponse{Message: app.MsgLoggedIn}
}

func (c cookieCarrier) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
