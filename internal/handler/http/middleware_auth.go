// Package http implements the HTTP transport layer of go-map-places.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, metrics and
// compression are handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/utils"
)

// auth is an HTTP middleware that requires a valid credential.
//
// The credential is taken from the request by the handler's carrier (bearer
// header in token mode, session cookie in session mode) and resolved by
// [service.Authenticator]. On success the authenticated user id is stored in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - no credential is present ([service.ErrMissingToken]);
//   - the credential is malformed or its signature does not verify
//     ([service.ErrInvalidToken]);
//   - the credential has expired or its session is gone
//     ([service.ErrExpiredToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		credential, err := h.carrier.extract(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userID, err := h.services.Authenticator.Authenticate(ctx, credential)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = logger.WithUserID(ctx, userID)
		logger.FromContext(ctx).Debug().Msg("request authenticated")

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
