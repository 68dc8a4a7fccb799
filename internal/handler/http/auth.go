package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-map-places/internal/app"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	writeJSON(w, r, models.IDResponse{ID: registeredUser.UserID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := utils.ReadJSON(r, &credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		var fieldErr *validators.FieldError
		if errors.As(err, &fieldErr) {
			log.Debug().Err(err).Msg("login without email or password")
			writeJSON(w, r, models.ErrorResponse{
				Error:   app.ErrValidation,
				Message: app.MsgMissingLoginFields,
				Field:   fieldErr.Field,
			}, http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	credential, err := h.services.Authenticator.Issue(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Time("expires_at", credential.ExpiresAt).Msg("user logged in")

	h.carrier.attach(w, credential)
	writeJSON(w, r, h.carrier.loginBody(credential), http.StatusOK)
}

// logout is routed only when the active authenticator can revoke
// credentials, i.e. in session mode.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	revoker, ok := h.services.Authenticator.(service.Revoker)
	if !ok {
		writeError(w, r, ErrRouteNotFound)
		return
	}

	credential, err := h.carrier.extract(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = revoker.Revoke(ctx, credential); err != nil {
		writeError(w, r, err)
		return
	}

	h.carrier.clear(w)
	writeJSON(w, r, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}
