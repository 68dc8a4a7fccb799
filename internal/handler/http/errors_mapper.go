package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-map-places/internal/app"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
)

// errorResponse is what a known sentinel error turns into on the wire.
type errorResponse struct {
	status  int
	kind    string
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidRequestBody: {http.StatusBadRequest, app.ErrValidation, app.MsgInvalidDataProvided},
	ErrInvalidGzipBody:    {http.StatusBadRequest, app.ErrValidation, app.MsgInvalidDataProvided},
	ErrRouteNotFound:      {http.StatusNotFound, app.ErrNotFound, app.MsgRouteNotFound},
	ErrMethodNotAllowed:   {http.StatusMethodNotAllowed, app.ErrMethodNotAllowed, app.MsgMethodNotAllowed},
	ErrTooManyRequests:    {http.StatusTooManyRequests, app.ErrTooManyRequests, app.MsgTooManyRequests},

	service.ErrMalformedID:        {http.StatusBadRequest, app.ErrMalformedID, app.MsgMalformedID},
	service.ErrForbidden:          {http.StatusForbidden, app.ErrForbidden, app.MsgAccessDenied},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.ErrInvalidCredentials, app.MsgInvalidCredentials},
	service.ErrMissingToken:       {http.StatusUnauthorized, app.ErrMissingToken, app.MsgTokenMissing},
	service.ErrInvalidToken:       {http.StatusUnauthorized, app.ErrInvalidToken, app.MsgTokenInvalid},
	service.ErrExpiredToken:       {http.StatusUnauthorized, app.ErrExpiredToken, app.MsgTokenExpired},
	service.ErrNoUsersFound:       {http.StatusNotFound, app.ErrNotFound, app.MsgNoUsersFound},
	service.ErrNoPlacesFound:      {http.StatusNotFound, app.ErrNotFound, app.MsgNoPlacesFound},
	service.ErrNoFavoritesFound:   {http.StatusNotFound, app.ErrNotFound, app.MsgNoFavoritesFound},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.ErrConflict, app.MsgEmailAlreadyExists},
	store.ErrUserNotFound:       {http.StatusNotFound, app.ErrNotFound, app.MsgUserNotFound},
	store.ErrPlaceNotFound:      {http.StatusNotFound, app.ErrNotFound, app.MsgPlaceNotFound},
	store.ErrFavoriteNotFound:   {http.StatusNotFound, app.ErrNotFound, app.MsgFavoriteNotFound},
	store.ErrReferenceNotFound:  {http.StatusNotFound, app.ErrNotFound, app.MsgReferenceNotFound},
}

// internalError is used for everything errorStatusMap does not know,
// including every low-level store failure.
var internalError = errorResponse{http.StatusInternalServerError, app.ErrStore, app.MsgInternalServerError}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalError
}

// errorBody builds the JSON body for err. Field validation failures name the
// offending field in "campo".
func errorBody(err error) (int, models.ErrorResponse) {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		message := app.MsgInvalidField
		if fieldErr.Missing() {
			message = app.MsgMissingField
		}
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   app.ErrValidation,
			Message: message + ": " + fieldErr.Field,
			Field:   fieldErr.Field,
		}
	}

	resp := responseFromError(err)
	return resp.status, models.ErrorResponse{Error: resp.kind, Message: resp.message}
}

// writeError logs err with the request-scoped logger and writes its JSON
// representation. The error text itself never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := errorBody(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeJSON writes a success body and logs write failures.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
