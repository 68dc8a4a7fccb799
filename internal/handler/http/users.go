package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-map-places/internal/app"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/utils"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/go-chi/chi/v5"
)

const updateResultHeader = "X-Update-Result"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, _ := utils.GetUserIDFromContext(ctx)

	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	user.UserID = chi.URLParam(r, "id")

	updatedUser, result, err := h.services.UserService.UpdateUser(ctx, actorID, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("user_id", updatedUser.UserID).
		Stringer("result", result).
		Msg("user update processed")

	writeUpdateResult(w, r, updatedUser, result)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID, _ := utils.GetUserIDFromContext(ctx)
	userID := chi.URLParam(r, "id")

	if err := h.services.UserService.DeleteUser(ctx, actorID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("user deleted")
	writeJSON(w, r, models.StatusResponse{Status: app.StatusRemoved}, http.StatusOK)
}

// writeUpdateResult answers a full-replace update. An update that changed
// nothing still succeeds but says so in the body and in X-Update-Result.
func writeUpdateResult(w http.ResponseWriter, r *http.Request, record any, result models.UpdateResult) {
	w.Header().Set(updateResultHeader, result.String())

	if result == models.UpdateResultUnchanged {
		writeJSON(w, r, models.UnchangedResponse{Message: app.MsgNoChanges, Record: record}, http.StatusOK)
		return
	}
	writeJSON(w, r, record, http.StatusOK)
}
