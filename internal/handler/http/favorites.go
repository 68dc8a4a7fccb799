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

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var favorite models.Favorite
	if err := utils.ReadJSON(r, &favorite); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	stored, result, err := h.services.FavoriteService.AddFavorite(r.Context(), favorite)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result == models.FavoriteAlreadyExists {
		writeJSON(w, r, models.MessageResponse{Message: app.MsgFavoriteAlreadyExists}, http.StatusOK)
		return
	}

	logger.FromRequest(r).Info().
		Str("user_id", stored.UserID).
		Str("place_id", stored.PlaceID).
		Msg("favorite added")
	writeJSON(w, r, stored, http.StatusCreated)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	places, err := h.services.FavoriteService.ListFavorites(r.Context(), chi.URLParam(r, "usuario_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, places, http.StatusOK)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "usuario_id")
	placeID := chi.URLParam(r, "local_id")

	if err := h.services.FavoriteService.DeleteFavorite(r.Context(), userID, placeID); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StatusResponse{Status: app.StatusRemoved}, http.StatusOK)
}
