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

// Query parameters accepted by GET /locais.
const (
	placeTypeParam = "tipo"
	placeNameParam = "nome"
)

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PlaceFilter{
		Type:       query.Get(placeTypeParam),
		NamePrefix: query.Get(placeNameParam),
	}

	places, err := h.services.PlaceService.ListPlaces(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, places, http.StatusOK)
}

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := utils.ReadJSON(r, &place); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	createdPlace, err := h.services.PlaceService.CreatePlace(r.Context(), place)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("place_id", createdPlace.PlaceID).Msg("place created")
	writeJSON(w, r, models.IDResponse{ID: createdPlace.PlaceID}, http.StatusCreated)
}

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.services.PlaceService.GetPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, place, http.StatusOK)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := utils.ReadJSON(r, &place); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	place.PlaceID = chi.URLParam(r, "id")

	updatedPlace, result, err := h.services.PlaceService.UpdatePlace(r.Context(), place)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeUpdateResult(w, r, updatedPlace, result)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	if err := h.services.PlaceService.DeletePlace(r.Context(), placeID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("place_id", placeID).Msg("place deleted")
	writeJSON(w, r, models.StatusResponse{Status: app.StatusRemoved}, http.StatusOK)
}
