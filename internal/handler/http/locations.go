package http

import "net/http"

// locations serves the marker feed consumed by the map renderer.
func (h *Handler) locations(w http.ResponseWriter, r *http.Request) {
	markers, err := h.services.PlaceService.Locations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, markers, http.StatusOK)
}
