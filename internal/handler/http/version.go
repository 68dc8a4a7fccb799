package http

import (
	"net/http"

	"github.com/MKhiriev/go-map-places/internal/logger"
)

// getServerVersion answers with the bare version string so scripts can
// compare it without parsing.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
