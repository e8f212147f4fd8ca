package http

import (
	"net/http"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
)

// getServerVersion answers with the build version of lbdash, not the
// version of the load balancer (that one is part of /api/info).
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
