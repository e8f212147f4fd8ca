package http

import (
	"net/http"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/report"
	"github.com/MKhiriev/lb-dashboard/internal/utils"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	enricher := h.services.ConfigEnricher

	cfg, err := enricher.FetchConfig(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("error fetching load balancer config")
		writeFetchError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, enricher.Enrich(cfg), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("error writing response")
	}
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info, err := h.services.ConfigEnricher.FetchInfo(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInfo").Msg("error fetching load balancer info")
		writeFetchError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getInfo").Msg("error writing response")
	}
}

// getDashboard always answers 200; fetch failures are reported per document.
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dashboard := h.services.ConfigEnricher.Load(r.Context())

	if _, err := utils.WriteJSON(w, report.NewDocument(dashboard), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDashboard").Msg("error writing response")
	}
}
