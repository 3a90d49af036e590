package agent

import (
	"net/http"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
)

func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	h.entities.ClearCache(r.URL.Query().Get("collection"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) forceOffline(w http.ResponseWriter, r *http.Request) {
	h.entities.ForceOffline(r.Context())
	utils.WriteJSON(w, h.entities.State(), http.StatusOK)
}

func (h *Handler) forceOnline(w http.ResponseWriter, r *http.Request) {
	if !h.entities.ForceOnline(r.Context()) {
		logger.FromRequest(r).Warn().Str("func", "*Handler.forceOnline").Msg("manual reconnect refused")
		writeError(w, ErrConnectRefused)
		return
	}
	utils.WriteJSON(w, h.entities.State(), http.StatusOK)
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.entities.Status(), http.StatusOK)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	summary, err := h.entities.Sync(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sync").Msg("manual sync failed")
		writeError(w, err)
		return
	}
	utils.WriteJSON(w, summary, http.StatusOK)
}
