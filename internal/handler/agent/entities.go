package agent

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/go-chi/chi/v5"
)

// EntityListResponse is returned by GET /local/collections/{collection}.
// Entities come from the cache; a fresher set, if any, arrives later as a
// collection_refreshed event.
type EntityListResponse struct {
	Entities []models.Entity `json:"entities"`
	Length   int             `json:"length"`
}

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	entities := h.entities.List(r.Context(), collection, nil)

	utils.WriteJSON(w, EntityListResponse{Entities: entities, Length: len(entities)}, http.StatusOK)
}

func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	var payload models.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createEntity").Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	entity, err := h.entities.Create(r.Context(), collection, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEntity").Str("collection", collection).Msg("error creating entity")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusCreated)
}

func (h *Handler) readEntity(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	cached, ok := h.entities.ReadCache(collection, id)
	if !ok {
		writeError(w, ErrEntityNotCached)
		return
	}

	utils.WriteJSON(w, cached, http.StatusOK)
}

func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	var partial models.Payload
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntity").Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	entity, err := h.entities.Update(r.Context(), collection, id, partial)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateEntity").Str("collection", collection).Str("id", id).Msg("error updating entity")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusOK)
}

func (h *Handler) removeEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	if err := h.entities.Remove(r.Context(), collection, id); err != nil {
		log.Err(err).Str("func", "*Handler.removeEntity").Str("collection", collection).Str("id", id).Msg("error removing entity")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteError(w, err.Error(), statusFromError(err))
}
