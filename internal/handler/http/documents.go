package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/internal/utils"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	documents, err := h.services.DocumentService.List(r.Context(), collection)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Str("collection", collection).Msg("error listing documents")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DocumentListResponse{Documents: documents, Length: len(documents)}, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection := chi.URLParam(r, "collection")

	var request models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.DocumentService.Create(r.Context(), models.Document{
		Collection: collection,
		ID:         request.ID,
		Payload:    request.Payload,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Str("collection", collection).Msg("error creating document")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	document, err := h.services.DocumentService.Get(r.Context(), collection, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Str("collection", collection).Str("id", id).Msg("error getting document")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	var request models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	// the id in the path wins over one in the body
	updated, err := h.services.DocumentService.Update(r.Context(), models.Document{
		Collection: collection,
		ID:         id,
		Payload:    request.Payload,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Str("collection", collection).Str("id", id).Msg("error updating document")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), collection, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocument").Str("collection", collection).Str("id", id).Msg("error deleting document")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
