package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	documentsPattern  = "/api/collections/{collection}/documents"
	documentIDPattern = documentsPattern + "/{id}"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(WithTraceID(h.logger), WithLogging, WithGZip)

	router.Get("/api/health", h.checkHealth)
	router.Get("/api/version", h.getServerVersion)

	router.Get(documentsPattern, h.listDocuments)
	router.Post(documentsPattern, h.createDocument)
	router.Get(documentIDPattern, h.getDocument)
	router.Put(documentIDPattern, h.updateDocument)
	router.Delete(documentIDPattern, h.deleteDocument)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
