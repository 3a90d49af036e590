package agent

import (
	httphandler "github.com/MKhiriev/go-site-sync/internal/handler/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(httphandler.WithTraceID(h.logger), httphandler.WithLogging, httphandler.WithGZip)

	router.Route("/local", func(r chi.Router) {
		r.Get("/collections/{collection}", h.listEntities)
		r.Post("/collections/{collection}", h.createEntity)
		r.Get("/collections/{collection}/{id}", h.readEntity)
		r.Patch("/collections/{collection}/{id}", h.updateEntity)
		r.Delete("/collections/{collection}/{id}", h.removeEntity)

		r.Delete("/cache", h.clearCache)
		r.Post("/connectivity/offline", h.forceOffline)
		r.Post("/connectivity/online", h.forceOnline)
		r.Get("/status", h.status)
		r.Post("/sync", h.sync)
		r.Get("/events", h.events)
	})

	router.MethodNotAllowed(httphandler.CheckHTTPMethod(router))

	return router
}
