package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/sync/{accountID}", h.syncNow)
	router.Get("/api/status", h.status)
	router.Post("/api/logout/{accountID}", h.logout)

	return router
}
