package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/s-turchinskiy/gzipresponse/internal/server/handlers"
	"github.com/s-turchinskiy/gzipresponse/internal/server/middleware/gzip"
	"github.com/s-turchinskiy/gzipresponse/internal/server/middleware/logger"
)

func Router(h *handlers.PagesHandler, gz *gzip.Middleware) chi.Router {

	router := chi.NewRouter()
	router.Use(logger.Logger)
	router.Get(`/`, Handle(gz, h.Home))
	router.Route("/api", func(r chi.Router) {
		r.Get("/status", Handle(gz, h.Status))
		r.Get("/notes", Handle(gz, h.Notes))
	})
	router.Get("/logo.png", Handle(gz, h.Logo))

	return router
}
