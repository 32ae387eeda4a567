package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(h.requestTimeout))
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/api/recipes", func(r chi.Router) {
		r.Use(h.auth)

		// the push channel lives as long as the client keeps it open
		r.Get("/ws", h.watchRecipes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(h.requestTimeout), h.withGZip)
			r.Get("/", h.listRecipes)
			r.Post("/", h.saveRecipe)
			r.Delete("/{id}", h.deleteRecipe)
			r.Patch("/{id}", h.setRecipeField)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
