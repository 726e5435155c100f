package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Get("/health", h.health)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Post("/logout", h.logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.getProfile)
			r.Patch("/me", h.updateProfile)
		})
	})

	return router
}
