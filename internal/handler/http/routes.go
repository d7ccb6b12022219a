package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/hello", h.hello)
	})

	// routes protected by the bearer-token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/npk/{npk:[0-9]+}", h.userByNPK)
		r.Get("/users/username/{username}", h.userByUsername)

		r.Get("/structures", h.structures)
		r.Get("/structures/dir/{dir}", h.structuresByDirectorate)
		r.Get("/structures/div/{div}", h.structuresByDivision)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
