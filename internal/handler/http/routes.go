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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/api/version", h.getAppVersion)
	})

	// the expense collection API requires a valid bearer token; writes
	// additionally carry an integrity signature over the body
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/expenses", h.listExpenses)
		r.Get("/api/expenses/{id}", h.getExpense)
		r.Delete("/api/expenses/{id}", h.deleteExpense)

		r.Group(func(rw chi.Router) {
			rw.Use(h.withBodyHash)
			rw.Post("/api/expenses", h.createExpense)
			rw.Put("/api/expenses/{id}", h.updateExpense)
		})
	})

	return router
}
