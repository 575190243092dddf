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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/admin-exists", h.adminExists)
		r.Get("/api/admin-exists", h.adminExists)

		r.Post("/api/register", h.register)
		r.Post("/api/register-user", h.registerUser)
		r.Post("/api/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/change-password", h.changePassword)
		r.Post("/api/change-email", h.changeEmail)
		r.Post("/api/create-admin", h.createAdmin)

		r.Route("/api/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getCustomer)
				r.Put("/", h.updateCustomer)
				r.Delete("/", h.deleteCustomer)

				r.Get("/documents", h.listDocuments)
				r.Post("/documents", h.uploadDocument)
			})
		})

		r.Route("/api/documents/{id}", func(r chi.Router) {
			r.Get("/", h.getDocument)
			r.Delete("/", h.deleteDocument)
			r.Get("/download", h.downloadDocument)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
