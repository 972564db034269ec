package http

import (
	"github.com/go-chi/chi/v5"
)

const accountByIDPath = "/accounts/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withSecurityHeaders)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout)
	}

	router.Get("/", h.index)
	router.Get("/health", h.health)

	router.Get("/accounts", h.listAccounts)
	router.With(h.withJSONContentType).Post("/accounts", h.createAccount)

	router.Get(accountByIDPath, h.getAccount)
	router.With(h.withJSONContentType).Put(accountByIDPath, h.updateAccount)
	router.Delete(accountByIDPath, h.deleteAccount)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
