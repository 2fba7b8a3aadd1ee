// Package httpapi exposes the marketplace over HTTP: account signup and
// login, token-protected profile data and the item catalog.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
)

// WelcomeMessage is served at the root; clients use it as a ping.
const WelcomeMessage = "Welcome to the Gator Market API!"

func NewRouter(us *users.Service, is *items.Service, logger logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Nop{}
	}
	logger = logger.With("component", "http")

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logging(logger))
	r.Use(Metrics)
	r.Use(chimiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: WelcomeMessage})
	})
	r.Handle("/metrics", promhttp.Handler())

	NewAuthHandler(us, logger).Routes(r)
	r.Mount("/items", NewItemsHandler(is, us, logger).Routes())
	return r
}
