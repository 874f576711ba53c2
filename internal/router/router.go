package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/threadhub-dev/threadhub/internal/middleware"
	"github.com/threadhub-dev/threadhub/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	r.Use(handlers.CompressHandler)
	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))
	r.Use(mw.RequestId)
	r.Use(mw.Metrics)
	// Identity is resolved for every request but enforced inside the
	// service layer, so that existence checks can precede authorization.
	r.Use(deps.AuthMiddleware.Resolve())

	// Preflight requests should never 404
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Register).Methods("POST")
	auth.HandleFunc("/login", h.Login).Methods("POST")
	auth.HandleFunc("/logout", h.Logout).Methods("POST")

	r.HandleFunc("/threads", h.ListThreads).Methods("GET")
	r.HandleFunc("/threads", h.CreateThread).Methods("POST")
	r.HandleFunc("/threads/{id}", h.GetThread).Methods("GET")
	r.HandleFunc("/threads/{id}", h.UpdateThread).Methods("PUT", "PATCH")
	r.HandleFunc("/threads/{id}", h.DeleteThread).Methods("DELETE")

	return r
}
