// Package router sets up the HTTP routes and middleware chain for the
// pressroom server. The API surface is deliberately small: a health
// check and the single GraphQL endpoint.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"

	"pressroom/internal/graph"
	"pressroom/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(schema graphql.Schema, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(chimw.Compress(5, "application/json"))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Single GraphQL endpoint. Authentication happens inside the
	// resolvers from the Authorization header.
	r.Method(http.MethodPost, "/graphql", graph.Handler(schema))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
