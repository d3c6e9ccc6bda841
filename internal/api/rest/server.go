package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fortuna/scorefeed/internal/crawl"
	"github.com/fortuna/scorefeed/internal/store"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, runner *crawl.Runner) *Server {
	handler := NewHandler(db, runner)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Crawl jobs
	api.HandleFunc("/jobs", handler.SubmitJob).Methods("POST")
	api.HandleFunc("/jobs/status", handler.JobStatus).Methods("GET")

	// Results
	api.HandleFunc("/results/{resultType}", handler.GetResults).Methods("GET")
	api.HandleFunc("/results/{resultType}/{sourceID}", handler.GetResult).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
