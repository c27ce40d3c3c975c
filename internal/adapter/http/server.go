// Package adapthttp is the driving HTTP adapter for the weight service.
package adapthttp

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weightlog/internal/app"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server routes requests to the application services. The user identity is
// fixed at construction time; threading it explicitly keeps multi-tenancy a
// wiring change rather than a rewrite.
type Server struct {
	weights *app.WeightService
	store   Pinger
	userID  string
}

// New creates a Server wired to the given weight service and store.
func New(ws *app.WeightService, store Pinger, userID string) *Server {
	return &Server{weights: ws, store: store, userID: userID}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/health/db", s.handleHealthDB).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/weights", s.handleListWeights).Methods(http.MethodGet)
	r.HandleFunc("/weights/weight-summary", s.handleWeightSummary).Methods(http.MethodGet)
	r.HandleFunc("/weights", s.handleAddWeight).Methods(http.MethodPost)
	r.HandleFunc("/weights/{id}", s.handleUpdateWeight).Methods(http.MethodPut)
	r.HandleFunc("/weights/{id}", s.handleDeleteWeight).Methods(http.MethodDelete)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleHealthDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		log.Printf("db health check: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "db": "disconnected"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "db": "connected"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Weight tracking API is running"))
}
