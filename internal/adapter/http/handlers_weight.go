package adapthttp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type weightRequest struct {
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"`
	EntryDate string  `json:"entryDate"`
	Notes     *string `json:"notes"`
}

func (s *Server) handleListWeights(w http.ResponseWriter, r *http.Request) {
	entries, err := s.weights.List(r.Context(), s.userID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.WeightEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddWeight(w http.ResponseWriter, r *http.Request) {
	var body weightRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weights.Add(r.Context(), s.userID, body.Weight, body.Unit, body.EntryDate, body.Notes)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body weightRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := s.weights.Update(r.Context(), s.userID, id, body.Weight, body.Unit, body.EntryDate, body.Notes)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entry, err := s.weights.Delete(r.Context(), s.userID, id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": entry})
}

func (s *Server) handleWeightSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.weights.Summarize(r.Context(), s.userID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// writeServiceError maps service failures onto status codes. Anything outside
// the named taxonomy is logged in full and surfaced as a generic message so
// no store internals cross the boundary.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidWeight),
		errors.Is(err, app.ErrInvalidUnit),
		errors.Is(err, app.ErrInvalidDate),
		errors.Is(err, app.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, app.ErrDuplicateDate):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	default:
		log.Printf("weights: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}
