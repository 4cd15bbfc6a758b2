package http

import (
	"net/http"

	"fleetrental-backend/internal/domain"
)

func (s *Server) handleListRegisters(w http.ResponseWriter, r *http.Request) {
	if carID := r.URL.Query().Get("car_id"); carID != "" {
		entries, err := s.registers.ListEntriesByCar(r.Context(), carID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
		return
	}

	entries, err := s.registers.ListEntries(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddRegisterEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.RegisterEntry
	if err := decodeJSON(r, &entry); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry.ID = ""
	if entry.CarID == "" {
		respondError(w, http.StatusBadRequest, "car_id is required")
		return
	}
	if err := s.registers.AddEntry(r.Context(), &entry); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}
