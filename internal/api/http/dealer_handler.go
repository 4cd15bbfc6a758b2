package http

import (
	"net/http"

	"fleetrental-backend/internal/domain"

	"github.com/gorilla/mux"
)

func (s *Server) handleListDealers(w http.ResponseWriter, r *http.Request) {
	dealers, err := s.dealers.ListDealers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dealers)
}

func (s *Server) handleGetDealer(w http.ResponseWriter, r *http.Request) {
	dealer, err := s.dealers.GetDealer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dealer)
}

func (s *Server) handleAddDealer(w http.ResponseWriter, r *http.Request) {
	var dealer domain.Dealer
	if err := decodeJSON(r, &dealer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dealer.ID = ""
	if dealer.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := s.dealers.AddDealer(r.Context(), &dealer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dealer)
}

func (s *Server) handleUpdateDealer(w http.ResponseWriter, r *http.Request) {
	var dealer domain.Dealer
	if err := decodeJSON(r, &dealer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dealer.ID = mux.Vars(r)["id"]
	if err := s.dealers.UpdateDealer(r.Context(), &dealer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dealer)
}

func (s *Server) handleDeleteDealer(w http.ResponseWriter, r *http.Request) {
	if err := s.dealers.DeleteDealer(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
