package http

import (
	"net/http"

	"fleetrental-backend/internal/domain"

	"github.com/gorilla/mux"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.ListCustomers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := s.customers.GetCustomer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (s *Server) handleAddCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = ""
	if customer.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := s.customers.AddCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = mux.Vars(r)["id"]
	if err := s.customers.UpdateCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := s.customers.DeleteCustomer(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
