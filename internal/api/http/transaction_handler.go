package http

import (
	"net/http"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type paymentPayload struct {
	Date   string             `json:"date"`
	Amount flexFloat          `json:"amount"`
	Type   domain.PaymentType `json:"type"`
	Medium string             `json:"medium"`
	Notes  string             `json:"notes"`
}

func (p paymentPayload) toDomain() domain.Payment {
	return domain.Payment{
		Date:   p.Date,
		Amount: float64(p.Amount),
		Type:   p.Type,
		Medium: p.Medium,
		Notes:  p.Notes,
	}
}

type createRentalPayload struct {
	CarID           string               `json:"car_id"`
	CustomerID      string               `json:"customer_id"`
	DealerID        string               `json:"dealer_id"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	TierPreset      string               `json:"tier_preset"`
	ManualDailyRate flexFloat            `json:"manual_daily_rate"`
	Discount        flexFloat            `json:"discount"`
	PaymentStatus   domain.PaymentStatus `json:"payment_status"`
	InitialPayment  *paymentPayload      `json:"initial_payment"`
	StartMileage    int32                `json:"start_mileage"`
	Notes           string               `json:"notes"`
}

type quotePayload struct {
	CarID           string    `json:"car_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TierPreset      string    `json:"tier_preset"`
	ManualDailyRate flexFloat `json:"manual_daily_rate"`
	Discount        flexFloat `json:"discount"`
}

// transactionResponse pairs a transaction with its derived ledger so the
// dashboard never recomputes balances client side.
type transactionResponse struct {
	Transaction *domain.Transaction   `json:"transaction"`
	Ledger      *derive.LedgerSummary `json:"ledger,omitempty"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.rentals.ListTransactions(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var payload createRentalPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := service.CreateRentalRequest{
		CarID:           payload.CarID,
		CustomerID:      payload.CustomerID,
		DealerID:        payload.DealerID,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		TierPreset:      payload.TierPreset,
		ManualDailyRate: float64(payload.ManualDailyRate),
		Discount:        float64(payload.Discount),
		PaymentStatus:   payload.PaymentStatus,
		StartMileage:    payload.StartMileage,
		Notes:           payload.Notes,
	}
	if payload.InitialPayment != nil {
		p := payload.InitialPayment.toDomain()
		req.InitialPayment = &p
	}

	tx, err := s.rentals.CreateRental(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var payload quotePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := s.rentals.QuoteRental(r.Context(), service.QuoteRequest{
		CarID:           payload.CarID,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		TierPreset:      payload.TierPreset,
		ManualDailyRate: float64(payload.ManualDailyRate),
		Discount:        float64(payload.Discount),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, ledger, err := s.rentals.GetTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, transactionResponse{Transaction: tx, Ledger: ledger})
}

func (s *Server) handleCancelTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.rentals.CancelTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleCompleteTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.rentals.CompleteTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleAddPayment(w http.ResponseWriter, r *http.Request) {
	var payload paymentPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	tx, err := s.rentals.AddPayment(r.Context(), mux.Vars(r)["id"], payload.toDomain())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tx, err := s.rentals.DeletePayment(r.Context(), vars["id"], vars["paymentID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}
