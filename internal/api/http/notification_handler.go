package http

import (
	"net/http"

	"fleetrental-backend/internal/derive"

	"github.com/gorilla/mux"
)

type notificationsResponse struct {
	Alerts      []derive.Alert `json:"alerts"`
	UnreadCount int            `json:"unread_count"`
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	alerts, unread, err := s.alerts.Notifications(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notificationsResponse{Alerts: alerts, UnreadCount: unread})
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := s.invoices.BuildInvoice(r.Context(), mux.Vars(r)["transactionID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}
