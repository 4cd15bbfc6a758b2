package http

import (
	"net/http"

	"fleetrental-backend/internal/domain"

	"github.com/gorilla/mux"
)

type maintenancePayload struct {
	CarID           string               `json:"car_id"`
	WorkshopName    string               `json:"workshop_name"`
	WorkshopDetails string               `json:"workshop_details"`
	PhoneNumber     string               `json:"phone_number"`
	Date            string               `json:"date"`
	ReturnDate      string               `json:"return_date"`
	Amount          flexFloat            `json:"amount"`
	AmountPaid      flexFloat            `json:"amount_paid"`
	PaymentStatus   domain.PaymentStatus `json:"payment_status"`
	Description     string               `json:"description"`
	Image           string               `json:"image"`
}

func (p maintenancePayload) toDomain(id string) *domain.MaintenanceRecord {
	return &domain.MaintenanceRecord{
		ID:              id,
		CarID:           p.CarID,
		WorkshopName:    p.WorkshopName,
		WorkshopDetails: p.WorkshopDetails,
		PhoneNumber:     p.PhoneNumber,
		Date:            p.Date,
		ReturnDate:      p.ReturnDate,
		Amount:          float64(p.Amount),
		AmountPaid:      float64(p.AmountPaid),
		PaymentStatus:   p.PaymentStatus,
		Description:     p.Description,
		Image:           p.Image,
	}
}

func (s *Server) handleListMaintenance(w http.ResponseWriter, r *http.Request) {
	if carID := r.URL.Query().Get("car_id"); carID != "" {
		records, err := s.maintenance.ListRecordsByCar(r.Context(), carID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, records)
		return
	}

	records, err := s.maintenance.ListRecords(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetMaintenance(w http.ResponseWriter, r *http.Request) {
	rec, err := s.maintenance.GetRecord(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAddMaintenance(w http.ResponseWriter, r *http.Request) {
	var payload maintenancePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.CarID == "" {
		respondError(w, http.StatusBadRequest, "car_id is required")
		return
	}
	rec := payload.toDomain("")
	if err := s.maintenance.AddRecord(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	var payload maintenancePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec := payload.toDomain(mux.Vars(r)["id"])
	if err := s.maintenance.UpdateRecord(r.Context(), rec); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	if err := s.maintenance.DeleteRecord(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
