package http

import (
	"net/http"

	"fleetrental-backend/internal/domain"

	"github.com/gorilla/mux"
)

// carPayload tolerates the loose number encoding the dashboard forms post
// for the rate table fields.
type carPayload struct {
	Make             string           `json:"make"`
	Model            string           `json:"model"`
	Year             int              `json:"year"`
	PlateNumber      string           `json:"plate_number"`
	Status           domain.CarStatus `json:"status"`
	Price            flexFloat        `json:"price"`
	TenDayPrice      flexFloat        `json:"ten_day_price"`
	MonthlyPrice     flexFloat        `json:"monthly_price"`
	Mileage          int32            `json:"mileage"`
	FuelType         domain.FuelType  `json:"fuel_type"`
	FitnessValidTo   string           `json:"fitness_valid_to"`
	TaxValidTo       string           `json:"tax_valid_to"`
	InsuranceValidTo string           `json:"insurance_valid_to"`
	RCImage          string           `json:"rc_image"`
	InsuranceImage   string           `json:"insurance_image"`
}

func (p carPayload) toDomain(id string) *domain.Car {
	return &domain.Car{
		ID:               id,
		Make:             p.Make,
		Model:            p.Model,
		Year:             p.Year,
		PlateNumber:      p.PlateNumber,
		Status:           p.Status,
		Price:            float64(p.Price),
		TenDayPrice:      float64(p.TenDayPrice),
		MonthlyPrice:     float64(p.MonthlyPrice),
		Mileage:          p.Mileage,
		FuelType:         p.FuelType,
		FitnessValidTo:   p.FitnessValidTo,
		TaxValidTo:       p.TaxValidTo,
		InsuranceValidTo: p.InsuranceValidTo,
		RCImage:          p.RCImage,
		InsuranceImage:   p.InsuranceImage,
	}
}

func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	views, err := s.cars.ListCars(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetCar(w http.ResponseWriter, r *http.Request) {
	view, err := s.cars.GetCar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleAddCar(w http.ResponseWriter, r *http.Request) {
	var payload carPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	car := payload.toDomain("")
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	if err := s.cars.AddCar(r.Context(), car); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

func (s *Server) handleUpdateCar(w http.ResponseWriter, r *http.Request) {
	var payload carPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	car := payload.toDomain(mux.Vars(r)["id"])
	if err := s.cars.UpdateCar(r.Context(), car); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (s *Server) handleDeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := s.cars.DeleteCar(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
