package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/security"
	"fleetrental-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	tokens := security.NewTokenManager("test-secret-key-at-least-32-chars-long", 60, 10080)
	s := &Server{
		router:    mux.NewRouter(),
		auth:      new(MockAuthService),
		cars:      new(MockCarService),
		customers: new(MockCustomerService),
		rentals:   new(MockRentalService),
		tokens:    tokens,
	}
	s.registerRoutes()

	access, err := tokens.GenerateAccessToken("user-1", "manager")
	require.NoError(t, err)
	return s, access
}

func TestAuthMiddleware(t *testing.T) {
	s, access := newTestServer(t)

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cars", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		s.cars.(*MockCarService).On("ListCars", mock.Anything).Return([]domain.CarView{}, nil)

		req := httptest.NewRequest("GET", "/api/cars", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		tokens := security.NewTokenManager("test-secret-key-at-least-32-chars-long", 60, 10080)
		refresh, err := tokens.GenerateRefreshToken("user-1", "manager")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/cars", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Login Passthrough", func(t *testing.T) {
		s.auth.(*MockAuthService).On("Login", mock.Anything, "manager", "pw").Return("a-token", "r-token", nil)

		body := strings.NewReader(`{"username":"manager","password":"pw"}`)
		req := httptest.NewRequest("POST", "/api/auth/login", body)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp tokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "a-token", resp.AccessToken)
		assert.Equal(t, "r-token", resp.RefreshToken)
	})
}

func TestErrorMapping(t *testing.T) {
	s, access := newTestServer(t)

	t.Run("Booking Conflict Is 409", func(t *testing.T) {
		s.rentals.(*MockRentalService).
			On("CreateRental", mock.Anything, mock.AnythingOfType("service.CreateRentalRequest")).
			Return(nil, service.ErrBookingConflict)

		body := strings.NewReader(`{"car_id":"car-1","customer_id":"cust-1","start_date":"2025-03-01","end_date":"2025-03-04"}`)
		req := httptest.NewRequest("POST", "/api/transactions", body)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("Duplicate Phone Is 409", func(t *testing.T) {
		s.customers.(*MockCustomerService).
			On("AddCustomer", mock.Anything, mock.AnythingOfType("*domain.Customer")).
			Return(&service.DuplicatePhoneError{Phone: "9876543210"})

		body := strings.NewReader(`{"name":"Asha","phone_number":"9876543210"}`)
		req := httptest.NewRequest("POST", "/api/customers", body)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "9876543210")
	})
}

func TestCreateRental_LenientNumbers(t *testing.T) {
	s, access := newTestServer(t)
	rentals := s.rentals.(*MockRentalService)

	// Rate and discount fields arrive as strings from the rental form.
	rentals.On("CreateRental", mock.Anything, mock.MatchedBy(func(req service.CreateRentalRequest) bool {
		return req.ManualDailyRate == 750 && req.Discount == 0
	})).Return(&domain.Transaction{ID: "tx-1", Status: domain.TransactionStatusActive}, nil)

	body := strings.NewReader(`{
		"car_id": "car-1",
		"customer_id": "cust-1",
		"start_date": "2025-03-01",
		"end_date": "2025-03-04",
		"manual_daily_rate": "750",
		"discount": ""
	}`)
	req := httptest.NewRequest("POST", "/api/transactions", body)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	rentals.AssertExpectations(t)
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"v": 12.5}`, 12.5},
		{"numeric string", `{"v": "800"}`, 800},
		{"empty string", `{"v": ""}`, 0},
		{"null", `{"v": null}`, 0},
		{"garbage string", `{"v": "abc"}`, 0},
		{"missing", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V flexFloat `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, tt.want, float64(out.V))
		})
	}
}
