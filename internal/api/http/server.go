package http

import (
	"net/http"

	"fleetrental-backend/internal/security"
	"fleetrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Server holds the HTTP API: one handler per resource, all mounted under
// /api behind the bearer-token middleware.
type Server struct {
	router *mux.Router

	auth        service.AuthService
	cars        service.CarService
	customers   service.CustomerService
	dealers     service.DealerService
	rentals     service.RentalService
	maintenance service.MaintenanceService
	registers   service.RegisterService
	alerts      service.AlertService
	invoices    service.InvoiceService

	tokens security.TokenManager
}

func NewServer(
	auth service.AuthService,
	cars service.CarService,
	customers service.CustomerService,
	dealers service.DealerService,
	rentals service.RentalService,
	maintenance service.MaintenanceService,
	registers service.RegisterService,
	alerts service.AlertService,
	invoices service.InvoiceService,
	tokens security.TokenManager,
) *Server {
	s := &Server{
		router:      mux.NewRouter(),
		auth:        auth,
		cars:        cars,
		customers:   customers,
		dealers:     dealers,
		rentals:     rentals,
		maintenance: maintenance,
		registers:   registers,
		alerts:      alerts,
		invoices:    invoices,
		tokens:      tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.authenticate)

	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")
	api.HandleFunc("/auth/refresh", s.handleRefresh).Methods("POST")

	api.HandleFunc("/cars", s.handleListCars).Methods("GET")
	api.HandleFunc("/cars", s.handleAddCar).Methods("POST")
	api.HandleFunc("/cars/{id}", s.handleGetCar).Methods("GET")
	api.HandleFunc("/cars/{id}", s.handleUpdateCar).Methods("PUT")
	api.HandleFunc("/cars/{id}", s.handleDeleteCar).Methods("DELETE")

	api.HandleFunc("/customers", s.handleListCustomers).Methods("GET")
	api.HandleFunc("/customers", s.handleAddCustomer).Methods("POST")
	api.HandleFunc("/customers/{id}", s.handleGetCustomer).Methods("GET")
	api.HandleFunc("/customers/{id}", s.handleUpdateCustomer).Methods("PUT")
	api.HandleFunc("/customers/{id}", s.handleDeleteCustomer).Methods("DELETE")

	api.HandleFunc("/dealers", s.handleListDealers).Methods("GET")
	api.HandleFunc("/dealers", s.handleAddDealer).Methods("POST")
	api.HandleFunc("/dealers/{id}", s.handleGetDealer).Methods("GET")
	api.HandleFunc("/dealers/{id}", s.handleUpdateDealer).Methods("PUT")
	api.HandleFunc("/dealers/{id}", s.handleDeleteDealer).Methods("DELETE")

	api.HandleFunc("/transactions", s.handleListTransactions).Methods("GET")
	api.HandleFunc("/transactions", s.handleCreateRental).Methods("POST")
	api.HandleFunc("/transactions/quote", s.handleQuote).Methods("POST")
	api.HandleFunc("/transactions/{id}", s.handleGetTransaction).Methods("GET")
	api.HandleFunc("/transactions/{id}/cancel", s.handleCancelTransaction).Methods("POST")
	api.HandleFunc("/transactions/{id}/complete", s.handleCompleteTransaction).Methods("POST")
	api.HandleFunc("/transactions/{id}/payments", s.handleAddPayment).Methods("POST")
	api.HandleFunc("/transactions/{id}/payments/{paymentID}", s.handleDeletePayment).Methods("DELETE")

	api.HandleFunc("/maintenance", s.handleListMaintenance).Methods("GET")
	api.HandleFunc("/maintenance", s.handleAddMaintenance).Methods("POST")
	api.HandleFunc("/maintenance/{id}", s.handleGetMaintenance).Methods("GET")
	api.HandleFunc("/maintenance/{id}", s.handleUpdateMaintenance).Methods("PUT")
	api.HandleFunc("/maintenance/{id}", s.handleDeleteMaintenance).Methods("DELETE")

	api.HandleFunc("/registers", s.handleListRegisters).Methods("GET")
	api.HandleFunc("/registers", s.handleAddRegisterEntry).Methods("POST")

	api.HandleFunc("/notifications", s.handleNotifications).Methods("GET")
	api.HandleFunc("/invoices/{transactionID}", s.handleGetInvoice).Methods("GET")
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
