package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"motorent-backend/internal/service"
)

// NewRouter wires all handlers onto a mux router with request observation,
// a health probe and the prometheus endpoint.
func NewRouter(rentalSvc service.RentalService, catalogSvc service.CatalogService) *mux.Router {
	rentals := NewRentalHandler(rentalSvc)
	catalog := NewCatalogHandler(catalogSvc)

	r := mux.NewRouter()
	r.Use(requestObserver)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/rentals", rentals.CreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", rentals.GetRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/history", rentals.GetRentalHistory).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/quote", rentals.QuoteRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/complete", rentals.CompleteRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/cancel", rentals.CancelRental).Methods(http.MethodPost)

	api.HandleFunc("/motorcycles", catalog.RegisterMotorcycle).Methods(http.MethodPost)
	api.HandleFunc("/motorcycles", catalog.ListMotorcycles).Methods(http.MethodGet)
	api.HandleFunc("/drivers", catalog.RegisterDriver).Methods(http.MethodPost)
	api.HandleFunc("/drivers/{id}", catalog.GetDriver).Methods(http.MethodGet)
	api.HandleFunc("/drivers/{id}/rentals", rentals.DeleteDriverRentals).Methods(http.MethodDelete)
	api.HandleFunc("/plans", catalog.ListPlans).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}", catalog.GetPlan).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
