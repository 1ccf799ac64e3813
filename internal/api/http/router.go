package http

import (
	"net/http"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/security"
	"fleetbill-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Trip         service.TripService
	Billing      service.BillingService
	Rate         service.RateService
	MasterData   service.MasterDataService
	Notification service.NotificationService
}

// NewRouter builds the API route table. All routes under /api/v1 except
// login and refresh require a valid access token.
func NewRouter(svcs Services, tm security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	tripHandler := NewTripHandler(svcs.Trip)
	billingHandler := NewBillingHandler(svcs.Billing)
	rateHandler := NewRateHandler(svcs.Rate)
	masterDataHandler := NewMasterDataHandler(svcs.MasterData)
	notificationHandler := NewNotificationHandler(svcs.Notification)

	adminOnly := RequireRoles(domain.UserRoleAdmin, domain.UserRoleSuperAdmin)
	driverOnly := RequireRoles(domain.UserRoleDriver)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(NewAuthMiddleware(tm).Handler)

	authed.HandleFunc("/auth/profile", authHandler.Profile).Methods(http.MethodGet)
	authed.HandleFunc("/users", adminOnly(authHandler.CreateUser)).Methods(http.MethodPost)

	authed.HandleFunc("/trips", tripHandler.ListTrips).Methods(http.MethodGet)
	authed.HandleFunc("/trips", driverOnly(tripHandler.StartTrip)).Methods(http.MethodPost)
	authed.HandleFunc("/trips/{id:[0-9]+}", tripHandler.GetTrip).Methods(http.MethodGet)
	authed.HandleFunc("/trips/{id:[0-9]+}/end", driverOnly(tripHandler.EndTrip)).Methods(http.MethodPost)

	// Role checks for billing run in the service so view-only and
	// edit rules stay in one place.
	authed.HandleFunc("/billing/ledger", billingHandler.Ledger).Methods(http.MethodGet)
	authed.HandleFunc("/billing/trips/{tripId:[0-9]+}/preview", billingHandler.PreviewBill).Methods(http.MethodPost)
	authed.HandleFunc("/billing/trips/{tripId:[0-9]+}/save", billingHandler.SaveBill).Methods(http.MethodPost)

	authed.HandleFunc("/rates", rateHandler.ListRates).Methods(http.MethodGet)
	authed.HandleFunc("/rates", adminOnly(rateHandler.CreateRate)).Methods(http.MethodPost)
	authed.HandleFunc("/rates/{id:[0-9]+}", rateHandler.GetRate).Methods(http.MethodGet)
	authed.HandleFunc("/rates/{id:[0-9]+}", adminOnly(rateHandler.UpdateRate)).Methods(http.MethodPut)
	authed.HandleFunc("/rates/{id:[0-9]+}", adminOnly(rateHandler.DeleteRate)).Methods(http.MethodDelete)

	authed.HandleFunc("/agencies", masterDataHandler.ListAgencies).Methods(http.MethodGet)
	authed.HandleFunc("/agencies", adminOnly(masterDataHandler.CreateAgency)).Methods(http.MethodPost)
	authed.HandleFunc("/agencies/{id:[0-9]+}", masterDataHandler.GetAgency).Methods(http.MethodGet)
	authed.HandleFunc("/agencies/{id:[0-9]+}", adminOnly(masterDataHandler.UpdateAgency)).Methods(http.MethodPut)
	authed.HandleFunc("/agencies/{id:[0-9]+}", adminOnly(masterDataHandler.DeleteAgency)).Methods(http.MethodDelete)

	authed.HandleFunc("/plants", masterDataHandler.ListPlants).Methods(http.MethodGet)
	authed.HandleFunc("/plants", adminOnly(masterDataHandler.CreatePlant)).Methods(http.MethodPost)
	authed.HandleFunc("/plants/{id:[0-9]+}", masterDataHandler.GetPlant).Methods(http.MethodGet)
	authed.HandleFunc("/plants/{id:[0-9]+}", adminOnly(masterDataHandler.UpdatePlant)).Methods(http.MethodPut)
	authed.HandleFunc("/plants/{id:[0-9]+}", adminOnly(masterDataHandler.DeletePlant)).Methods(http.MethodDelete)

	authed.HandleFunc("/vehicles", masterDataHandler.ListVehicles).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles", adminOnly(masterDataHandler.CreateVehicle)).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", masterDataHandler.GetVehicle).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", adminOnly(masterDataHandler.UpdateVehicle)).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", adminOnly(masterDataHandler.DeleteVehicle)).Methods(http.MethodDelete)

	authed.HandleFunc("/suppliers", masterDataHandler.ListSuppliers).Methods(http.MethodGet)
	authed.HandleFunc("/suppliers", adminOnly(masterDataHandler.CreateSupplier)).Methods(http.MethodPost)
	authed.HandleFunc("/suppliers/{id:[0-9]+}", masterDataHandler.GetSupplier).Methods(http.MethodGet)
	authed.HandleFunc("/suppliers/{id:[0-9]+}", adminOnly(masterDataHandler.UpdateSupplier)).Methods(http.MethodPut)
	authed.HandleFunc("/suppliers/{id:[0-9]+}", adminOnly(masterDataHandler.DeleteSupplier)).Methods(http.MethodDelete)

	authed.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return r
}
