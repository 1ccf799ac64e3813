package service

import (
	"context"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User, password string) error
}

type TripService interface {
	StartTrip(ctx context.Context, driverID int32, req StartTripRequest) (*domain.Trip, error)
	EndTrip(ctx context.Context, driverID int32, req EndTripRequest) (*domain.Trip, error)
	GetTrip(ctx context.Context, actor billing.Actor, tripID int32) (*domain.Trip, error)
	ListVisible(ctx context.Context, actor billing.Actor) ([]domain.Trip, error)
}

// StartTripRequest captures the driver's pickup entry.
type StartTripRequest struct {
	VehicleID    int32
	SupplierID   *int32
	StartLat     float64
	StartLng     float64
	StartAddress string
}

// EndTripRequest captures the driver's drop-off entry.
type EndTripRequest struct {
	TripID     int32
	EndLat     float64
	EndLng     float64
	EndAddress string
	DistanceKM float64
}

type BillingService interface {
	Ledger(ctx context.Context, actor billing.Actor, filter billing.LedgerFilter) ([]billing.PendingBill, []billing.SavedBill, error)
	PreviewBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.PendingBill, error)
	SaveBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.SavedBill, error)
}

type RateService interface {
	CreateRate(ctx context.Context, rate *domain.Rate) error
	GetRate(ctx context.Context, id int32) (*domain.Rate, error)
	UpdateRate(ctx context.Context, rate *domain.Rate) error
	DeleteRate(ctx context.Context, id int32) error
	ListRates(ctx context.Context) ([]domain.Rate, error)
}

type MasterDataService interface {
	CreateAgency(ctx context.Context, agency *domain.Agency) error
	GetAgency(ctx context.Context, id int32) (*domain.Agency, error)
	UpdateAgency(ctx context.Context, agency *domain.Agency) error
	DeleteAgency(ctx context.Context, id int32) error
	ListAgencies(ctx context.Context) ([]domain.Agency, error)

	CreatePlant(ctx context.Context, plant *domain.Plant) error
	GetPlant(ctx context.Context, id int32) (*domain.Plant, error)
	UpdatePlant(ctx context.Context, plant *domain.Plant) error
	DeletePlant(ctx context.Context, id int32) error
	ListPlants(ctx context.Context) ([]domain.Plant, error)

	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListVehiclesByAgency(ctx context.Context, agencyID int32) ([]domain.Vehicle, error)

	CreateSupplier(ctx context.Context, supplier *domain.Supplier) error
	GetSupplier(ctx context.Context, id int32) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error
	DeleteSupplier(ctx context.Context, id int32) error
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string, role domain.UserRole) error
	SendTripCompleted(ctx context.Context, email, name string, trip *domain.Trip) error
	SendBillGenerated(ctx context.Context, email, name string, bill *billing.SavedBill) error
	SendPendingBillReminder(ctx context.Context, email, name string, pendingCount int) error
	SendStaleTripReport(ctx context.Context, email, name string, trips []domain.Trip) error
	SendDailyBillingSummary(ctx context.Context, email, name string, billCount int, totalAmount float64) error
}
