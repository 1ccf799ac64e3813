package repository

import (
	"context"

	"fleetbill-backend/internal/domain"
)

type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	GetByID(ctx context.Context, id int32) (*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	List(ctx context.Context) ([]domain.Trip, error)
	ListByAgency(ctx context.Context, agencyID int32) ([]domain.Trip, error)
	// ListByPlant returns trips attributed to the plant directly or
	// transitively through the trip's agency.
	ListByPlant(ctx context.Context, plantID int32) ([]domain.Trip, error)
	ListActiveOlderThan(ctx context.Context, hours int32) ([]domain.Trip, error)
}

type RateRepository interface {
	Create(ctx context.Context, rate *domain.Rate) error
	GetByID(ctx context.Context, id int32) (*domain.Rate, error)
	Update(ctx context.Context, rate *domain.Rate) error
	Delete(ctx context.Context, id int32) error
	// List returns the full rate table in id order; the resolver relies on
	// that order for its first-match tie-break.
	List(ctx context.Context) ([]domain.Rate, error)
}

type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	GetByID(ctx context.Context, id int32) (*domain.Agency, error)
	Update(ctx context.Context, agency *domain.Agency) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Agency, error)
}

type PlantRepository interface {
	Create(ctx context.Context, plant *domain.Plant) error
	GetByID(ctx context.Context, id int32) (*domain.Plant, error)
	Update(ctx context.Context, plant *domain.Plant) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Plant, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	ListByAgency(ctx context.Context, agencyID int32) ([]domain.Vehicle, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id int32) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Supplier, error)
}

type BillingRepository interface {
	// Create persists a bill. A second bill for the same trip fails with
	// domain.ErrDuplicateBill.
	Create(ctx context.Context, rec *domain.BillingRecord) error
	GetByTripID(ctx context.Context, tripID int32) (*domain.BillingRecord, error)
	List(ctx context.Context) ([]domain.BillingRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
