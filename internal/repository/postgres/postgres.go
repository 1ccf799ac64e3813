package postgres

import (
	"database/sql"

	"fleetbill-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TripRepository
	repository.RateRepository
	repository.AgencyRepository
	repository.PlantRepository
	repository.VehicleRepository
	repository.SupplierRepository
	repository.BillingRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		TripRepository:         NewTripRepository(db),
		RateRepository:         NewRateRepository(db),
		AgencyRepository:       NewAgencyRepository(db),
		PlantRepository:        NewPlantRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		SupplierRepository:     NewSupplierRepository(db),
		BillingRepository:      NewBillingRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
