package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/logger"
	"fleetbill-backend/internal/repository"
)

var (
	ErrNotTripDriver    = errors.New("trip belongs to another driver")
	ErrTripNotActive    = errors.New("trip is not active")
	ErrVehicleMismatch  = errors.New("vehicle belongs to another agency")
	ErrDriverUnassigned = errors.New("driver has no agency assignment")
)

type tripService struct {
	tripRepo     repository.TripRepository
	vehicleRepo  repository.VehicleRepository
	supplierRepo repository.SupplierRepository
	agencyRepo   repository.AgencyRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	email        EmailService
}

func NewTripService(
	tripRepo repository.TripRepository,
	vehicleRepo repository.VehicleRepository,
	supplierRepo repository.SupplierRepository,
	agencyRepo repository.AgencyRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	email EmailService,
) TripService {
	return &tripService{
		tripRepo:     tripRepo,
		vehicleRepo:  vehicleRepo,
		supplierRepo: supplierRepo,
		agencyRepo:   agencyRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		email:        email,
	}
}

func (s *tripService) StartTrip(ctx context.Context, driverID int32, req StartTripRequest) (*domain.Trip, error) {
	driver, err := s.userRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.AgencyID == nil {
		return nil, ErrDriverUnassigned
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.AgencyID != *driver.AgencyID {
		return nil, ErrVehicleMismatch
	}

	agency, err := s.agencyRepo.GetByID(ctx, *driver.AgencyID)
	if err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		AgencyID:      agency.ID,
		PlantID:       &agency.PlantID,
		VehicleID:     vehicle.ID,
		VehicleNumber: vehicle.Number,
		Tone:          vehicle.Tone,
		DriverID:      driver.ID,
		DriverName:    driver.Name,
		DriverPhone:   driver.PhoneNumber,
		StartTime:     time.Now(),
		StartLat:      req.StartLat,
		StartLng:      req.StartLng,
		StartAddress:  req.StartAddress,
		Status:        domain.TripStatusActive,
	}

	if req.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, err
		}
		trip.SupplierID = &supplier.ID
		trip.SupplierName = supplier.Name
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	trip.Agency = agency

	logger.Info("trip started", "trip_id", trip.ID, "driver_id", driver.ID, "vehicle", vehicle.Number)
	return trip, nil
}

func (s *tripService) EndTrip(ctx context.Context, driverID int32, req EndTripRequest) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, ErrNotTripDriver
	}
	if trip.Status != domain.TripStatusActive {
		return nil, ErrTripNotActive
	}

	now := time.Now()
	trip.EndTime = &now
	trip.EndLat = &req.EndLat
	trip.EndLng = &req.EndLng
	trip.EndAddress = req.EndAddress
	trip.DistanceKM = &req.DistanceKM
	trip.Status = domain.TripStatusCompleted

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("trip completed", "trip_id", trip.ID, "driver_id", driverID, "distance_km", req.DistanceKM)

	s.notifyPlantStaff(ctx, trip)
	return trip, nil
}

// notifyPlantStaff tells the trip's plant staff a trip finished. Delivery
// is best effort and never fails the completion.
func (s *tripService) notifyPlantStaff(ctx context.Context, trip *domain.Trip) {
	if trip.PlantID == nil {
		return
	}
	for _, role := range []domain.UserRole{domain.UserRolePlantAdmin, domain.UserRoleFinance} {
		staff, err := s.userRepo.ListByRole(ctx, role)
		if err != nil {
			logger.Warn("failed to list plant staff for trip notice", "role", role, "error", err)
			continue
		}
		for i := range staff {
			u := &staff[i]
			if u.PlantID == nil || *u.PlantID != *trip.PlantID {
				continue
			}
			_ = s.noteRepo.Create(ctx, &domain.Notification{
				UserID:  u.ID,
				Title:   "Trip completed",
				Message: "Vehicle " + trip.VehicleNumber + " completed a trip and is ready for billing.",
				Attributes: map[string]string{
					"trip_id": strconv.Itoa(int(trip.ID)),
				},
			})
			_ = s.email.SendTripCompleted(ctx, u.Email, u.Name, trip)
		}
	}
}

func (s *tripService) GetTrip(ctx context.Context, actor billing.Actor, tripID int32) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	visible := billing.FilterVisibleTrips([]domain.Trip{*trip}, actor)
	if len(visible) == 0 {
		return nil, domain.ErrNotFound
	}
	return trip, nil
}

func (s *tripService) ListVisible(ctx context.Context, actor billing.Actor) ([]domain.Trip, error) {
	trips, err := s.loadForActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return billing.FilterVisibleTrips(trips, actor), nil
}

// loadForActor narrows the store query to the actor's scope where one
// exists. FilterVisibleTrips still runs on the result, so a missing
// affiliation falls through to an empty set rather than a full scan.
func (s *tripService) loadForActor(ctx context.Context, actor billing.Actor) ([]domain.Trip, error) {
	switch actor.Role {
	case domain.UserRoleDriver:
		if actor.AgencyID == nil {
			return nil, nil
		}
		return s.tripRepo.ListByAgency(ctx, *actor.AgencyID)
	case domain.UserRolePlantAdmin, domain.UserRoleFinance, domain.UserRoleMMD:
		if actor.PlantID == nil {
			return nil, nil
		}
		return s.tripRepo.ListByPlant(ctx, *actor.PlantID)
	default:
		return s.tripRepo.List(ctx)
	}
}
