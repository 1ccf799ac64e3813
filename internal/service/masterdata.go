package service

import (
	"context"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

type masterDataService struct {
	agencyRepo   repository.AgencyRepository
	plantRepo    repository.PlantRepository
	vehicleRepo  repository.VehicleRepository
	supplierRepo repository.SupplierRepository
}

func NewMasterDataService(
	agencyRepo repository.AgencyRepository,
	plantRepo repository.PlantRepository,
	vehicleRepo repository.VehicleRepository,
	supplierRepo repository.SupplierRepository,
) MasterDataService {
	return &masterDataService{
		agencyRepo:   agencyRepo,
		plantRepo:    plantRepo,
		vehicleRepo:  vehicleRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *masterDataService) CreateAgency(ctx context.Context, agency *domain.Agency) error {
	if _, err := s.plantRepo.GetByID(ctx, agency.PlantID); err != nil {
		return err
	}
	return s.agencyRepo.Create(ctx, agency)
}

func (s *masterDataService) GetAgency(ctx context.Context, id int32) (*domain.Agency, error) {
	return s.agencyRepo.GetByID(ctx, id)
}

func (s *masterDataService) UpdateAgency(ctx context.Context, agency *domain.Agency) error {
	if _, err := s.plantRepo.GetByID(ctx, agency.PlantID); err != nil {
		return err
	}
	return s.agencyRepo.Update(ctx, agency)
}

func (s *masterDataService) DeleteAgency(ctx context.Context, id int32) error {
	return s.agencyRepo.Delete(ctx, id)
}

func (s *masterDataService) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return s.agencyRepo.List(ctx)
}

func (s *masterDataService) CreatePlant(ctx context.Context, plant *domain.Plant) error {
	return s.plantRepo.Create(ctx, plant)
}

func (s *masterDataService) GetPlant(ctx context.Context, id int32) (*domain.Plant, error) {
	return s.plantRepo.GetByID(ctx, id)
}

func (s *masterDataService) UpdatePlant(ctx context.Context, plant *domain.Plant) error {
	return s.plantRepo.Update(ctx, plant)
}

func (s *masterDataService) DeletePlant(ctx context.Context, id int32) error {
	return s.plantRepo.Delete(ctx, id)
}

func (s *masterDataService) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	return s.plantRepo.List(ctx)
}

func (s *masterDataService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if _, err := s.agencyRepo.GetByID(ctx, vehicle.AgencyID); err != nil {
		return err
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *masterDataService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *masterDataService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if _, err := s.agencyRepo.GetByID(ctx, vehicle.AgencyID); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *masterDataService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *masterDataService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *masterDataService) ListVehiclesByAgency(ctx context.Context, agencyID int32) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByAgency(ctx, agencyID)
}

func (s *masterDataService) CreateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	return s.supplierRepo.Create(ctx, supplier)
}

func (s *masterDataService) GetSupplier(ctx context.Context, id int32) (*domain.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, id)
}

func (s *masterDataService) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	return s.supplierRepo.Update(ctx, supplier)
}

func (s *masterDataService) DeleteSupplier(ctx context.Context, id int32) error {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *masterDataService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.List(ctx)
}
