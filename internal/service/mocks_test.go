package service

import (
	"context"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockTripRepo
type MockTripRepo struct {
	mock.Mock
}

func (m *MockTripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}
func (m *MockTripRepo) GetByID(ctx context.Context, id int32) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripRepo) Update(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}
func (m *MockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripRepo) ListByAgency(ctx context.Context, agencyID int32) ([]domain.Trip, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripRepo) ListByPlant(ctx context.Context, plantID int32) ([]domain.Trip, error) {
	args := m.Called(ctx, plantID)
	return args.Get(0).([]domain.Trip), args.Error(1)
}
func (m *MockTripRepo) ListActiveOlderThan(ctx context.Context, hours int32) ([]domain.Trip, error) {
	args := m.Called(ctx, hours)
	return args.Get(0).([]domain.Trip), args.Error(1)
}

// MockRateRepo
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) Create(ctx context.Context, rate *domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) GetByID(ctx context.Context, id int32) (*domain.Rate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockRateRepo) Update(ctx context.Context, rate *domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRateRepo) List(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rate), args.Error(1)
}

// MockBillingRepo
type MockBillingRepo struct {
	mock.Mock
}

func (m *MockBillingRepo) Create(ctx context.Context, rec *domain.BillingRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockBillingRepo) GetByTripID(ctx context.Context, tripID int32) (*domain.BillingRecord, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRecord), args.Error(1)
}
func (m *MockBillingRepo) List(ctx context.Context) ([]domain.BillingRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BillingRecord), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAgencyRepo
type MockAgencyRepo struct {
	mock.Mock
}

func (m *MockAgencyRepo) Create(ctx context.Context, agency *domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}
func (m *MockAgencyRepo) GetByID(ctx context.Context, id int32) (*domain.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}
func (m *MockAgencyRepo) Update(ctx context.Context, agency *domain.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}
func (m *MockAgencyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAgencyRepo) List(ctx context.Context) ([]domain.Agency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Agency), args.Error(1)
}

// MockPlantRepo
type MockPlantRepo struct {
	mock.Mock
}

func (m *MockPlantRepo) Create(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}
func (m *MockPlantRepo) GetByID(ctx context.Context, id int32) (*domain.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}
func (m *MockPlantRepo) Update(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}
func (m *MockPlantRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPlantRepo) List(ctx context.Context) ([]domain.Plant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Plant), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByAgency(ctx context.Context, agencyID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockSupplierRepo
type MockSupplierRepo struct {
	mock.Mock
}

func (m *MockSupplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepo) GetByID(ctx context.Context, id int32) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}
func (m *MockSupplierRepo) Update(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}
func (m *MockSupplierRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string, role domain.UserRole) error {
	args := m.Called(ctx, email, name, role)
	return args.Error(0)
}
func (m *MockEmailService) SendTripCompleted(ctx context.Context, email, name string, trip *domain.Trip) error {
	args := m.Called(ctx, email, name, trip)
	return args.Error(0)
}
func (m *MockEmailService) SendBillGenerated(ctx context.Context, email, name string, bill *billing.SavedBill) error {
	args := m.Called(ctx, email, name, bill)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingBillReminder(ctx context.Context, email, name string, pendingCount int) error {
	args := m.Called(ctx, email, name, pendingCount)
	return args.Error(0)
}
func (m *MockEmailService) SendStaleTripReport(ctx context.Context, email, name string, trips []domain.Trip) error {
	args := m.Called(ctx, email, name, trips)
	return args.Error(0)
}
func (m *MockEmailService) SendDailyBillingSummary(ctx context.Context, email, name string, billCount int, totalAmount float64) error {
	args := m.Called(ctx, email, name, billCount, totalAmount)
	return args.Error(0)
}
