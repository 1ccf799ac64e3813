package http

import (
	"context"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockBillingService
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) Ledger(ctx context.Context, actor billing.Actor, filter billing.LedgerFilter) ([]billing.PendingBill, []billing.SavedBill, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]billing.PendingBill), args.Get(1).([]billing.SavedBill), args.Error(2)
}

func (m *MockBillingService) PreviewBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.PendingBill, error) {
	args := m.Called(ctx, actor, tripID, basis, tollFees)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PendingBill), args.Error(1)
}

func (m *MockBillingService) SaveBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.SavedBill, error) {
	args := m.Called(ctx, actor, tripID, basis, tollFees)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.SavedBill), args.Error(1)
}

// MockTripService
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) StartTrip(ctx context.Context, driverID int32, req service.StartTripRequest) (*domain.Trip, error) {
	args := m.Called(ctx, driverID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) EndTrip(ctx context.Context, driverID int32, req service.EndTripRequest) (*domain.Trip, error) {
	args := m.Called(ctx, driverID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, actor billing.Actor, tripID int32) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) ListVisible(ctx context.Context, actor billing.Actor) ([]domain.Trip, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Trip), args.Error(1)
}
