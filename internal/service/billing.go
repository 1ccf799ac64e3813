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

type billingService struct {
	tripRepo    repository.TripRepository
	billingRepo repository.BillingRepository
	rateRepo    repository.RateRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	email       EmailService
}

func NewBillingService(
	tripRepo repository.TripRepository,
	billingRepo repository.BillingRepository,
	rateRepo repository.RateRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	email EmailService,
) BillingService {
	return &billingService{
		tripRepo:    tripRepo,
		billingRepo: billingRepo,
		rateRepo:    rateRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		email:       email,
	}
}

func (s *billingService) Ledger(ctx context.Context, actor billing.Actor, filter billing.LedgerFilter) ([]billing.PendingBill, []billing.SavedBill, error) {
	p, err := s.project(ctx, actor, filter)
	if err != nil {
		return nil, nil, err
	}
	return p.Pending(), p.Generated(), nil
}

func (s *billingService) PreviewBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.PendingBill, error) {
	p, err := s.project(ctx, actor, billing.LedgerFilter{})
	if err != nil {
		return nil, err
	}
	if err := p.SetBasis(tripID, basis); err != nil {
		return nil, err
	}
	if err := p.SetTollFees(tripID, tollFees); err != nil {
		return nil, err
	}
	for _, wb := range p.Pending() {
		if wb.Trip.ID == tripID {
			return &wb, nil
		}
	}
	return nil, billing.ErrUnknownTrip
}

func (s *billingService) SaveBill(ctx context.Context, actor billing.Actor, tripID int32, basis billing.Basis, tollFees float64) (*billing.SavedBill, error) {
	p, err := s.project(ctx, actor, billing.LedgerFilter{})
	if err != nil {
		return nil, err
	}
	if err := p.SetBasis(tripID, basis); err != nil {
		return nil, err
	}
	if err := p.SetTollFees(tripID, tollFees); err != nil {
		return nil, err
	}

	wb, err := p.Save(tripID)
	if err != nil {
		return nil, err
	}

	// The projection can be stale; another request may have billed the
	// trip since the records were loaded.
	if _, err := s.billingRepo.GetByTripID(ctx, tripID); err == nil {
		return nil, billing.ErrAlreadyBilled
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	rec := &domain.BillingRecord{
		TripID:         tripID,
		TripType:       domain.RateType(wb.Basis),
		CalculatedRate: wb.CalculatedRate,
		TollFees:       wb.TollFees,
		TotalAmount:    wb.TotalAmount,
		CreatedAt:      time.Now(),
	}
	if err := s.billingRepo.Create(ctx, rec); err != nil {
		// The pending state is untouched so the caller can retry.
		return nil, err
	}

	saved, err := p.MarkSaved(tripID, rec)
	if err != nil {
		return nil, err
	}

	logger.Info("bill generated",
		"trip_id", tripID,
		"bill_number", saved.BillNumber,
		"basis", saved.BasisLabel,
		"total", saved.TotalAmount,
	)

	s.notifyBillGenerated(ctx, saved)
	return saved, nil
}

// project loads the actor's scope and builds a fresh ledger projection.
func (s *billingService) project(ctx context.Context, actor billing.Actor, filter billing.LedgerFilter) (*billing.Projector, error) {
	if !billing.CanViewBilling(actor) {
		return nil, billing.ErrViewOnly
	}

	trips, err := s.loadForActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	trips = billing.ApplyFilters(trips, filter)

	bills, err := s.billingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return billing.NewProjector(trips, bills, rates, actor), nil
}

func (s *billingService) loadForActor(ctx context.Context, actor billing.Actor) ([]domain.Trip, error) {
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

// notifyBillGenerated tells the trip's driver a bill exists. Best effort.
func (s *billingService) notifyBillGenerated(ctx context.Context, bill *billing.SavedBill) {
	driver, err := s.userRepo.GetByID(ctx, bill.Trip.DriverID)
	if err != nil {
		logger.Warn("failed to load driver for bill notice", "driver_id", bill.Trip.DriverID, "error", err)
		return
	}
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:  driver.ID,
		Title:   "Bill generated",
		Message: "Bill " + bill.BillNumber + " was generated for your trip.",
		Attributes: map[string]string{
			"trip_id":     strconv.Itoa(int(bill.Trip.ID)),
			"bill_number": bill.BillNumber,
		},
	})
	_ = s.email.SendBillGenerated(ctx, driver.Email, driver.Name, bill)
}
