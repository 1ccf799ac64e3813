package service

import (
	"context"
	"errors"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
)

var ErrInvalidRateBracket = errors.New("minimum kilometers must not exceed maximum kilometers")

type rateService struct {
	rateRepo repository.RateRepository
}

func NewRateService(rateRepo repository.RateRepository) RateService {
	return &rateService{rateRepo: rateRepo}
}

func (s *rateService) CreateRate(ctx context.Context, rate *domain.Rate) error {
	if err := validateRate(rate); err != nil {
		return err
	}
	return s.rateRepo.Create(ctx, rate)
}

func (s *rateService) GetRate(ctx context.Context, id int32) (*domain.Rate, error) {
	return s.rateRepo.GetByID(ctx, id)
}

func (s *rateService) UpdateRate(ctx context.Context, rate *domain.Rate) error {
	if err := validateRate(rate); err != nil {
		return err
	}
	return s.rateRepo.Update(ctx, rate)
}

func (s *rateService) DeleteRate(ctx context.Context, id int32) error {
	return s.rateRepo.Delete(ctx, id)
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return s.rateRepo.List(ctx)
}

func validateRate(rate *domain.Rate) error {
	if rate.Type == domain.RateTypeTrip && rate.MinKM != nil && rate.MaxKM != nil && *rate.MinKM > *rate.MaxKM {
		return ErrInvalidRateBracket
	}
	return nil
}
