package service

import (
	"context"
	"testing"

	"fleetbill-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateService_CreateRate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRateRepo)
		svc := NewRateService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Rate")).Return(nil)

		err := svc.CreateRate(ctx, &domain.Rate{AgencyID: 2, Tone: 5, Type: domain.RateTypeTrip, MinKM: f64(0), MaxKM: f64(50), Rate: 1500})
		assert.NoError(t, err)
	})

	t.Run("InvertedBracketRejected", func(t *testing.T) {
		repo := new(MockRateRepo)
		svc := NewRateService(repo)

		err := svc.CreateRate(ctx, &domain.Rate{AgencyID: 2, Tone: 5, Type: domain.RateTypeTrip, MinKM: f64(60), MaxKM: f64(50), Rate: 1500})
		assert.ErrorIs(t, err, ErrInvalidRateBracket)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("OpenEndedBracketAllowed", func(t *testing.T) {
		repo := new(MockRateRepo)
		svc := NewRateService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Rate")).Return(nil)

		err := svc.CreateRate(ctx, &domain.Rate{AgencyID: 2, Tone: 5, Type: domain.RateTypeTrip, MinKM: f64(50), Rate: 2500})
		assert.NoError(t, err)
	})
}
