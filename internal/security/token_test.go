package security

import (
	"testing"

	"fleetbill-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

func testUser() *domain.User {
	agencyID := int32(2)
	return &domain.User{
		ID:       10,
		Email:    "ravi@acme.example",
		Role:     domain.UserRoleDriver,
		AgencyID: &agencyID,
	}
}

func TestTokenManager_AccessToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 10080)

	token, err := tm.GenerateAccessToken(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(10), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, domain.UserRoleDriver, claims.Role)
	assert.Equal(t, int32(2), *claims.AgencyID)
	assert.Nil(t, claims.PlantID)
}

func TestTokenManager_RefreshToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 10080)

	token, err := tm.GenerateRefreshToken(testUser())
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Equal(t, int32(10), claims.UserID)
}

func TestTokenManager_ValidateToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 10080)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret-key-that-is-32-chars!", 15, 10080)
		token, err := other.GenerateAccessToken(testUser())
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager(testSecret, -1, -1)
		token, err := expired.GenerateAccessToken(testUser())
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
