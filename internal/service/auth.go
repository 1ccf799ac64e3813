package service

import (
	"context"
	"errors"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/repository"
	"fleetbill-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	email    EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, email EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		email:    email,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	// Re-read the user so role and affiliation changes take effect on
	// the next token pair.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) CreateUser(ctx context.Context, user *domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	// Welcome mail is best effort
	_ = s.email.SendWelcome(ctx, user.Email, user.Name, user.Role)
	return nil
}
