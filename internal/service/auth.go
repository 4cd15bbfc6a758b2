package service

import (
	"context"
	"errors"

	"fleetrental-backend/internal/repository"
	"fleetrental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.StaffUserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.StaffUserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", security.ErrWrongTokenType
	}
	return s.tokens.GenerateAccessToken(claims.UserID, claims.Username)
}
