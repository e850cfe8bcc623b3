package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/parkwise/parking_cash_app/internal/platform/config"
	"github.com/parkwise/parking_cash_app/internal/utils"
	"github.com/google/uuid"
)

// AuthService issues and validates sessions. A sign-in produces both a signed
// JWT and a persisted session row; validation requires both to match.
type AuthService struct {
	userRepo    portsrepo.UserRepositoryFacade
	sessionRepo portsrepo.SessionRepositoryFacade
	cfg         *config.Config
}

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, sessionRepo portsrepo.SessionRepositoryFacade, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.SignInResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user for sign-in: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Sign-in attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		Token:     token,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("User signed in", slog.String("user_id", user.UserID))

	return &dto.SignInResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Token:  token,
	}, nil
}

func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindSessionByToken(ctx, token)
	if err != nil {
		// A valid signature without a session row is still rejected.
		return "", apperrors.ErrUnauthorized
	}

	if session.UserID != claims.Subject {
		return "", apperrors.ErrUnauthorized
	}

	return session.UserID, nil
}
