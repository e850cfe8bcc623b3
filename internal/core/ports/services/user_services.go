package services

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/dto"
)

// UserSvcFacade defines the user account operations exposed to handlers.
type UserSvcFacade interface {
	// CreateUser registers a new account. Returns apperrors.ErrConflict when
	// the email is already taken.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
