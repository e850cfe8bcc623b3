package services

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/dto"
)

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// SignIn verifies the credentials, persists a session and returns the
	// bearer token. Returns apperrors.ErrInvalidCredentials on bad email or
	// password.
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.SignInResponse, error)

	// ValidateSession verifies the token signature and that a matching
	// session row exists, returning the owning user ID. Returns
	// apperrors.ErrUnauthorized otherwise.
	ValidateSession(ctx context.Context, token string) (string, error)
}
