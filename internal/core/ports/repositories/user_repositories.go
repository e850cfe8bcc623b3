package repositories

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound
	// when no user has the given email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// SessionRepositoryFacade defines operations for session records.
type SessionRepositoryFacade interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByToken retrieves a session by its exact token. Returns
	// apperrors.ErrNotFound when the token is not known.
	FindSessionByToken(ctx context.Context, token string) (*domain.Session, error)
}
