package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/parkwise/parking_cash_app/internal/models"
	"github.com/parkwise/parking_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
}

// newPgxSessionRepository creates a new repository for session data.
func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

// SaveSession inserts a new session row.
func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	modelSession := mapping.ToModelSession(session)

	query := `
		INSERT INTO sessions (session_id, user_id, token, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSession.SessionID,
		modelSession.UserID,
		modelSession.Token,
		modelSession.CreatedAt,
		modelSession.CreatedBy,
		modelSession.LastUpdatedAt,
		modelSession.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", modelSession.SessionID, err)
	}
	return nil
}

// FindSessionByToken retrieves a session by its exact token.
func (r *PgxSessionRepository) FindSessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT session_id, user_id, token, created_at, created_by, last_updated_at, last_updated_by
		FROM sessions
		WHERE token = $1;
	`
	var modelSession models.Session
	err := r.Pool.QueryRow(ctx, query, token).Scan(
		&modelSession.SessionID,
		&modelSession.UserID,
		&modelSession.Token,
		&modelSession.CreatedAt,
		&modelSession.CreatedBy,
		&modelSession.LastUpdatedAt,
		&modelSession.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}

	domainSession := mapping.ToDomainSession(modelSession)
	return &domainSession, nil
}
