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
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVehicleTypeRepository struct {
	BaseRepository
}

// newPgxVehicleTypeRepository creates a new repository for vehicle types.
func newPgxVehicleTypeRepository(pool *pgxpool.Pool) portsrepo.VehicleTypeRepositoryFacade {
	return &PgxVehicleTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VehicleTypeRepositoryFacade = (*PgxVehicleTypeRepository)(nil)

const vehicleTypeColumns = `vehicle_type_id, name, hour_rate, created_at, created_by, last_updated_at, last_updated_by`

// SaveVehicleType inserts a new vehicle type. A duplicate name surfaces as
// ErrConflict via the unique constraint on name.
func (r *PgxVehicleTypeRepository) SaveVehicleType(ctx context.Context, vt domain.VehicleType) error {
	modelVT := mapping.ToModelVehicleType(vt)

	query := `
		INSERT INTO vehicle_types (vehicle_type_id, name, hour_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelVT.VehicleTypeID,
		modelVT.Name,
		modelVT.HourRate,
		modelVT.CreatedAt,
		modelVT.CreatedBy,
		modelVT.LastUpdatedAt,
		modelVT.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to save vehicle type %s: %w", modelVT.VehicleTypeID, err)
	}
	return nil
}

// FindVehicleTypeByID retrieves a vehicle type by its ID.
func (r *PgxVehicleTypeRepository) FindVehicleTypeByID(ctx context.Context, vehicleTypeID string) (*domain.VehicleType, error) {
	query := `SELECT ` + vehicleTypeColumns + ` FROM vehicle_types WHERE vehicle_type_id = $1;`
	return r.scanVehicleType(ctx, query, vehicleTypeID)
}

// FindVehicleTypeByName retrieves a vehicle type by its name.
func (r *PgxVehicleTypeRepository) FindVehicleTypeByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	query := `SELECT ` + vehicleTypeColumns + ` FROM vehicle_types WHERE name = $1;`
	return r.scanVehicleType(ctx, query, name)
}

func (r *PgxVehicleTypeRepository) scanVehicleType(ctx context.Context, query string, arg any) (*domain.VehicleType, error) {
	var modelVT models.VehicleType
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelVT.VehicleTypeID,
		&modelVT.Name,
		&modelVT.HourRate,
		&modelVT.CreatedAt,
		&modelVT.CreatedBy,
		&modelVT.LastUpdatedAt,
		&modelVT.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle type: %w", err)
	}

	domainVT := mapping.ToDomainVehicleType(modelVT)
	return &domainVT, nil
}

// ListVehicleTypes retrieves all vehicle types.
func (r *PgxVehicleTypeRepository) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	query := `SELECT ` + vehicleTypeColumns + ` FROM vehicle_types ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle types: %w", err)
	}
	defer rows.Close()

	modelVTs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VehicleType, error) {
		var vt models.VehicleType
		err := row.Scan(
			&vt.VehicleTypeID,
			&vt.Name,
			&vt.HourRate,
			&vt.CreatedAt,
			&vt.CreatedBy,
			&vt.LastUpdatedAt,
			&vt.LastUpdatedBy,
		)
		return vt, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicle types: %w", err)
	}

	return mapping.ToDomainVehicleTypeSlice(modelVTs), nil
}
