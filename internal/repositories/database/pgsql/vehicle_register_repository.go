package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/parkwise/parking_cash_app/internal/models"
	"github.com/parkwise/parking_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVehicleRegisterRepository struct {
	BaseRepository
}

// newPgxVehicleRegisterRepository creates a new repository for parking stays.
func newPgxVehicleRegisterRepository(pool *pgxpool.Pool) portsrepo.VehicleRegisterRepositoryFacade {
	return &PgxVehicleRegisterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VehicleRegisterRepositoryFacade = (*PgxVehicleRegisterRepository)(nil)

const vehicleRegisterColumns = `vehicle_register_id, vehicle_type_id, plate_number, entry_time, exit_time, paid_amount, created_at, created_by, last_updated_at, last_updated_by`

// SaveVehicleRegister inserts a new register (check-in).
func (r *PgxVehicleRegisterRepository) SaveVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error {
	modelVR := mapping.ToModelVehicleRegister(vr)

	query := `
		INSERT INTO vehicle_registers (vehicle_register_id, vehicle_type_id, plate_number, entry_time, exit_time, paid_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelVR.VehicleRegisterID,
		modelVR.VehicleTypeID,
		modelVR.PlateNumber,
		modelVR.EntryTime,
		modelVR.ExitTime,
		modelVR.PaidAmount,
		modelVR.CreatedAt,
		modelVR.CreatedBy,
		modelVR.LastUpdatedAt,
		modelVR.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle register %s: %w", modelVR.VehicleRegisterID, err)
	}
	return nil
}

// CloseVehicleRegister sets the exit time and paid amount on an open
// register. The WHERE guard on exit_time keeps an already-closed row intact.
func (r *PgxVehicleRegisterRepository) CloseVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error {
	query := `
		UPDATE vehicle_registers
		SET exit_time = $1, paid_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE vehicle_register_id = $5 AND exit_time IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vr.ExitTime,
		vr.PaidAmount,
		vr.LastUpdatedAt,
		vr.LastUpdatedBy,
		vr.VehicleRegisterID,
	)
	if err != nil {
		return fmt.Errorf("failed to close vehicle register %s: %w", vr.VehicleRegisterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindVehicleRegisterByID retrieves a register by its ID.
func (r *PgxVehicleRegisterRepository) FindVehicleRegisterByID(ctx context.Context, registerID string) (*domain.VehicleRegister, error) {
	query := `SELECT ` + vehicleRegisterColumns + ` FROM vehicle_registers WHERE vehicle_register_id = $1;`
	return r.scanVehicleRegister(ctx, query, registerID)
}

// FindActiveByPlateNumber retrieves the active register for a plate.
func (r *PgxVehicleRegisterRepository) FindActiveByPlateNumber(ctx context.Context, plateNumber string) (*domain.VehicleRegister, error) {
	query := `SELECT ` + vehicleRegisterColumns + ` FROM vehicle_registers WHERE plate_number = $1 AND exit_time IS NULL;`
	return r.scanVehicleRegister(ctx, query, plateNumber)
}

func (r *PgxVehicleRegisterRepository) scanVehicleRegister(ctx context.Context, query string, arg any) (*domain.VehicleRegister, error) {
	var modelVR models.VehicleRegister
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelVR.VehicleRegisterID,
		&modelVR.VehicleTypeID,
		&modelVR.PlateNumber,
		&modelVR.EntryTime,
		&modelVR.ExitTime,
		&modelVR.PaidAmount,
		&modelVR.CreatedAt,
		&modelVR.CreatedBy,
		&modelVR.LastUpdatedAt,
		&modelVR.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle register: %w", err)
	}

	domainVR := mapping.ToDomainVehicleRegister(modelVR)
	return &domainVR, nil
}

// ListVehicleRegisters retrieves all registers ordered by exit time then
// entry time, ascending.
func (r *PgxVehicleRegisterRepository) ListVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	query := `SELECT ` + vehicleRegisterColumns + ` FROM vehicle_registers ORDER BY exit_time ASC, entry_time ASC;`
	return r.queryVehicleRegisters(ctx, query)
}

// ListActiveVehicleRegisters retrieves registers without an exit time.
func (r *PgxVehicleRegisterRepository) ListActiveVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	query := `SELECT ` + vehicleRegisterColumns + ` FROM vehicle_registers WHERE exit_time IS NULL ORDER BY entry_time ASC;`
	return r.queryVehicleRegisters(ctx, query)
}

// ListVehicleRegistersByEntryTime retrieves registers whose entry time falls
// within [start, end].
func (r *PgxVehicleRegisterRepository) ListVehicleRegistersByEntryTime(ctx context.Context, start, end time.Time) ([]domain.VehicleRegister, error) {
	query := `SELECT ` + vehicleRegisterColumns + ` FROM vehicle_registers WHERE entry_time >= $1 AND entry_time <= $2 ORDER BY exit_time ASC, entry_time ASC;`
	return r.queryVehicleRegisters(ctx, query, start, end)
}

func (r *PgxVehicleRegisterRepository) queryVehicleRegisters(ctx context.Context, query string, args ...any) ([]domain.VehicleRegister, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle registers: %w", err)
	}
	defer rows.Close()

	modelVRs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VehicleRegister, error) {
		var vr models.VehicleRegister
		err := row.Scan(
			&vr.VehicleRegisterID,
			&vr.VehicleTypeID,
			&vr.PlateNumber,
			&vr.EntryTime,
			&vr.ExitTime,
			&vr.PaidAmount,
			&vr.CreatedAt,
			&vr.CreatedBy,
			&vr.LastUpdatedAt,
			&vr.LastUpdatedBy,
		)
		return vr, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicle registers: %w", err)
	}

	return mapping.ToDomainVehicleRegisterSlice(modelVRs), nil
}
