package repositories

import (
	"context"
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// VehicleTypeReader defines read operations for vehicle types.
type VehicleTypeReader interface {
	// FindVehicleTypeByID retrieves a vehicle type by its ID.
	FindVehicleTypeByID(ctx context.Context, vehicleTypeID string) (*domain.VehicleType, error)

	// FindVehicleTypeByName retrieves a vehicle type by its (lower-cased)
	// name. Returns apperrors.ErrNotFound when the name is not registered.
	FindVehicleTypeByName(ctx context.Context, name string) (*domain.VehicleType, error)

	// ListVehicleTypes retrieves all vehicle types.
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
}

// VehicleTypeWriter defines write operations for vehicle types.
type VehicleTypeWriter interface {
	// SaveVehicleType persists a new vehicle type.
	SaveVehicleType(ctx context.Context, vt domain.VehicleType) error
}

// VehicleTypeRepositoryFacade combines all vehicle type repository interfaces.
type VehicleTypeRepositoryFacade interface {
	VehicleTypeReader
	VehicleTypeWriter
}

// VehicleRegisterReader defines read operations for parking stays.
type VehicleRegisterReader interface {
	// FindVehicleRegisterByID retrieves a register by its ID.
	FindVehicleRegisterByID(ctx context.Context, registerID string) (*domain.VehicleRegister, error)

	// FindActiveByPlateNumber retrieves the active (exit_time IS NULL)
	// register for a plate, or apperrors.ErrNotFound when none exists.
	FindActiveByPlateNumber(ctx context.Context, plateNumber string) (*domain.VehicleRegister, error)

	// ListVehicleRegisters retrieves all registers ordered by exit time then
	// entry time, ascending.
	ListVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error)

	// ListActiveVehicleRegisters retrieves registers without an exit time.
	ListActiveVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error)

	// ListVehicleRegistersByEntryTime retrieves registers whose entry time
	// falls within [start, end].
	ListVehicleRegistersByEntryTime(ctx context.Context, start, end time.Time) ([]domain.VehicleRegister, error)
}

// VehicleRegisterWriter defines write operations for parking stays.
type VehicleRegisterWriter interface {
	// SaveVehicleRegister persists a new register (check-in).
	SaveVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error

	// CloseVehicleRegister sets exit time and paid amount on an open register
	// (check-out). The row is never modified again afterwards.
	CloseVehicleRegister(ctx context.Context, vr domain.VehicleRegister) error
}

// VehicleRegisterRepositoryFacade combines all register repository interfaces.
type VehicleRegisterRepositoryFacade interface {
	VehicleRegisterReader
	VehicleRegisterWriter
}
