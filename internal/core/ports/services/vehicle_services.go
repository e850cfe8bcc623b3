package services

import (
	"context"
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/dto"
)

// VehicleTypeSvcFacade defines vehicle type operations.
type VehicleTypeSvcFacade interface {
	// CreateVehicleType registers a new type. The name arrives lower-cased.
	// Returns apperrors.ErrConflict when the name is already registered.
	CreateVehicleType(ctx context.Context, req dto.CreateVehicleTypeRequest, creatorUserID string) (*domain.VehicleType, error)

	// ListVehicleTypes retrieves all types. Returns apperrors.ErrNotFound
	// when none exist.
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
}

// VehicleRegisterSvcFacade defines parking stay operations.
type VehicleRegisterSvcFacade interface {
	// CheckIn opens a new register for the plate. Returns
	// apperrors.ErrConflict when the plate already has an active register
	// and apperrors.ErrNotFound when the vehicle type is unknown.
	CheckIn(ctx context.Context, userID string, req dto.CreateVehicleRegisterRequest) (*domain.VehicleRegister, error)

	// ListVehicleRegisters retrieves every register. Returns
	// apperrors.ErrNotFound when none exist.
	ListVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error)

	// ListActiveVehicleRegisters retrieves registers without an exit time.
	// Returns apperrors.ErrNotFound when none exist.
	ListActiveVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error)

	// FindByPlateNumber retrieves the active register for the plate.
	FindByPlateNumber(ctx context.Context, plateNumber string) (*domain.VehicleRegister, error)

	// FindByDate retrieves registers that entered on the given calendar day
	// (UTC). Returns apperrors.ErrNotFound when none exist.
	FindByDate(ctx context.Context, date time.Time) ([]domain.VehicleRegister, error)

	// CheckOut closes the register, computing the amount due from the
	// elapsed time and the type's hourly rate. Returns
	// apperrors.ErrNotFound for an unknown ID and apperrors.ErrForbidden
	// when the register is already closed.
	CheckOut(ctx context.Context, userID string, registerID string) (*domain.VehicleRegister, error)
}
