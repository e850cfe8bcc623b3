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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// registerClockOffset shifts recorded entry and exit times three hours behind
// UTC, matching the Brasília wall clock the drawer operates on.
const registerClockOffset = -3 * time.Hour

type VehicleRegisterService struct {
	vehicleRegisterRepo portsrepo.VehicleRegisterRepositoryFacade
	vehicleTypeRepo     portsrepo.VehicleTypeRepositoryFacade
	now                 func() time.Time
}

func NewVehicleRegisterService(vehicleRegisterRepo portsrepo.VehicleRegisterRepositoryFacade, vehicleTypeRepo portsrepo.VehicleTypeRepositoryFacade) *VehicleRegisterService {
	return &VehicleRegisterService{
		vehicleRegisterRepo: vehicleRegisterRepo,
		vehicleTypeRepo:     vehicleTypeRepo,
		now:                 time.Now,
	}
}

var _ portssvc.VehicleRegisterSvcFacade = (*VehicleRegisterService)(nil)

func (s *VehicleRegisterService) registerTime() time.Time {
	return s.now().UTC().Add(registerClockOffset)
}

func (s *VehicleRegisterService) CheckIn(ctx context.Context, userID string, req dto.CreateVehicleRegisterRequest) (*domain.VehicleRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.vehicleRegisterRepo.FindActiveByPlateNumber(ctx, req.PlateNumber); err == nil {
		return nil, apperrors.NewAppError(409, "This vehicle already has an active registration!", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check active register for plate: %w", err)
	}

	if _, err := s.vehicleTypeRepo.FindVehicleTypeByID(ctx, req.VehicleTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle type: %w", err)
	}

	now := s.now()
	vr := domain.VehicleRegister{
		VehicleRegisterID: uuid.NewString(),
		VehicleTypeID:     req.VehicleTypeID,
		PlateNumber:       req.PlateNumber,
		EntryTime:         s.registerTime(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.vehicleRegisterRepo.SaveVehicleRegister(ctx, vr); err != nil {
		return nil, fmt.Errorf("failed to save vehicle register: %w", err)
	}

	logger.Info("Vehicle checked in",
		slog.String("vehicle_register_id", vr.VehicleRegisterID),
		slog.String("plate_number", vr.PlateNumber),
	)
	return &vr, nil
}

func (s *VehicleRegisterService) ListVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	registers, err := s.vehicleRegisterRepo.ListVehicleRegisters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle registers in service: %w", err)
	}
	if len(registers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return registers, nil
}

func (s *VehicleRegisterService) ListActiveVehicleRegisters(ctx context.Context) ([]domain.VehicleRegister, error) {
	registers, err := s.vehicleRegisterRepo.ListActiveVehicleRegisters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active vehicle registers in service: %w", err)
	}
	if len(registers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return registers, nil
}

func (s *VehicleRegisterService) FindByPlateNumber(ctx context.Context, plateNumber string) (*domain.VehicleRegister, error) {
	register, err := s.vehicleRegisterRepo.FindActiveByPlateNumber(ctx, plateNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find register by plate in service: %w", err)
	}
	return register, nil
}

func (s *VehicleRegisterService) FindByDate(ctx context.Context, date time.Time) ([]domain.VehicleRegister, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	registers, err := s.vehicleRegisterRepo.ListVehicleRegistersByEntryTime(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list registers by entry time in service: %w", err)
	}
	if len(registers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return registers, nil
}

func (s *VehicleRegisterService) CheckOut(ctx context.Context, userID string, registerID string) (*domain.VehicleRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	register, err := s.vehicleRegisterRepo.FindVehicleRegisterByID(ctx, registerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle register: %w", err)
	}

	if !register.Active() {
		return nil, apperrors.NewAppError(403, "This register is not active!", apperrors.ErrForbidden)
	}

	vt, err := s.vehicleTypeRepo.FindVehicleTypeByID(ctx, register.VehicleTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle type for check-out: %w", err)
	}

	exitTime := s.registerTime()
	paidAmount := parkingFee(register.EntryTime, exitTime, vt.HourRate)

	register.ExitTime = &exitTime
	register.PaidAmount = &paidAmount
	register.LastUpdatedAt = s.now()
	register.LastUpdatedBy = userID

	if err := s.vehicleRegisterRepo.CloseVehicleRegister(ctx, *register); err != nil {
		return nil, fmt.Errorf("failed to close vehicle register: %w", err)
	}

	logger.Info("Vehicle checked out",
		slog.String("vehicle_register_id", register.VehicleRegisterID),
		slog.String("plate_number", register.PlateNumber),
		slog.Int64("paid_amount", paidAmount),
	)
	return register, nil
}

// parkingFee charges the hourly rate over the elapsed fractional hours and
// rounds the result to the nearest multiple of five cents.
func parkingFee(entry, exit time.Time, hourRate int64) int64 {
	elapsed := exit.Sub(entry)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	hours := decimal.NewFromFloat(elapsed.Hours())

	fee := hours.Mul(decimal.NewFromInt(hourRate)).
		Div(decimal.NewFromInt(5)).
		Round(0).
		Mul(decimal.NewFromInt(5))

	return fee.IntPart()
}
