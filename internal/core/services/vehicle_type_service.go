package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/google/uuid"
)

type VehicleTypeService struct {
	vehicleTypeRepo portsrepo.VehicleTypeRepositoryFacade
}

func NewVehicleTypeService(vehicleTypeRepo portsrepo.VehicleTypeRepositoryFacade) *VehicleTypeService {
	return &VehicleTypeService{vehicleTypeRepo: vehicleTypeRepo}
}

var _ portssvc.VehicleTypeSvcFacade = (*VehicleTypeService)(nil)

func (s *VehicleTypeService) CreateVehicleType(ctx context.Context, req dto.CreateVehicleTypeRequest, creatorUserID string) (*domain.VehicleType, error) {
	name := strings.ToLower(req.Name)

	if _, err := s.vehicleTypeRepo.FindVehicleTypeByName(ctx, name); err == nil {
		return nil, apperrors.NewAppError(409, "There is already a vehicle type with this name!", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check vehicle type uniqueness: %w", err)
	}

	now := time.Now()
	vt := domain.VehicleType{
		VehicleTypeID: uuid.NewString(),
		Name:          name,
		HourRate:      req.HourRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleTypeRepo.SaveVehicleType(ctx, vt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(409, "There is already a vehicle type with this name!", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create vehicle type in service: %w", err)
	}

	return &vt, nil
}

func (s *VehicleTypeService) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	vts, err := s.vehicleTypeRepo.ListVehicleTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle types in service: %w", err)
	}
	if len(vts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return vts, nil
}
