package dto

import (
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CreateVehicleRegisterRequest defines the data needed to check a vehicle in.
// Plate numbers are 7 alphanumeric characters (enforced by the platenumber
// validator) and case-normalized to upper case before reaching the service.
type CreateVehicleRegisterRequest struct {
	VehicleTypeID string `json:"vehicleTypeID" binding:"required"`
	PlateNumber   string `json:"plateNumber" binding:"required,platenumber"`
}

// VehicleRegisterResponse defines the data returned for a parking stay.
type VehicleRegisterResponse struct {
	VehicleRegisterID string     `json:"vehicleRegisterID"`
	VehicleTypeID     string     `json:"vehicleTypeID"`
	PlateNumber       string     `json:"plateNumber"`
	EntryTime         time.Time  `json:"entryTime"`
	ExitTime          *time.Time `json:"exitTime,omitempty"`
	PaidAmount        *int64     `json:"paidAmount,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	CreatedBy         string     `json:"createdBy"`
	LastUpdatedAt     time.Time  `json:"lastUpdatedAt"`
	LastUpdatedBy     string     `json:"lastUpdatedBy"`
}

// ToVehicleRegisterResponse converts a domain.VehicleRegister to its DTO.
func ToVehicleRegisterResponse(vr *domain.VehicleRegister) VehicleRegisterResponse {
	return VehicleRegisterResponse{
		VehicleRegisterID: vr.VehicleRegisterID,
		VehicleTypeID:     vr.VehicleTypeID,
		PlateNumber:       vr.PlateNumber,
		EntryTime:         vr.EntryTime,
		ExitTime:          vr.ExitTime,
		PaidAmount:        vr.PaidAmount,
		CreatedAt:         vr.CreatedAt,
		CreatedBy:         vr.CreatedBy,
		LastUpdatedAt:     vr.LastUpdatedAt,
		LastUpdatedBy:     vr.LastUpdatedBy,
	}
}

// ToListVehicleRegisterResponse converts a slice of registers to DTOs.
func ToListVehicleRegisterResponse(vrs []domain.VehicleRegister) []VehicleRegisterResponse {
	res := make([]VehicleRegisterResponse, len(vrs))
	for i, vr := range vrs {
		res[i] = ToVehicleRegisterResponse(&vr)
	}
	return res
}
