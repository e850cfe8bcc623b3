package dto

import (
	"time"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CreateVehicleTypeRequest defines the data needed to create a vehicle type.
type CreateVehicleTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	HourRate int64  `json:"hourRate" binding:"required,gt=0"`
}

// VehicleTypeResponse defines the data returned for a vehicle type.
type VehicleTypeResponse struct {
	VehicleTypeID string    `json:"vehicleTypeID"`
	Name          string    `json:"name"`
	HourRate      int64     `json:"hourRate"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToVehicleTypeResponse converts a domain.VehicleType to its DTO.
func ToVehicleTypeResponse(vt *domain.VehicleType) VehicleTypeResponse {
	return VehicleTypeResponse{
		VehicleTypeID: vt.VehicleTypeID,
		Name:          vt.Name,
		HourRate:      vt.HourRate,
		CreatedAt:     vt.CreatedAt,
		CreatedBy:     vt.CreatedBy,
		LastUpdatedAt: vt.LastUpdatedAt,
		LastUpdatedBy: vt.LastUpdatedBy,
	}
}

// ToListVehicleTypeResponse converts a slice of domain.VehicleType to DTOs.
func ToListVehicleTypeResponse(vts []domain.VehicleType) []VehicleTypeResponse {
	res := make([]VehicleTypeResponse, len(vts))
	for i, vt := range vts {
		res[i] = ToVehicleTypeResponse(&vt)
	}
	return res
}
