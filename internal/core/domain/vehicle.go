package domain

import "time"

// VehicleType is a category of vehicle with an hourly parking rate.
// Names are case-normalized to lower case and unique.
type VehicleType struct {
	VehicleTypeID string `json:"vehicleTypeID"`
	Name          string `json:"name"`
	HourRate      int64  `json:"hourRate"` // cents per hour
	AuditFields
}

// VehicleRegister is a single parking stay. ExitTime and PaidAmount are nil
// while the vehicle is inside; they are set exactly once at check-out and
// never change again. At most one active register exists per plate number.
type VehicleRegister struct {
	VehicleRegisterID string     `json:"vehicleRegisterID"`
	VehicleTypeID     string     `json:"vehicleTypeID"`
	PlateNumber       string     `json:"plateNumber"`
	EntryTime         time.Time  `json:"entryTime"`
	ExitTime          *time.Time `json:"exitTime,omitempty"`
	PaidAmount        *int64     `json:"paidAmount,omitempty"`
	AuditFields
}

// Active reports whether the stay has no recorded check-out yet.
func (r VehicleRegister) Active() bool {
	return r.ExitTime == nil
}
