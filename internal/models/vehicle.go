package models

import "time"

// VehicleType represents a row of the vehicle_types table.
type VehicleType struct {
	VehicleTypeID string `db:"vehicle_type_id"`
	Name          string `db:"name"`
	HourRate      int64  `db:"hour_rate"`
	AuditFields
}

// VehicleRegister represents a row of the vehicle_registers table.
type VehicleRegister struct {
	VehicleRegisterID string     `db:"vehicle_register_id"`
	VehicleTypeID     string     `db:"vehicle_type_id"`
	PlateNumber       string     `db:"plate_number"`
	EntryTime         time.Time  `db:"entry_time"`
	ExitTime          *time.Time `db:"exit_time"`
	PaidAmount        *int64     `db:"paid_amount"`
	AuditFields
}
