package mapping

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/models"
)

func ToModelVehicleType(d domain.VehicleType) models.VehicleType {
	return models.VehicleType{
		VehicleTypeID: d.VehicleTypeID,
		Name:          d.Name,
		HourRate:      d.HourRate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainVehicleType(m models.VehicleType) domain.VehicleType {
	return domain.VehicleType{
		VehicleTypeID: m.VehicleTypeID,
		Name:          m.Name,
		HourRate:      m.HourRate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainVehicleTypeSlice(ms []models.VehicleType) []domain.VehicleType {
	ds := make([]domain.VehicleType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVehicleType(m)
	}
	return ds
}

func ToModelVehicleRegister(d domain.VehicleRegister) models.VehicleRegister {
	return models.VehicleRegister{
		VehicleRegisterID: d.VehicleRegisterID,
		VehicleTypeID:     d.VehicleTypeID,
		PlateNumber:       d.PlateNumber,
		EntryTime:         d.EntryTime,
		ExitTime:          d.ExitTime,
		PaidAmount:        d.PaidAmount,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainVehicleRegister(m models.VehicleRegister) domain.VehicleRegister {
	return domain.VehicleRegister{
		VehicleRegisterID: m.VehicleRegisterID,
		VehicleTypeID:     m.VehicleTypeID,
		PlateNumber:       m.PlateNumber,
		EntryTime:         m.EntryTime,
		ExitTime:          m.ExitTime,
		PaidAmount:        m.PaidAmount,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainVehicleRegisterSlice(ms []models.VehicleRegister) []domain.VehicleRegister {
	ds := make([]domain.VehicleRegister, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVehicleRegister(m)
	}
	return ds
}
