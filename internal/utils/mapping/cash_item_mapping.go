package mapping

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/models"
)

func ToModelCashItem(d domain.CashItem) models.CashItem {
	return models.CashItem{
		CashItemID:  d.CashItemID,
		CashType:    string(d.CashType),
		Value:       d.Value,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCashItem(m models.CashItem) domain.CashItem {
	return domain.CashItem{
		CashItemID:  m.CashItemID,
		CashType:    domain.CashType(m.CashType),
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCashItemSlice(ms []models.CashItem) []domain.CashItem {
	ds := make([]domain.CashItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashItem(m)
	}
	return ds
}
