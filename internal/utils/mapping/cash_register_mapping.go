package mapping

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/models"
)

func ToModelCashRegister(d domain.CashRegister) models.CashRegister {
	return models.CashRegister{
		CashRegisterID:  d.CashRegisterID,
		CashItemID:      d.CashItemID,
		Quantity:        d.Quantity,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCashRegister(m models.CashRegister) domain.CashRegister {
	return domain.CashRegister{
		CashRegisterID:  m.CashRegisterID,
		CashItemID:      m.CashItemID,
		Quantity:        m.Quantity,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
