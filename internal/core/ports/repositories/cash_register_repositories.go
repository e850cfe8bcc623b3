package repositories

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CashRegisterReader defines read operations over the register log.
type CashRegisterReader interface {
	// SumRegistersByItem returns total quantity grouped by
	// (cash item, transaction type) over the full register log.
	SumRegistersByItem(ctx context.Context) ([]domain.RegisterSum, error)
}

// CashRegisterWriter defines write operations over the register log.
type CashRegisterWriter interface {
	// SaveCashRegisters appends the given movements as one atomic batch and
	// returns the number of inserted rows. A mid-batch failure leaves no
	// partial rows behind.
	SaveCashRegisters(ctx context.Context, registers []domain.CashRegister) (int64, error)
}

// CashRegisterRepositoryFacade combines all register-log repository interfaces.
type CashRegisterRepositoryFacade interface {
	CashRegisterReader
	CashRegisterWriter
}

// CashRegisterRepositoryWithTx extends the facade with transaction capabilities.
type CashRegisterRepositoryWithTx interface {
	CashRegisterRepositoryFacade
	TransactionManager
}
