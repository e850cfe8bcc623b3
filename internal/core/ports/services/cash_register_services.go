package services

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/dto"
)

// CashRegisterSvcFacade defines the cash register engine operations.
type CashRegisterSvcFacade interface {
	// CreateCashRegisters validates that every referenced denomination
	// exists and that no OUTFLOW over-draws the derived stock, then appends
	// the whole batch atomically. Returns the number of inserted rows.
	CreateCashRegisters(ctx context.Context, reqs []dto.CreateCashRegisterRequest, userID string) (int64, error)

	// RegisterBalance returns the drawer balance view: every denomination
	// with its derived stock, ordered ascending by face value. Returns
	// apperrors.ErrNotFound when the catalog is empty.
	RegisterBalance(ctx context.Context) ([]domain.RegisterBalance, error)

	// CreateChange computes greedy exact change for totalPaid-totalPrice,
	// persists the change OUTFLOWs together with the supplied payment
	// INFLOWs as one batch, and returns the change details.
	CreateChange(ctx context.Context, req dto.CreateChangeRequest, userID string) ([]domain.ChangeDetail, error)
}
