package repositories

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
)

// CashItemReader defines read operations for the denomination catalog.
type CashItemReader interface {
	// FindCashItemByID retrieves a cash item by its ID.
	FindCashItemByID(ctx context.Context, cashItemID string) (*domain.CashItem, error)

	// FindCashItemByValue retrieves a cash item by its face value. Returns
	// apperrors.ErrNotFound when no item has the given value.
	FindCashItemByValue(ctx context.Context, value int64) (*domain.CashItem, error)

	// FindCashItemsByIDs retrieves the cash items for the given IDs. Missing
	// IDs are simply absent from the result.
	FindCashItemsByIDs(ctx context.Context, cashItemIDs []string) (map[string]domain.CashItem, error)

	// ListCashItems retrieves the full denomination catalog.
	ListCashItems(ctx context.Context) ([]domain.CashItem, error)
}

// CashItemWriter defines write operations for the denomination catalog.
type CashItemWriter interface {
	// SaveCashItem persists a new cash item.
	SaveCashItem(ctx context.Context, item domain.CashItem) error
}

// CashItemRepositoryFacade combines all cash item repository interfaces.
type CashItemRepositoryFacade interface {
	CashItemReader
	CashItemWriter
}
