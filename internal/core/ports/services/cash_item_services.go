package services

import (
	"context"

	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/dto"
)

// CashItemSvcFacade defines denomination catalog operations.
type CashItemSvcFacade interface {
	// CreateCashItem registers a new denomination. Returns
	// apperrors.ErrConflict when a denomination with the same face value
	// already exists.
	CreateCashItem(ctx context.Context, req dto.CreateCashItemRequest, creatorUserID string) (*domain.CashItem, error)

	// ListCashItems retrieves the full catalog. Returns
	// apperrors.ErrNotFound when the catalog is empty.
	ListCashItems(ctx context.Context) ([]domain.CashItem, error)
}
