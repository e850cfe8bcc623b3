package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/google/uuid"
)

type CashItemService struct {
	cashItemRepo portsrepo.CashItemRepositoryFacade
}

func NewCashItemService(cashItemRepo portsrepo.CashItemRepositoryFacade) *CashItemService {
	return &CashItemService{cashItemRepo: cashItemRepo}
}

var _ portssvc.CashItemSvcFacade = (*CashItemService)(nil)

func (s *CashItemService) CreateCashItem(ctx context.Context, req dto.CreateCashItemRequest, creatorUserID string) (*domain.CashItem, error) {
	if _, err := s.cashItemRepo.FindCashItemByValue(ctx, req.Value); err == nil {
		return nil, apperrors.NewAppError(409, "Already exists a cash item with this value!", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check cash item uniqueness: %w", err)
	}

	now := time.Now()
	item := domain.CashItem{
		CashItemID: uuid.NewString(),
		CashType:   domain.CashType(req.CashType),
		Value:      req.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cashItemRepo.SaveCashItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(409, "Already exists a cash item with this value!", apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create cash item in service: %w", err)
	}

	return &item, nil
}

func (s *CashItemService) ListCashItems(ctx context.Context) ([]domain.CashItem, error) {
	items, err := s.cashItemRepo.ListCashItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash items in service: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return items, nil
}
