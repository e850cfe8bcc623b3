package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/middleware"
	"github.com/parkwise/parking_cash_app/internal/utils"
	"github.com/google/uuid"
)

// CashRegisterService owns the drawer logic: balance derivation from the
// append-only register log, over-draw protection and change computation.
type CashRegisterService struct {
	cashRegisterRepo portsrepo.CashRegisterRepositoryWithTx
	cashItemRepo     portsrepo.CashItemRepositoryFacade
}

func NewCashRegisterService(cashRegisterRepo portsrepo.CashRegisterRepositoryWithTx, cashItemRepo portsrepo.CashItemRepositoryFacade) *CashRegisterService {
	return &CashRegisterService{
		cashRegisterRepo: cashRegisterRepo,
		cashItemRepo:     cashItemRepo,
	}
}

var _ portssvc.CashRegisterSvcFacade = (*CashRegisterService)(nil)

// stockByItem folds the grouped register sums into current stock per cash
// item: total INFLOW quantity minus total OUTFLOW quantity. Items without
// movements are simply absent.
func stockByItem(sums []domain.RegisterSum) map[string]int64 {
	stock := make(map[string]int64, len(sums))
	for _, sum := range sums {
		switch sum.TransactionType {
		case domain.Inflow:
			stock[sum.CashItemID] += sum.Quantity
		case domain.Outflow:
			stock[sum.CashItemID] -= sum.Quantity
		}
	}
	return stock
}

func (s *CashRegisterService) CreateCashRegisters(ctx context.Context, reqs []dto.CreateCashRegisterRequest, userID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	registers, items, err := s.buildRegisters(ctx, reqs, userID)
	if err != nil {
		return 0, err
	}

	if err := s.checkAvailability(ctx, registers, items); err != nil {
		return 0, err
	}

	count, err := s.cashRegisterRepo.SaveCashRegisters(ctx, registers)
	if err != nil {
		logger.Error("Failed to save cash register batch", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to save cash registers: %w", err)
	}

	logger.Info("Cash register batch created", slog.Int64("count", count), slog.String("user_id", userID))
	return count, nil
}

// buildRegisters validates that every referenced cash item exists and turns
// the requests into persistable drafts. Amount is always recomputed from
// quantity and face value, whatever the caller sent.
func (s *CashRegisterService) buildRegisters(ctx context.Context, reqs []dto.CreateCashRegisterRequest, userID string) ([]domain.CashRegister, map[string]domain.CashItem, error) {
	ids := make([]string, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))
	for _, req := range reqs {
		if _, ok := seen[req.CashItemID]; !ok {
			seen[req.CashItemID] = struct{}{}
			ids = append(ids, req.CashItemID)
		}
	}

	items, err := s.cashItemRepo.FindCashItemsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cash items: %w", err)
	}

	now := time.Now()
	registers := make([]domain.CashRegister, len(reqs))
	for i, req := range reqs {
		item, ok := items[req.CashItemID]
		if !ok {
			return nil, nil, apperrors.ErrNotFound
		}
		registers[i] = domain.CashRegister{
			CashRegisterID:  uuid.NewString(),
			CashItemID:      req.CashItemID,
			Quantity:        req.Quantity,
			Amount:          req.Quantity * item.Value,
			TransactionType: domain.TransactionType(req.TransactionType),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return registers, items, nil
}

// checkAvailability walks the OUTFLOW drafts against a working copy of the
// current stock, decrementing as lines are consumed, so the total requested
// per denomination can never exceed what the drawer holds.
func (s *CashRegisterService) checkAvailability(ctx context.Context, registers []domain.CashRegister, items map[string]domain.CashItem) error {
	sums, err := s.cashRegisterRepo.SumRegistersByItem(ctx)
	if err != nil {
		return fmt.Errorf("failed to load register sums: %w", err)
	}
	stock := stockByItem(sums)

	for _, register := range registers {
		if register.TransactionType != domain.Outflow {
			continue
		}
		if register.Quantity > stock[register.CashItemID] {
			item := items[register.CashItemID]
			msg := fmt.Sprintf("Insufficient quantity available for %s!", utils.FormatBRL(item.Value))
			return apperrors.NewAppError(403, msg, apperrors.ErrForbidden)
		}
		stock[register.CashItemID] -= register.Quantity
	}
	return nil
}

func (s *CashRegisterService) RegisterBalance(ctx context.Context) ([]domain.RegisterBalance, error) {
	items, err := s.cashItemRepo.ListCashItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}

	sums, err := s.cashRegisterRepo.SumRegistersByItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load register sums: %w", err)
	}
	stock := stockByItem(sums)

	// ListCashItems already orders by face value ascending.
	balances := make([]domain.RegisterBalance, len(items))
	for i, item := range items {
		quantity := stock[item.CashItemID]
		balances[i] = domain.RegisterBalance{
			CashItemID: item.CashItemID,
			CashType:   item.CashType,
			Value:      item.Value,
			Quantity:   quantity,
			Amount:     quantity * item.Value,
		}
	}
	return balances, nil
}

// makeChange selects denominations for the given change amount, largest face
// value first, taking at most the stocked quantity of each. The greedy walk
// does not backtrack: if it cannot land exactly on zero the change is
// refused, even when a different combination would have worked.
func (s *CashRegisterService) makeChange(ctx context.Context, changeValue int64) ([]domain.ChangeDetail, error) {
	balances, err := s.RegisterBalance(ctx)
	if err != nil {
		return nil, err
	}

	details := []domain.ChangeDetail{}
	remaining := changeValue
	for i := len(balances) - 1; i >= 0 && remaining > 0; i-- {
		balance := balances[i]
		if balance.Quantity <= 0 || balance.Value > remaining {
			continue
		}

		count := remaining / balance.Value
		if count > balance.Quantity {
			count = balance.Quantity
		}

		details = append(details, domain.ChangeDetail{
			CashItemID:      balance.CashItemID,
			Value:           balance.Value,
			Quantity:        count,
			Amount:          count * balance.Value,
			TransactionType: domain.Outflow,
		})
		remaining -= count * balance.Value
	}

	if remaining != 0 {
		return nil, apperrors.NewAppError(403, "Insufficient coins and notes in cash for change!", apperrors.ErrForbidden)
	}
	return details, nil
}

func (s *CashRegisterService) CreateChange(ctx context.Context, req dto.CreateChangeRequest, userID string) ([]domain.ChangeDetail, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalPaid < req.TotalPrice {
		return nil, apperrors.NewAppError(403, "Insufficient balance, the total paid is less than the total price!", apperrors.ErrForbidden)
	}

	changeValue := req.TotalPaid - req.TotalPrice

	details := []domain.ChangeDetail{}
	if changeValue > 0 {
		var err error
		details, err = s.makeChange(ctx, changeValue)
		if err != nil {
			return nil, err
		}
	}

	// Change OUTFLOWs and payment INFLOWs land in one atomic batch.
	reqs := make([]dto.CreateCashRegisterRequest, 0, len(details)+len(req.CashRegister))
	for _, detail := range details {
		reqs = append(reqs, dto.CreateCashRegisterRequest{
			CashItemID:      detail.CashItemID,
			Quantity:        detail.Quantity,
			Amount:          detail.Amount,
			TransactionType: string(detail.TransactionType),
		})
	}
	for _, inflow := range req.CashRegister {
		reqs = append(reqs, dto.CreateCashRegisterRequest{
			CashItemID:      inflow.CashItemID,
			Quantity:        inflow.Quantity,
			Amount:          inflow.Amount,
			TransactionType: inflow.TransactionType,
		})
	}

	registers, _, err := s.buildRegisters(ctx, reqs, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cashRegisterRepo.SaveCashRegisters(ctx, registers); err != nil {
		logger.Error("Failed to save change batch", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save change registers: %w", err)
	}

	logger.Info("Change created",
		slog.Int64("change_value", changeValue),
		slog.Int("outflow_lines", len(details)),
		slog.String("user_id", userID),
	)
	return details, nil
}
