// Package seed loads the initial data set for a fresh installation: the
// admin account, the BRL denomination catalog, the opening drawer movements
// and the default vehicle types. Every step is idempotent and skipped when
// data already exists.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/parkwise/parking_cash_app/internal/utils"
	"github.com/google/uuid"
)

const (
	adminEmail    = "admin@admin.com"
	adminPassword = "Superadmin1"
)

type seedCashItem struct {
	cashType domain.CashType
	value    int64
}

var cashItemCatalog = []seedCashItem{
	{domain.Coin, 5},
	{domain.Coin, 10},
	{domain.Coin, 25},
	{domain.Coin, 50},
	{domain.Coin, 100},
	{domain.Note, 200},
	{domain.Note, 500},
	{domain.Note, 1000},
	{domain.Note, 2000},
	{domain.Note, 5000},
	{domain.Note, 10000},
	{domain.Note, 20000},
}

type seedMovement struct {
	value           int64
	quantity        int64
	transactionType domain.TransactionType
}

var openingMovements = []seedMovement{
	{5, 3, domain.Inflow},
	{10, 4, domain.Inflow},
	{50, 4, domain.Inflow},
	{50, 2, domain.Outflow},
	{100, 2, domain.Inflow},
	{200, 3, domain.Inflow},
	{500, 1, domain.Inflow},
	{1000, 2, domain.Inflow},
}

type seedVehicleType struct {
	name     string
	hourRate int64
}

var vehicleTypeCatalog = []seedVehicleType{
	{"carro", 400},
	{"moto", 250},
}

// Run applies the seed data. Each section only runs when its table is empty,
// so repeated invocations are safe.
func Run(ctx context.Context, logger *slog.Logger, repos portsrepo.RepositoryProvider) error {
	adminID, err := seedAdminUser(ctx, logger, repos.UserRepo)
	if err != nil {
		return err
	}

	if err := seedCashItems(ctx, logger, repos.CashItemRepo, adminID); err != nil {
		return err
	}

	if err := seedCashRegisters(ctx, logger, repos.CashItemRepo, repos.CashRegisterRepo, adminID); err != nil {
		return err
	}

	if err := seedVehicleTypes(ctx, logger, repos.VehicleTypeRepo, adminID); err != nil {
		return err
	}

	return nil
}

func seedAdminUser(ctx context.Context, logger *slog.Logger, userRepo portsrepo.UserRepositoryFacade) (string, error) {
	existing, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil {
		return existing.UserID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	adminID := uuid.NewString()
	admin := domain.User{
		UserID:       adminID,
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := userRepo.SaveUser(ctx, admin); err != nil {
		return "", fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Info("Seeded admin user", slog.String("email", adminEmail))
	return adminID, nil
}

func seedCashItems(ctx context.Context, logger *slog.Logger, cashItemRepo portsrepo.CashItemRepositoryFacade, adminID string) error {
	items, err := cashItemRepo.ListCashItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cash items for seed: %w", err)
	}
	if len(items) > 0 {
		return nil
	}

	now := time.Now()
	for _, entry := range cashItemCatalog {
		item := domain.CashItem{
			CashItemID: uuid.NewString(),
			CashType:   entry.cashType,
			Value:      entry.value,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     adminID,
				LastUpdatedAt: now,
				LastUpdatedBy: adminID,
			},
		}
		if err := cashItemRepo.SaveCashItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed cash item %d: %w", entry.value, err)
		}
	}

	logger.Info("Seeded denomination catalog", slog.Int("count", len(cashItemCatalog)))
	return nil
}

func seedCashRegisters(ctx context.Context, logger *slog.Logger, cashItemRepo portsrepo.CashItemRepositoryFacade, cashRegisterRepo portsrepo.CashRegisterRepositoryWithTx, adminID string) error {
	sums, err := cashRegisterRepo.SumRegistersByItem(ctx)
	if err != nil {
		return fmt.Errorf("failed to check register log for seed: %w", err)
	}
	if len(sums) > 0 {
		return nil
	}

	now := time.Now()
	registers := make([]domain.CashRegister, 0, len(openingMovements))
	for _, movement := range openingMovements {
		item, err := cashItemRepo.FindCashItemByValue(ctx, movement.value)
		if err != nil {
			return fmt.Errorf("failed to find cash item %d for seed: %w", movement.value, err)
		}
		registers = append(registers, domain.CashRegister{
			CashRegisterID:  uuid.NewString(),
			CashItemID:      item.CashItemID,
			Quantity:        movement.quantity,
			Amount:          movement.quantity * item.Value,
			TransactionType: movement.transactionType,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     adminID,
				LastUpdatedAt: now,
				LastUpdatedBy: adminID,
			},
		})
	}

	count, err := cashRegisterRepo.SaveCashRegisters(ctx, registers)
	if err != nil {
		return fmt.Errorf("failed to seed opening drawer movements: %w", err)
	}

	logger.Info("Seeded opening drawer movements", slog.Int64("count", count))
	return nil
}

func seedVehicleTypes(ctx context.Context, logger *slog.Logger, vehicleTypeRepo portsrepo.VehicleTypeRepositoryFacade, adminID string) error {
	vts, err := vehicleTypeRepo.ListVehicleTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vehicle types for seed: %w", err)
	}
	if len(vts) > 0 {
		return nil
	}

	now := time.Now()
	for _, entry := range vehicleTypeCatalog {
		vt := domain.VehicleType{
			VehicleTypeID: uuid.NewString(),
			Name:          entry.name,
			HourRate:      entry.hourRate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     adminID,
				LastUpdatedAt: now,
				LastUpdatedBy: adminID,
			},
		}
		if err := vehicleTypeRepo.SaveVehicleType(ctx, vt); err != nil {
			return fmt.Errorf("failed to seed vehicle type %s: %w", entry.name, err)
		}
	}

	logger.Info("Seeded vehicle types", slog.Int("count", len(vehicleTypeCatalog)))
	return nil
}
