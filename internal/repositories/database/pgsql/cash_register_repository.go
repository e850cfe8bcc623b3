package pgsql

import (
	"context"
	"fmt"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/parkwise/parking_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashRegisterRepository struct {
	BaseRepository
}

// newPgxCashRegisterRepository creates a new repository for the register log.
func newPgxCashRegisterRepository(pool *pgxpool.Pool) portsrepo.CashRegisterRepositoryWithTx {
	return &PgxCashRegisterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashRegisterRepositoryWithTx = (*PgxCashRegisterRepository)(nil)

// SumRegistersByItem returns total quantity grouped by (cash item,
// transaction type) over the full register log.
func (r *PgxCashRegisterRepository) SumRegistersByItem(ctx context.Context) ([]domain.RegisterSum, error) {
	query := `
		SELECT cash_item_id, transaction_type, COALESCE(SUM(quantity), 0)
		FROM cash_registers
		GROUP BY cash_item_id, transaction_type
		ORDER BY cash_item_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query register sums: %w", err)
	}
	defer rows.Close()

	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RegisterSum, error) {
		var s domain.RegisterSum
		var txType string
		err := row.Scan(&s.CashItemID, &txType, &s.Quantity)
		s.TransactionType = domain.TransactionType(txType)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan register sums: %w", err)
	}

	return sums, nil
}

// SaveCashRegisters appends the given movements as one atomic batch inside a
// single database transaction and returns the number of inserted rows. A
// mid-batch failure rolls the whole batch back.
func (r *PgxCashRegisterRepository) SaveCashRegisters(ctx context.Context, registers []domain.CashRegister) (int64, error) {
	if len(registers) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	batch := &pgx.Batch{}
	query := `
		INSERT INTO cash_registers (cash_register_id, cash_item_id, quantity, amount, transaction_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, register := range registers {
		modelRegister := mapping.ToModelCashRegister(register)
		batch.Queue(query,
			modelRegister.CashRegisterID,
			modelRegister.CashItemID,
			modelRegister.Quantity,
			modelRegister.Amount,
			modelRegister.TransactionType,
			modelRegister.CreatedAt,
			modelRegister.CreatedBy,
			modelRegister.LastUpdatedAt,
			modelRegister.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to execute cash register batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return int64(len(registers)), nil
}
