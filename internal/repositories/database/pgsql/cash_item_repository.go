package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/parkwise/parking_cash_app/internal/models"
	"github.com/parkwise/parking_cash_app/internal/utils/mapping"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashItemRepository struct {
	BaseRepository
}

// newPgxCashItemRepository creates a new repository for the denomination catalog.
func newPgxCashItemRepository(pool *pgxpool.Pool) portsrepo.CashItemRepositoryFacade {
	return &PgxCashItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashItemRepositoryFacade = (*PgxCashItemRepository)(nil)

const cashItemColumns = `cash_item_id, cash_type, value, created_at, created_by, last_updated_at, last_updated_by`

// SaveCashItem inserts a new cash item. A duplicate face value surfaces as
// ErrConflict via the unique constraint on value.
func (r *PgxCashItemRepository) SaveCashItem(ctx context.Context, item domain.CashItem) error {
	modelItem := mapping.ToModelCashItem(item)

	query := `
		INSERT INTO cash_items (cash_item_id, cash_type, value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelItem.CashItemID,
		modelItem.CashType,
		modelItem.Value,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to save cash item %s: %w", modelItem.CashItemID, err)
	}
	return nil
}

// FindCashItemByID retrieves a cash item by its ID.
func (r *PgxCashItemRepository) FindCashItemByID(ctx context.Context, cashItemID string) (*domain.CashItem, error) {
	query := `SELECT ` + cashItemColumns + ` FROM cash_items WHERE cash_item_id = $1;`
	return r.scanCashItem(ctx, query, cashItemID)
}

// FindCashItemByValue retrieves a cash item by its face value.
func (r *PgxCashItemRepository) FindCashItemByValue(ctx context.Context, value int64) (*domain.CashItem, error) {
	query := `SELECT ` + cashItemColumns + ` FROM cash_items WHERE value = $1;`
	return r.scanCashItem(ctx, query, value)
}

func (r *PgxCashItemRepository) scanCashItem(ctx context.Context, query string, arg any) (*domain.CashItem, error) {
	var modelItem models.CashItem
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelItem.CashItemID,
		&modelItem.CashType,
		&modelItem.Value,
		&modelItem.CreatedAt,
		&modelItem.CreatedBy,
		&modelItem.LastUpdatedAt,
		&modelItem.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash item: %w", err)
	}

	domainItem := mapping.ToDomainCashItem(modelItem)
	return &domainItem, nil
}

// FindCashItemsByIDs retrieves the cash items for the given IDs, keyed by ID.
// IDs without a matching row are simply absent from the result.
func (r *PgxCashItemRepository) FindCashItemsByIDs(ctx context.Context, cashItemIDs []string) (map[string]domain.CashItem, error) {
	if len(cashItemIDs) == 0 {
		return map[string]domain.CashItem{}, nil
	}

	query := `SELECT ` + cashItemColumns + ` FROM cash_items WHERE cash_item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, cashItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash items by ids: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanCashItemRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash items: %w", err)
	}

	result := make(map[string]domain.CashItem, len(modelItems))
	for _, m := range modelItems {
		result[m.CashItemID] = mapping.ToDomainCashItem(m)
	}
	return result, nil
}

// ListCashItems retrieves the full denomination catalog.
func (r *PgxCashItemRepository) ListCashItems(ctx context.Context) ([]domain.CashItem, error) {
	query := `SELECT ` + cashItemColumns + ` FROM cash_items ORDER BY value;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, scanCashItemRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cash items: %w", err)
	}

	return mapping.ToDomainCashItemSlice(modelItems), nil
}

func scanCashItemRow(row pgx.CollectableRow) (models.CashItem, error) {
	var item models.CashItem
	err := row.Scan(
		&item.CashItemID,
		&item.CashType,
		&item.Value,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	return item, err
}
