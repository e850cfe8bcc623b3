package pgsql

import (
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(dbPool),
		SessionRepo:         newPgxSessionRepository(dbPool),
		CashItemRepo:        newPgxCashItemRepository(dbPool),
		CashRegisterRepo:    newPgxCashRegisterRepository(dbPool),
		VehicleTypeRepo:     newPgxVehicleTypeRepository(dbPool),
		VehicleRegisterRepo: newPgxVehicleRegisterRepository(dbPool),
	}
}
