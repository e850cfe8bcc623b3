package services

import (
	portsrepo "github.com/parkwise/parking_cash_app/internal/core/ports/repositories"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, repos.SessionRepo, cfg)
	container.CashItem = NewCashItemService(repos.CashItemRepo)
	container.CashRegister = NewCashRegisterService(repos.CashRegisterRepo, repos.CashItemRepo)
	container.VehicleType = NewVehicleTypeService(repos.VehicleTypeRepo)
	container.VehicleRegister = NewVehicleRegisterService(repos.VehicleRegisterRepo, repos.VehicleTypeRepo)

	return container
}
