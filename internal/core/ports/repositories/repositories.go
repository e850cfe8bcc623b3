package repositories

// RepositoryProvider groups the repository implementations handed to the
// service container at startup.
type RepositoryProvider struct {
	UserRepo            UserRepositoryFacade
	SessionRepo         SessionRepositoryFacade
	CashItemRepo        CashItemRepositoryFacade
	CashRegisterRepo    CashRegisterRepositoryWithTx
	VehicleTypeRepo     VehicleTypeRepositoryFacade
	VehicleRegisterRepo VehicleRegisterRepositoryFacade
}
