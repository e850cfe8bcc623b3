package services

// ServiceContainer holds instances of all the application services. It is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User            UserSvcFacade
	Auth            AuthSvcFacade
	CashItem        CashItemSvcFacade
	CashRegister    CashRegisterSvcFacade
	VehicleType     VehicleTypeSvcFacade
	VehicleRegister VehicleRegisterSvcFacade
}
