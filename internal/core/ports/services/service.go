package services

// ServiceProvider holds all service facades needed by the HTTP handlers.
type ServiceProvider struct {
	MemberSvc        MemberSvcFacade
	CategorySvc      CategorySvcFacade
	DepositSvc       DepositSvcFacade
	WithdrawalSvc    WithdrawalSvcFacade
	PointExchangeSvc PointExchangeSvcFacade
	TreasurySvc      TreasurySvcFacade
	ReportingSvc     ReportingSvcFacade
}
