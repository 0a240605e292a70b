package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User               UserSvcFacade
	Identity           IdentitySvcFacade
	Access             AccessSvcFacade
	Onboarding         OnboardingSvcFacade
	Schedule           ScheduleSvcFacade
	Shift              ShiftSvcFacade
	Employee           EmployeeSvcFacade
	Request            RequestSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
