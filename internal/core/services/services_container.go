package services

import (
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.WorkplaceRepo)
	container.Identity = NewIdentityService(repos.UserRepo)
	container.Access = NewAccessService(repos.UserRepo)
	container.Onboarding = NewOnboardingService(repos.UserRepo, repos.WorkplaceRepo, repos.InviteRepo)
	container.Schedule = NewScheduleService(repos.BoardRepo, repos.ShiftRepo)
	container.Shift = NewShiftService(repos.ShiftRepo, repos.UserRepo, repos.BoardRepo)
	container.Employee = NewEmployeeService(repos.UserRepo)
	container.Request = NewRequestService(repos.RequestRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
