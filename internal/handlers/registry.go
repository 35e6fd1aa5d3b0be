package handlers

import (
	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/validator"
)

// AppHandlers bundles every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	CreatorHandler    *CreatorHandler
	ProfileHandler    *ProfileHandler
	JobHandler        *JobHandler
	ContactHandler    *ContactHandler
	MembershipHandler *MembershipHandler
	AdminHandler      *AdminHandler
}

// NewAppHandlers wires services into handlers around a shared base.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:       NewAuthHandler(base, sc.AuthService),
		CreatorHandler:    NewCreatorHandler(base, sc.CreatorService, sc.InvitationService),
		ProfileHandler:    NewProfileHandler(base, sc.ProfileService, sc.ApplicationService, sc.InvitationService),
		JobHandler:        NewJobHandler(base, sc.JobService, sc.ApplicationService),
		ContactHandler:    NewContactHandler(base, sc.ContactService),
		MembershipHandler: NewMembershipHandler(base, sc.MembershipService, sc.CityService),
		AdminHandler:      NewAdminHandler(base, sc.AdminService),
	}
}
