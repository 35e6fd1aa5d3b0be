package services

import (
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/cache"
	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/repositories"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	CreatorService     CreatorService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	InvitationService  InvitationService
	ContactService     ContactService
	MembershipService  MembershipService
	CityService        CityService
	AdminService       AdminService
}

// NewServiceContainer wires repositories and providers into services.
func NewServiceContainer(db *gorm.DB, emailProvider email.Provider, cityCache *cache.CityCache) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	creatorRepo := repositories.NewCreatorRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)

	return &ServiceContainer{
		AuthService:        NewAuthService(db, userRepo, creatorRepo, emailProvider),
		CreatorService:     NewCreatorService(creatorRepo),
		ProfileService:     NewProfileService(creatorRepo, membershipRepo),
		JobService:         NewJobService(jobRepo),
		ApplicationService: NewApplicationService(applicationRepo, creatorRepo, jobRepo),
		InvitationService:  NewInvitationService(invitationRepo, creatorRepo, emailProvider),
		ContactService:     NewContactService(contactRepo, emailProvider),
		MembershipService:  NewMembershipService(membershipRepo),
		CityService:        NewCityService(creatorRepo, jobRepo, cityCache),
		AdminService:       NewAdminService(creatorRepo, jobRepo, contactRepo, invitationRepo, userRepo, cityCache),
	}
}
