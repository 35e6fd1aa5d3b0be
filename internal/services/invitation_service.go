package services

import (
	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

type InvitationService interface {
	Invite(creatorID string, req *dto.InvitationRequest) (*dto.InvitationDTO, error)
	ListOwn(userID string) ([]dto.InvitationDTO, error)
}

type InvitationServiceImpl struct {
	invitationRepo repositories.InvitationRepository
	creatorRepo    repositories.CreatorRepository
	emailProvider  email.Provider
}

func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	creatorRepo repositories.CreatorRepository,
	emailProvider email.Provider,
) InvitationService {
	return &InvitationServiceImpl{
		invitationRepo: invitationRepo,
		creatorRepo:    creatorRepo,
		emailProvider:  emailProvider,
	}
}

// Invite records a client's outreach to one approved creator and
// notifies the creator by email. Email delivery is best effort.
func (s *InvitationServiceImpl) Invite(creatorID string, req *dto.InvitationRequest) (*dto.InvitationDTO, error) {
	creator, err := s.creatorRepo.FindByID(creatorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrCreatorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if creator.Status != models.CreatorStatusApproved {
		return nil, apperrors.ErrCreatorNotFound
	}

	inv := &models.Invitation{
		CreatorID:   creator.ID,
		SenderEmail: req.SenderEmail,
		JobTitle:    req.JobTitle,
		JobBudget:   req.JobBudget,
		Message:     req.Message,
		Status:      models.InvitationStatusPending,
	}
	if err := s.invitationRepo.Create(inv); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyCreator(creator, inv)

	d := toInvitationDTO(inv)
	d.CreatorName = creator.FullName
	return &d, nil
}

func (s *InvitationServiceImpl) ListOwn(userID string) ([]dto.InvitationDTO, error) {
	creator, err := s.creatorRepo.FindByLinkedUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrNeedsOnboarding
		}
		return nil, apperrors.InternalError(err)
	}

	invs, err := s.invitationRepo.FindByCreator(creator.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.InvitationDTO, 0, len(invs))
	for i := range invs {
		out = append(out, toInvitationDTO(&invs[i]))
	}
	return out, nil
}

func (s *InvitationServiceImpl) notifyCreator(creator *models.Creator, inv *models.Invitation) {
	if s.emailProvider == nil || creator.Email == "" {
		return
	}
	err := s.emailProvider.SendTemplate(
		[]string{creator.Email},
		"New project invitation on AIB Hub",
		email.TemplateInvitationReceived,
		email.TemplateData{
			"CreatorName": creator.FullName,
			"SenderEmail": inv.SenderEmail,
			"JobTitle":    inv.JobTitle,
			"JobBudget":   inv.JobBudget,
			"Message":     inv.Message,
		},
	)
	if err != nil {
		logger.Warn("failed to send invitation email",
			"creator_id", creator.ID, "error", err)
	}
}
