package services

import (
	"context"

	"github.com/parths301/aib-hub/internal/cache"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

// AdminService is the moderation surface: creator approval, featuring,
// purging, job removal and review of inbound messages. Mutations that
// can change directory visibility drop the cached city list.
type AdminService interface {
	ListCreators() ([]dto.CreatorDTO, error)
	SetCreatorStatus(ctx context.Context, creatorID string, req *dto.StatusChangeRequest) error
	SetCreatorFeatured(creatorID string, req *dto.FeatureRequest) error
	DeleteCreator(ctx context.Context, creatorID string) error
	DeleteJob(ctx context.Context, jobID string) error
	ContactMessages() ([]dto.ContactMessageDTO, error)
	Invitations() ([]dto.InvitationDTO, error)
}

type AdminServiceImpl struct {
	creatorRepo    repositories.CreatorRepository
	jobRepo        repositories.JobRepository
	contactRepo    repositories.ContactRepository
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	cityCache      *cache.CityCache
}

func NewAdminService(
	creatorRepo repositories.CreatorRepository,
	jobRepo repositories.JobRepository,
	contactRepo repositories.ContactRepository,
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	cityCache *cache.CityCache,
) AdminService {
	return &AdminServiceImpl{
		creatorRepo:    creatorRepo,
		jobRepo:        jobRepo,
		contactRepo:    contactRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		cityCache:      cityCache,
	}
}

// ListCreators returns every profile regardless of status, for the
// moderation queue.
func (s *AdminServiceImpl) ListCreators() ([]dto.CreatorDTO, error) {
	creators, err := s.creatorRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toCreatorDTOs(creators, true), nil
}

func (s *AdminServiceImpl) SetCreatorStatus(ctx context.Context, creatorID string, req *dto.StatusChangeRequest) error {
	status := models.CreatorStatus(req.Status)
	if err := s.creatorRepo.UpdateStatus(creatorID, status); err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return apperrors.ErrCreatorNotFound
		}
		return apperrors.InternalError(err)
	}
	s.cityCache.Invalidate(ctx)
	logger.CtxInfo(ctx, "creator status changed", "creator_id", creatorID, "status", req.Status)
	return nil
}

func (s *AdminServiceImpl) SetCreatorFeatured(creatorID string, req *dto.FeatureRequest) error {
	if err := s.creatorRepo.SetFeatured(creatorID, req.Featured); err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return apperrors.ErrCreatorNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteCreator purges the profile, its portfolio and, when the profile
// is linked to an account, the account and its refresh tokens too.
func (s *AdminServiceImpl) DeleteCreator(ctx context.Context, creatorID string) error {
	creator, err := s.creatorRepo.FindByID(creatorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return apperrors.ErrCreatorNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.creatorRepo.Delete(creatorID); err != nil {
		return apperrors.InternalError(err)
	}

	if creator.LinkedUserID != nil {
		if err := s.userRepo.DeleteUserRefreshTokens(*creator.LinkedUserID); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.userRepo.Delete(*creator.LinkedUserID); err != nil {
			return apperrors.InternalError(err)
		}
	}

	s.cityCache.Invalidate(ctx)
	logger.CtxInfo(ctx, "creator purged", "creator_id", creatorID)
	return nil
}

func (s *AdminServiceImpl) DeleteJob(ctx context.Context, jobID string) error {
	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	s.cityCache.Invalidate(ctx)
	logger.CtxInfo(ctx, "job removed", "job_id", jobID)
	return nil
}

func (s *AdminServiceImpl) ContactMessages() ([]dto.ContactMessageDTO, error) {
	msgs, err := s.contactRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ContactMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.ContactMessageDTO{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (s *AdminServiceImpl) Invitations() ([]dto.InvitationDTO, error) {
	invs, err := s.invitationRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.InvitationDTO, 0, len(invs))
	for i := range invs {
		out = append(out, toInvitationDTO(&invs[i]))
	}
	return out, nil
}
