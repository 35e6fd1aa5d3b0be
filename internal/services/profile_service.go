package services

import (
	"strings"

	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/internal/tier"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

// ProfileService is the creator's own workspace: profile edits,
// portfolio management, purchased tags and membership changes.
type ProfileService interface {
	GetOwn(userID string) (*dto.CreatorDTO, error)
	Update(userID string, req *dto.UpdateProfileRequest) (*dto.CreatorDTO, error)
	AddPortfolioItem(userID string, req *dto.PortfolioItemRequest) (*dto.PortfolioItemDTO, error)
	DeletePortfolioItem(userID, itemID string) error
	ToggleTag(userID string, req *dto.TagToggleRequest) (*dto.CreatorDTO, error)
	ChangeTier(userID string, req *dto.TierChangeRequest) (*dto.CreatorDTO, error)
}

type ProfileServiceImpl struct {
	creatorRepo    repositories.CreatorRepository
	membershipRepo repositories.MembershipRepository
}

func NewProfileService(
	creatorRepo repositories.CreatorRepository,
	membershipRepo repositories.MembershipRepository,
) ProfileService {
	return &ProfileServiceImpl{
		creatorRepo:    creatorRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *ProfileServiceImpl) GetOwn(userID string) (*dto.CreatorDTO, error) {
	creator, err := s.findOwn(userID)
	if err != nil {
		return nil, err
	}
	d := toCreatorDTO(creator, true)
	return &d, nil
}

func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateProfileRequest) (*dto.CreatorDTO, error) {
	creator, err := s.findOwn(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		creator.FullName = *req.FullName
	}
	if req.City != nil {
		creator.City = *req.City
	}
	if req.Bio != nil {
		creator.Bio = *req.Bio
	}
	if req.Experience != nil {
		creator.Experience = *req.Experience
	}
	if req.ProfilePhoto != nil {
		creator.ProfilePhoto = *req.ProfilePhoto
	}
	if req.WhatsApp != nil {
		creator.WhatsApp = *req.WhatsApp
	}
	if req.Skills != nil {
		creator.Skills = *req.Skills
	}

	if err := s.creatorRepo.UpdateProfile(creator); err != nil {
		return nil, apperrors.InternalError(err)
	}

	d := toCreatorDTO(creator, true)
	return &d, nil
}

func (s *ProfileServiceImpl) AddPortfolioItem(userID string, req *dto.PortfolioItemRequest) (*dto.PortfolioItemDTO, error) {
	creator, err := s.findOwn(userID)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		CreatorID: creator.ID,
		Type:      models.PortfolioItemType(req.Type),
		URL:       req.URL,
		Title:     req.Title,
	}
	if err := s.creatorRepo.AddPortfolioItem(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PortfolioItemDTO{
		ID:    item.ID,
		Type:  string(item.Type),
		URL:   item.URL,
		Title: item.Title,
	}, nil
}

func (s *ProfileServiceImpl) DeletePortfolioItem(userID, itemID string) error {
	creator, err := s.findOwn(userID)
	if err != nil {
		return err
	}

	if err := s.creatorRepo.DeletePortfolioItem(creator.ID, itemID); err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.NewNotFoundError("portfolio", "portfolio item not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ToggleTag adds or removes a purchased specialty tag. Adding past the
// tier quota is rejected without touching the stored tags; tags bought
// under a higher tier survive a downgrade and can still be removed.
func (s *ProfileServiceImpl) ToggleTag(userID string, req *dto.TagToggleRequest) (*dto.CreatorDTO, error) {
	creator, err := s.findOwn(userID)
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(req.Tag)
	if tag == "" {
		return nil, apperrors.NewBadRequestError("tag must not be empty")
	}

	tags := []string(creator.PurchasedTags)
	idx := -1
	for i, t := range tags {
		if strings.EqualFold(t, tag) {
			idx = i
			break
		}
	}

	if idx >= 0 {
		tags = append(tags[:idx], tags[idx+1:]...)
	} else {
		if !tier.CanAddTag(creator.Tier, tags) {
			return nil, apperrors.ErrTagQuotaReached(string(creator.Tier), tier.Quota(creator.Tier))
		}
		tags = append(tags, tag)
	}

	if err := s.creatorRepo.UpdateTags(creator.ID, tags); err != nil {
		return nil, apperrors.InternalError(err)
	}
	creator.PurchasedTags = tags

	d := toCreatorDTO(creator, true)
	return &d, nil
}

// ChangeTier switches the membership tier. Purchased tags are kept as
// they are on downgrade; only new additions are held to the new quota.
func (s *ProfileServiceImpl) ChangeTier(userID string, req *dto.TierChangeRequest) (*dto.CreatorDTO, error) {
	creator, err := s.findOwn(userID)
	if err != nil {
		return nil, err
	}

	newTier := models.MembershipTier(req.Tier)
	if !models.ValidTier(newTier) {
		return nil, apperrors.NewBadRequestError("unknown membership tier")
	}

	plan, err := s.membershipRepo.FindPlanByTier(newTier)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.NewBadRequestError("membership tier not offered")
		}
		return nil, apperrors.InternalError(err)
	}
	if !plan.IsActive {
		return nil, apperrors.NewBadRequestError("membership tier not offered")
	}

	if creator.Tier == newTier {
		d := toCreatorDTO(creator, true)
		return &d, nil
	}

	if err := s.creatorRepo.UpdateTier(creator.ID, newTier); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("membership tier changed",
		"creator_id", creator.ID, "from", string(creator.Tier), "to", string(newTier))
	creator.Tier = newTier

	d := toCreatorDTO(creator, true)
	return &d, nil
}

// findOwn resolves the creator row linked to the authenticated account.
func (s *ProfileServiceImpl) findOwn(userID string) (*models.Creator, error) {
	creator, err := s.creatorRepo.FindByLinkedUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrNeedsOnboarding
		}
		return nil, apperrors.InternalError(err)
	}
	return creator, nil
}
