package services

import (
	"github.com/parths301/aib-hub/internal/directory"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

// featuredLimit caps the homepage rail.
const featuredLimit = 6

// CreatorService serves the public side of the directory. Listings and
// the featured rail cover approved profiles only; detail pages resolve
// any creator by id so direct links keep working while a profile is
// under review.
type CreatorService interface {
	List(query *dto.CreatorListQuery) (*dto.CreatorListResponse, error)
	Featured() ([]dto.CreatorDTO, error)
	Get(id string) (*dto.CreatorDTO, error)
}

type CreatorServiceImpl struct {
	creatorRepo repositories.CreatorRepository
}

func NewCreatorService(creatorRepo repositories.CreatorRepository) CreatorService {
	return &CreatorServiceImpl{creatorRepo: creatorRepo}
}

// List applies the directory filters and the tier ranking. When active
// filters match nothing, ResetSuggested tells the client to offer a
// filter reset instead of a bare empty state.
func (s *CreatorServiceImpl) List(query *dto.CreatorListQuery) (*dto.CreatorListResponse, error) {
	approved, err := s.creatorRepo.FindApproved()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filter := directory.CreatorFilter{
		Search: query.Search,
		City:   query.City,
		Skill:  query.Skill,
	}
	matched := directory.FilterCreators(approved, filter)
	ranked := directory.RankCreators(matched)

	return &dto.CreatorListResponse{
		Creators:       toCreatorDTOs(ranked, false),
		Total:          len(ranked),
		ResetSuggested: len(ranked) == 0 && !filter.IsEmpty(),
	}, nil
}

// Featured returns the homepage rail: platinum members plus manually
// featured profiles, tier-ranked, capped at six.
func (s *CreatorServiceImpl) Featured() ([]dto.CreatorDTO, error) {
	approved, err := s.creatorRepo.FindApproved()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var featured []models.Creator
	for _, c := range approved {
		if c.Tier == models.TierPlatinum || c.IsFeatured {
			featured = append(featured, c)
		}
	}

	ranked := directory.RankCreators(featured)
	if len(ranked) > featuredLimit {
		ranked = ranked[:featuredLimit]
	}
	return toCreatorDTOs(ranked, false), nil
}

// Get returns one profile with its portfolio, regardless of status, so
// direct links keep working while a profile is under review. Only an
// unknown id reads as not found.
func (s *CreatorServiceImpl) Get(id string) (*dto.CreatorDTO, error) {
	creator, err := s.creatorRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrCreatorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	d := toCreatorDTO(creator, false)
	return &d, nil
}
