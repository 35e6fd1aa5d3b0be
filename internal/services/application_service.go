package services

import (
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

type ApplicationService interface {
	Apply(userID, jobID string, req *dto.ApplicationRequest) (*dto.ApplicationDTO, error)
	ListOwn(userID string) ([]dto.ApplicationDTO, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	creatorRepo     repositories.CreatorRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	creatorRepo repositories.CreatorRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		creatorRepo:     creatorRepo,
		jobRepo:         jobRepo,
	}
}

// Apply files one application per creator per job. A pre-check catches
// most duplicates; the unique index closes the race for the rest.
func (s *ApplicationServiceImpl) Apply(userID, jobID string, req *dto.ApplicationRequest) (*dto.ApplicationDTO, error) {
	creator, err := s.creatorRepo.FindByLinkedUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrNeedsOnboarding
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.Exists(jobID, creator.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:       jobID,
		CreatorID:   creator.ID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	d := toApplicationDTO(app)
	return &d, nil
}

func (s *ApplicationServiceImpl) ListOwn(userID string) ([]dto.ApplicationDTO, error) {
	creator, err := s.creatorRepo.FindByLinkedUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCreatorNotFound) {
			return nil, apperrors.ErrNeedsOnboarding
		}
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.applicationRepo.FindByCreator(creator.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationDTO(&apps[i]))
	}
	return out, nil
}
