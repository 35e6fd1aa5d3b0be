package services

import (
	"strings"
	"time"

	"github.com/parths301/aib-hub/internal/directory"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

const latestJobsLimit = 4

type JobService interface {
	List(query *dto.JobListQuery) (*dto.JobListResponse, error)
	Latest() ([]dto.JobDTO, error)
	Get(id string) (*dto.JobDTO, error)
	Create(req *dto.CreateJobRequest) (*dto.JobDTO, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) List(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filtered := directory.FilterJobs(jobs, directory.JobFilter{
		City:  query.City,
		Skill: query.Skill,
	})

	return &dto.JobListResponse{
		Jobs:  toJobDTOs(filtered),
		Total: len(filtered),
	}, nil
}

// Latest returns the newest briefs for the homepage strip.
func (s *JobServiceImpl) Latest() ([]dto.JobDTO, error) {
	jobs, err := s.jobRepo.FindLatest(latestJobsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toJobDTOs(jobs), nil
}

func (s *JobServiceImpl) Get(id string) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	d := toJobDTO(job)
	return &d, nil
}

// Create posts a brief. No account is required; anonymous clients are
// recorded under the Guest Client label.
func (s *JobServiceImpl) Create(req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = models.DefaultJobCompany
	}

	job := &models.Job{
		Title:          req.Title,
		City:           req.City,
		RequiredSkills: parseSkills(req.Skills),
		Description:    req.Description,
		Budget:         req.Budget,
		Company:        company,
		ContactEmail:   req.ContactEmail,
		WhatsApp:       req.WhatsApp,
		PostedDate:     time.Now(),
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	d := toJobDTO(job)
	return &d, nil
}

// parseSkills splits the comma-separated skills field from the posting
// form, dropping empties and surrounding whitespace.
func parseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
