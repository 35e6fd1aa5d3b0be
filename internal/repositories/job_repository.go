package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(id string) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindLatest(limit int) ([]models.Job, error)
	Create(job *models.Job) error
	Delete(jobID string) error
	DistinctCities() ([]string, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll returns briefs newest first.
func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindLatest(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("posted_date DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DistinctCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Job{}).
		Where("city <> ''").
		Distinct().
		Pluck("city", &cities).Error
	return cities, err
}
