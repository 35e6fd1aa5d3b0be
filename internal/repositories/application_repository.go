package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

var ErrDuplicateApplication = errors.New("application already exists for this job and creator")

type ApplicationRepository interface {
	Create(app *models.Application) error
	Exists(jobID, creatorID string) (bool, error)
	FindByCreator(creatorID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts an application. The composite unique index on
// (job_id, creator_id) backs up the service-level pre-check; a constraint
// violation is surfaced as ErrDuplicateApplication.
func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) Exists(jobID, creatorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND creator_id = ?", jobID, creatorID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByCreator(creatorID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// isUniqueViolation matches postgres unique constraint errors without
// depending on driver error types. SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
