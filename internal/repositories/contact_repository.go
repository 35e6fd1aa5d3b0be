package repositories

import (
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

type ContactRepository interface {
	Create(msg *models.ContactMessage) error
	FindAll() ([]models.ContactMessage, error)
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

func (r *ContactRepositoryImpl) FindAll() ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}
