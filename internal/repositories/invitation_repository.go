package repositories

import (
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

type InvitationRepository interface {
	Create(inv *models.Invitation) error
	FindByCreator(creatorID string) ([]models.Invitation, error)
	FindAll() ([]models.Invitation, error)
}

type InvitationRepositoryImpl struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &InvitationRepositoryImpl{db: db}
}

func (r *InvitationRepositoryImpl) Create(inv *models.Invitation) error {
	return r.db.Create(inv).Error
}

func (r *InvitationRepositoryImpl) FindByCreator(creatorID string) ([]models.Invitation, error) {
	var invs []models.Invitation
	err := r.db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

func (r *InvitationRepositoryImpl) FindAll() ([]models.Invitation, error) {
	var invs []models.Invitation
	err := r.db.Preload("Creator").Order("created_at DESC").Find(&invs).Error
	return invs, err
}
