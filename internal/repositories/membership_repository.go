package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

var ErrPlanNotFound = errors.New("membership plan not found")

type MembershipRepository interface {
	FindActivePlans() ([]models.MembershipPlan, error)
	FindPlanByTier(t models.MembershipTier) (*models.MembershipPlan, error)
}

type MembershipRepositoryImpl struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &MembershipRepositoryImpl{db: db}
}

func (r *MembershipRepositoryImpl) FindActivePlans() ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.Where("is_active = ?", true).
		Order("price_monthly ASC").
		Find(&plans).Error
	return plans, err
}

func (r *MembershipRepositoryImpl) FindPlanByTier(t models.MembershipTier) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	err := r.db.First(&plan, "tier = ?", t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}
