package repositories

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/models"
)

var (
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
)

type CreatorRepository interface {
	FindByID(id string) (*models.Creator, error)
	FindByLinkedUserID(userID string) (*models.Creator, error)
	FindApproved() ([]models.Creator, error)
	FindAll() ([]models.Creator, error)
	Create(creator *models.Creator) error
	CreateTx(tx *gorm.DB, creator *models.Creator) error
	UpdateProfile(creator *models.Creator) error
	UpdateTags(creatorID string, tags []string) error
	UpdateTier(creatorID string, t models.MembershipTier) error
	UpdateStatus(creatorID string, status models.CreatorStatus) error
	SetFeatured(creatorID string, featured bool) error
	Delete(creatorID string) error
	DistinctCities() ([]string, error)

	// Portfolio operations
	AddPortfolioItem(item *models.PortfolioItem) error
	DeletePortfolioItem(creatorID, itemID string) error
}

type CreatorRepositoryImpl struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &CreatorRepositoryImpl{db: db}
}

func (r *CreatorRepositoryImpl) FindByID(id string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Preload("Portfolio").First(&creator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

func (r *CreatorRepositoryImpl) FindByLinkedUserID(userID string) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.Preload("Portfolio").First(&creator, "linked_user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}
	return &creator, nil
}

// FindApproved returns the public directory set ordered by creation time so
// ranking ties are deterministic.
func (r *CreatorRepositoryImpl) FindApproved() ([]models.Creator, error) {
	var creators []models.Creator
	err := r.db.Preload("Portfolio").
		Where("status = ?", models.CreatorStatusApproved).
		Order("created_at ASC").
		Find(&creators).Error
	return creators, err
}

func (r *CreatorRepositoryImpl) FindAll() ([]models.Creator, error) {
	var creators []models.Creator
	err := r.db.Order("created_at ASC").Find(&creators).Error
	return creators, err
}

func (r *CreatorRepositoryImpl) Create(creator *models.Creator) error {
	return r.db.Create(creator).Error
}

func (r *CreatorRepositoryImpl) CreateTx(tx *gorm.DB, creator *models.Creator) error {
	return tx.Create(creator).Error
}

func (r *CreatorRepositoryImpl) UpdateProfile(creator *models.Creator) error {
	result := r.db.Model(&models.Creator{}).Where("id = ?", creator.ID).Updates(map[string]interface{}{
		"full_name":     creator.FullName,
		"city":          creator.City,
		"bio":           creator.Bio,
		"experience":    creator.Experience,
		"profile_photo": creator.ProfilePhoto,
		"whatsapp":      creator.WhatsApp,
		"skills":        creator.Skills,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCreatorNotFound
	}
	return nil
}

func (r *CreatorRepositoryImpl) UpdateTags(creatorID string, tags []string) error {
	return r.updateColumn(creatorID, "purchased_tags", pq.StringArray(tags))
}

func (r *CreatorRepositoryImpl) UpdateTier(creatorID string, t models.MembershipTier) error {
	return r.updateColumn(creatorID, "tier", t)
}

func (r *CreatorRepositoryImpl) UpdateStatus(creatorID string, status models.CreatorStatus) error {
	return r.updateColumn(creatorID, "status", status)
}

func (r *CreatorRepositoryImpl) SetFeatured(creatorID string, featured bool) error {
	return r.updateColumn(creatorID, "is_featured", featured)
}

func (r *CreatorRepositoryImpl) updateColumn(creatorID, column string, value interface{}) error {
	result := r.db.Model(&models.Creator{}).Where("id = ?", creatorID).Updates(map[string]interface{}{
		column:       value,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCreatorNotFound
	}
	return nil
}

// Delete removes the creator and its portfolio (admin purge).
func (r *CreatorRepositoryImpl) Delete(creatorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PortfolioItem{}, "creator_id = ?", creatorID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Creator{}, "id = ?", creatorID).Error
	})
}

func (r *CreatorRepositoryImpl) DistinctCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Creator{}).
		Where("status = ? AND city <> ''", models.CreatorStatusApproved).
		Distinct().
		Pluck("city", &cities).Error
	return cities, err
}

// Portfolio operations

func (r *CreatorRepositoryImpl) AddPortfolioItem(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *CreatorRepositoryImpl) DeletePortfolioItem(creatorID, itemID string) error {
	result := r.db.Delete(&models.PortfolioItem{}, "id = ? AND creator_id = ?", itemID, creatorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
