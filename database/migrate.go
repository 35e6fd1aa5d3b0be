package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/config"
	"github.com/parths301/aib-hub/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and seeds the membership catalog.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Creator{},
		&models.PortfolioItem{},
		&models.Job{},
		&models.Application{},
		&models.Invitation{},
		&models.ContactMessage{},
		&models.MembershipPlan{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	return seedMembershipPlans(db)
}

type planSeed struct {
	tier     models.MembershipTier
	name     string
	price    float64
	tagQuota int
	features []string
}

var defaultPlans = []planSeed{
	{
		tier:     models.TierBase,
		name:     "Base",
		price:    0,
		tagQuota: 0,
		features: []string{
			"Public directory listing",
			"Portfolio showcase",
			"Apply to job briefs",
		},
	},
	{
		tier:     models.TierGold,
		name:     "Gold",
		price:    799,
		tagQuota: 1,
		features: []string{
			"Everything in Base",
			"Gold badge on your card",
			"Ranked above Base profiles",
			"1 purchasable specialty tag",
		},
	},
	{
		tier:     models.TierPlatinum,
		name:     "Platinum",
		price:    1499,
		tagQuota: 3,
		features: []string{
			"Everything in Gold",
			"Platinum badge on your card",
			"Top placement in the directory",
			"Featured on the homepage",
			"3 purchasable specialty tags",
		},
	},
}

// seedMembershipPlans inserts the catalog rows that do not exist yet.
// Existing rows are left alone so admins can reprice without the seed
// undoing it.
func seedMembershipPlans(db *gorm.DB) error {
	for _, seed := range defaultPlans {
		var existing models.MembershipPlan
		err := db.First(&existing, "tier = ?", seed.tier).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership plan %s: %w", seed.tier, err)
		}

		features, err := json.Marshal(seed.features)
		if err != nil {
			return fmt.Errorf("failed to encode features for plan %s: %w", seed.tier, err)
		}

		plan := models.MembershipPlan{
			Tier:         seed.tier,
			Name:         seed.name,
			PriceMonthly: seed.price,
			Currency:     "INR",
			TagQuota:     seed.tagQuota,
			Features:     features,
			IsActive:     true,
		}
		if err := db.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed membership plan %s: %w", seed.tier, err)
		}
	}
	return nil
}
