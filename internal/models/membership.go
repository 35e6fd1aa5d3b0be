package models

import (
	"gorm.io/datatypes"
)

// MembershipPlan is the catalog entry behind a tier: price, tag quota and
// marketing feature blob. Seeded at migration time.
type MembershipPlan struct {
	BaseModel
	Tier         MembershipTier `gorm:"type:varchar(20);uniqueIndex;not null" json:"tier"`
	Name         string         `gorm:"not null" json:"name"`
	PriceMonthly float64        `gorm:"not null" json:"price_monthly"`
	Currency     string         `gorm:"default:'INR'" json:"currency"`
	TagQuota     int            `gorm:"not null" json:"tag_quota"`
	Features     datatypes.JSON `gorm:"type:jsonb" json:"features"` // ["Verified creator badge", ...]
	IsActive     bool           `gorm:"default:true" json:"is_active"`
}
