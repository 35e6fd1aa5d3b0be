package models

import (
	"github.com/lib/pq"
)

// Creator is a freelancer profile. Visible in the public directory only
// once an admin sets Status to APPROVED.
type Creator struct {
	BaseModel
	LinkedUserID  *string        `gorm:"uniqueIndex" json:"linked_user_id,omitempty"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Email         string         `gorm:"not null" json:"email"`
	City          string         `gorm:"index" json:"city"`
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	PurchasedTags pq.StringArray `gorm:"type:text[]" json:"purchased_tags"`
	Bio           string         `json:"bio"`
	Experience    string         `json:"experience"`
	ProfilePhoto  string         `json:"profile_photo"`
	WhatsApp      string         `json:"whatsapp"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	Tier          MembershipTier `gorm:"type:varchar(20);default:'BASE'" json:"tier"`
	Status        CreatorStatus  `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`

	// Relations
	Portfolio []PortfolioItem `gorm:"foreignKey:CreatorID" json:"portfolio"`
}

// PortfolioItem belongs to exactly one creator.
type PortfolioItem struct {
	BaseModel
	CreatorID string            `gorm:"not null;index" json:"creator_id"`
	Type      PortfolioItemType `gorm:"type:varchar(20);default:'image'" json:"type"`
	URL       string            `gorm:"not null" json:"url"`
	Title     string            `json:"title"`
}
