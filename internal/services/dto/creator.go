package dto

import (
	"time"

	"github.com/parths301/aib-hub/internal/models"
)

// CreatorListQuery holds the directory filters. All fields are
// optional; empty filters impose no constraint.
type CreatorListQuery struct {
	Search string `form:"search"`
	City   string `form:"city"`
	Skill  string `form:"skill"`
}

type UpdateProfileRequest struct {
	FullName     *string   `json:"full_name" validate:"omitempty,min=2"`
	City         *string   `json:"city" validate:"omitempty,min=1"`
	Bio          *string   `json:"bio" validate:"omitempty,max=2000"`
	Experience   *string   `json:"experience" validate:"omitempty,max=2000"`
	ProfilePhoto *string   `json:"profile_photo" validate:"omitempty,url"`
	WhatsApp     *string   `json:"whatsapp" validate:"omitempty,max=32"`
	Skills       *[]string `json:"skills" validate:"omitempty,dive,min=1"`
}

type PortfolioItemRequest struct {
	Type  string `json:"type" validate:"required,is-portfolio-type"`
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"omitempty,max=200"`
}

// TagToggleRequest adds or removes a purchased specialty tag.
type TagToggleRequest struct {
	Tag string `json:"tag" validate:"required,min=1,max=64"`
}

type TierChangeRequest struct {
	Tier string `json:"tier" validate:"required,is-tier"`
}

// Admin moderation payloads.
type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,is-creator-status"`
}

type FeatureRequest struct {
	Featured bool `json:"featured"`
}

// CreatorDTO is the public card shape used by the directory and the
// detail page. WhatsAppURL is the ready-to-open wa.me link.
type CreatorDTO struct {
	ID            string                `json:"id"`
	FullName      string                `json:"full_name"`
	City          string                `json:"city"`
	Skills        []string              `json:"skills"`
	PurchasedTags []string              `json:"purchased_tags"`
	Bio           string                `json:"bio,omitempty"`
	Experience    string                `json:"experience,omitempty"`
	ProfilePhoto  string                `json:"profile_photo,omitempty"`
	Tier          models.MembershipTier `json:"tier"`
	Badge         string                `json:"badge,omitempty"`
	Premium       bool                  `json:"premium"`
	IsFeatured    bool                  `json:"is_featured"`
	Status        models.CreatorStatus  `json:"status,omitempty"`
	WhatsAppURL   string                `json:"whatsapp_url,omitempty"`
	Portfolio     []PortfolioItemDTO    `json:"portfolio,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

type PortfolioItemDTO struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// CreatorListResponse wraps directory results. ResetSuggested is set
// when active filters matched nothing, so the client can offer a
// one-click filter reset.
type CreatorListResponse struct {
	Creators       []CreatorDTO `json:"creators"`
	Total          int          `json:"total"`
	ResetSuggested bool         `json:"reset_suggested"`
}
