package models

import (
	"time"

	"github.com/lib/pq"
)

// DefaultJobCompany labels briefs posted without a company name.
const DefaultJobCompany = "Guest Client"

// Job is a client brief. Immutable after posting; only admins delete.
type Job struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	City           string         `gorm:"index" json:"city"`
	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	Description    string         `json:"description"`
	Budget         string         `json:"budget"`
	Company        string         `gorm:"default:'Guest Client'" json:"company"`
	ContactEmail   string         `gorm:"not null" json:"contact_email"`
	WhatsApp       string         `json:"whatsapp,omitempty"`
	PostedDate     time.Time      `gorm:"index" json:"posted_date"`
}
