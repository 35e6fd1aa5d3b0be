package dto

import "time"

// CreateJobRequest is accepted from visitors without an account.
// Skills arrive as a comma-separated string, matching the posting form.
type CreateJobRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	City         string `json:"city" validate:"required"`
	Skills       string `json:"skills" validate:"required,max=500"`
	Description  string `json:"description" validate:"required,min=10,max=5000"`
	Budget       string `json:"budget" validate:"required,max=100"`
	Company      string `json:"company" validate:"omitempty,max=200"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	WhatsApp     string `json:"whatsapp" validate:"omitempty,max=32"`
}

type JobListQuery struct {
	City  string `form:"city"`
	Skill string `form:"skill"`
}

type JobDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	City           string    `json:"city"`
	RequiredSkills []string  `json:"required_skills"`
	Description    string    `json:"description"`
	Budget         string    `json:"budget"`
	Company        string    `json:"company"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	WhatsAppURL    string    `json:"whatsapp_url,omitempty"`
	PostedDate     time.Time `json:"posted_date"`
}

type JobListResponse struct {
	Jobs  []JobDTO `json:"jobs"`
	Total int      `json:"total"`
}
