package dto

import (
	"time"

	"github.com/parths301/aib-hub/internal/models"
)

// ApplicationRequest is a creator applying to a job brief.
type ApplicationRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=3000"`
}

type ApplicationDTO struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	JobTitle    string                   `json:"job_title,omitempty"`
	CreatorID   string                   `json:"creator_id"`
	CreatorName string                   `json:"creator_name,omitempty"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

// InvitationRequest is a client inviting a specific creator. The
// sender does not need an account, only a reachable email.
type InvitationRequest struct {
	SenderEmail string `json:"sender_email" validate:"required,email"`
	JobTitle    string `json:"job_title" validate:"required,min=3,max=200"`
	JobBudget   string `json:"job_budget" validate:"omitempty,max=100"`
	Message     string `json:"message" validate:"omitempty,max=3000"`
}

type InvitationDTO struct {
	ID          string                  `json:"id"`
	CreatorID   string                  `json:"creator_id"`
	CreatorName string                  `json:"creator_name,omitempty"`
	SenderEmail string                  `json:"sender_email"`
	JobTitle    string                  `json:"job_title"`
	JobBudget   string                  `json:"job_budget,omitempty"`
	Message     string                  `json:"message,omitempty"`
	Status      models.InvitationStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

type ContactMessageDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
