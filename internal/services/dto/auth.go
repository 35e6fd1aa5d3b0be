package dto

import (
	"time"

	"github.com/parths301/aib-hub/internal/models"
)

// RegisterRequest carries the account half of signup. The creator
// profile is attached in a second step (or during the same request
// when profile fields are present).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	FullName string `json:"full_name" validate:"required,min=2"`
	City     string `json:"city" validate:"required"`

	Skills   []string `json:"skills" validate:"omitempty,dive,min=1"`
	Bio      string   `json:"bio" validate:"omitempty,max=2000"`
	WhatsApp string   `json:"whatsapp" validate:"omitempty,max=32"`
}

// AttachProfileRequest re-runs the profile half of registration for
// accounts that ended up without a creator row.
type AttachProfileRequest struct {
	FullName string   `json:"full_name" validate:"required,min=2"`
	City     string   `json:"city" validate:"required"`
	Skills   []string `json:"skills" validate:"omitempty,dive,min=1"`
	Bio      string   `json:"bio" validate:"omitempty,max=2000"`
	WhatsApp string   `json:"whatsapp" validate:"omitempty,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse is returned by register, login and refresh.
type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// SessionResponse describes the resolved session for routing decisions
// on the client: admins land on the admin panel, creators without a
// profile are sent to onboarding.
type SessionResponse struct {
	User            UserDTO `json:"user"`
	CreatorID       string  `json:"creator_id,omitempty"`
	NeedsOnboarding bool    `json:"needs_onboarding"`
}
