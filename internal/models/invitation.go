package models

// Invitation is a client-initiated outreach to a specific creator.
type Invitation struct {
	BaseModel
	CreatorID   string           `gorm:"not null;index" json:"creator_id"`
	SenderEmail string           `gorm:"not null" json:"sender_email"`
	JobTitle    string           `gorm:"not null" json:"job_title"`
	JobBudget   string           `json:"job_budget"`
	Message     string           `json:"message"`
	Status      InvitationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	// Relations
	Creator *Creator `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}

// ContactMessage is a support/contact form submission. No auth required.
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`
}
