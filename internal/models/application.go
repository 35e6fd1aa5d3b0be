package models

// Application is a creator's response to a job brief. The composite unique
// index makes the duplicate pre-check race-safe at the datastore level.
type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;uniqueIndex:idx_applications_job_creator" json:"job_id"`
	CreatorID   string            `gorm:"not null;uniqueIndex:idx_applications_job_creator" json:"creator_id"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	// Relations
	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Creator *Creator `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
