package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormSubmission is a message sent through the public contact or enquiry forms.
type FormSubmission struct {
	ID         string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	Email      string     `gorm:"size:255;not null" json:"email"`
	Phone      string     `gorm:"size:50" json:"phone"`
	Purpose    string     `gorm:"size:100;not null" json:"purpose"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	Source     string     `gorm:"size:20;default:contact;index" json:"source"` // contact, enquiry
	ProjectID  *string    `gorm:"type:varchar(36);index" json:"project_id"`
	Reviewed   bool       `gorm:"default:false;index" json:"reviewed"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (FormSubmission) TableName() string { return "form_submissions" }

func (f *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

const (
	SubmissionSourceContact = "contact"
	SubmissionSourceEnquiry = "enquiry"
)
