package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contributor is the durable record materialized when a PRRequest is
// approved. Applicant fields are copied from the request at approval time;
// RequestID records provenance but nothing joins on it. Removal is a soft
// delete: status flips to rejected and the row stays for audit.
type Contributor struct {
	ID                      string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID               string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	RequestID               string    `gorm:"type:varchar(36);index" json:"request_id"`
	Name                    string    `gorm:"size:100;not null" json:"name"`
	Email                   string    `gorm:"size:255;not null" json:"email"`
	ProfessionalType        string    `gorm:"size:20" json:"professional_type"`
	GithubProfile           string    `gorm:"size:500" json:"github_profile"`
	LinkedinProfile         string    `gorm:"size:500" json:"linkedin_profile"`
	PortfolioURL            string    `gorm:"size:500" json:"portfolio_url"`
	ImprovementDescription  string    `gorm:"type:text" json:"improvement_description"`
	ImportanceReason        string    `gorm:"type:text" json:"importance_reason"`
	ImplementationPlan      string    `gorm:"type:text" json:"implementation_plan"`
	HasOpensourceExperience bool      `gorm:"default:false" json:"has_opensource_experience"`
	PreviousContributions   string    `gorm:"type:text" json:"previous_contributions"`
	Status                  string    `gorm:"size:20;default:approved;index" json:"status"` // pending, approved, rejected
	AdminNotes              *string   `gorm:"type:text" json:"admin_notes"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (Contributor) TableName() string { return "contributors" }

func (c *Contributor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

const (
	ContributorStatusPending  = "pending"
	ContributorStatusApproved = "approved"
	ContributorStatusRejected = "rejected"
)
