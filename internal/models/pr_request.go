package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PRRequest is an applicant's submission to contribute to an open source
// project. It is created pending and moves exactly once to approved or
// rejected; neither terminal state can be left again.
type PRRequest struct {
	ID                      string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID               string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name                    string    `gorm:"size:100;not null" json:"name"`
	Email                   string    `gorm:"size:255;not null" json:"email"`
	ProfessionalType        string    `gorm:"size:20;not null" json:"professional_type"` // student, professional, freelancer, hobbyist, other
	GithubProfile           string    `gorm:"size:500;not null" json:"github_profile"`
	LinkedinProfile         string    `gorm:"size:500" json:"linkedin_profile"`
	PortfolioURL            string    `gorm:"size:500" json:"portfolio_url"`
	ImprovementDescription  string    `gorm:"type:text;not null" json:"improvement_description"`
	ImportanceReason        string    `gorm:"type:text;not null" json:"importance_reason"`
	ImplementationPlan      string    `gorm:"type:text;not null" json:"implementation_plan"`
	HasOpensourceExperience bool      `gorm:"default:false" json:"has_opensource_experience"`
	PreviousContributions   string    `gorm:"type:text" json:"previous_contributions"`
	DeclarationAccepted     bool      `gorm:"not null" json:"declaration_accepted"`
	Status                  string    `gorm:"size:20;default:pending;index" json:"status"` // pending, approved, rejected
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (PRRequest) TableName() string { return "pr_requests" }

func (r *PRRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ProfessionalTypes enumerates the accepted applicant type values.
var ProfessionalTypes = []string{"student", "professional", "freelancer", "hobbyist", "other"}
