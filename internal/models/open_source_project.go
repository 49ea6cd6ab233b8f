package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenSourceProject is a repository open for outside contributions.
//
// ContributorCount is a denormalized cache of the approved rows in the
// contributors table. It is only ever written by recounting from source
// inside the same transaction that changed the approved set.
type OpenSourceProject struct {
	ID                             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title                          string    `gorm:"size:200;not null" json:"title"`
	Slug                           string    `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	Category                       string    `gorm:"size:100;index" json:"category"`
	Status                         string    `gorm:"size:20;default:active;index" json:"status"` // active, completed, on_hold, archived
	GithubRepoLink                 string    `gorm:"size:500;not null" json:"github_repo_link"`
	DocLink                        string    `gorm:"size:500" json:"doc_link"`
	Overview                       string    `gorm:"type:text" json:"overview"`
	ProblemStatement               string    `gorm:"type:text" json:"problem_statement"`
	Features                       string    `gorm:"type:text" json:"features"`
	InstallationGuide              string    `gorm:"type:text" json:"installation_guide"`
	ContributionGuidelines         string    `gorm:"type:text" json:"contribution_guidelines"`
	Roadmap                        string    `gorm:"type:text" json:"roadmap"`
	CustomContributionInstructions string    `gorm:"type:text" json:"custom_contribution_instructions"`
	TechStack                      []string  `gorm:"serializer:json" json:"tech_stack"`
	SkillsRequired                 []string  `gorm:"serializer:json" json:"skills_required"`
	Images                         []string  `gorm:"serializer:json" json:"images"`
	ContributorCount               int       `gorm:"default:0" json:"contributor_count"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

func (OpenSourceProject) TableName() string { return "open_source_projects" }

func (p *OpenSourceProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

const (
	OpenSourceStatusActive    = "active"
	OpenSourceStatusCompleted = "completed"
	OpenSourceStatusOnHold    = "on_hold"
	OpenSourceStatusArchived  = "archived"
)
