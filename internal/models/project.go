package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a showcase entry on the public portfolio.
type Project struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string    `gorm:"size:200;not null" json:"name"`
	Category          string    `gorm:"size:100;not null;index" json:"category"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Date              string    `gorm:"size:50" json:"date"`
	Status            string    `gorm:"size:20;default:completed;index" json:"status"` // completed, in_progress, planned
	GithubLink        string    `gorm:"size:500" json:"github_link"`
	LiveLink          string    `gorm:"size:500" json:"live_link"`
	StarsRating       *float64  `json:"stars_rating"`
	TechStack         []string  `gorm:"serializer:json" json:"tech_stack"`
	Images            []string  `gorm:"serializer:json" json:"images"`
	ImageDescriptions []string  `gorm:"serializer:json" json:"image_descriptions"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusPlanned    = "planned"
)
