package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a visitor rating left on a showcase project.
type Review struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
