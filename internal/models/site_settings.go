package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings holds site-wide metadata. A single row is kept; the seed
// creates it and the API only ever updates it in place.
type SiteSettings struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SiteName        string    `gorm:"size:200;not null" json:"site_name"`
	SiteDescription string    `gorm:"type:text" json:"site_description"`
	SiteURL         string    `gorm:"size:500" json:"site_url"`
	OGImage         string    `gorm:"size:500" json:"og_image"`
	MetaKeywords    string    `gorm:"size:1000" json:"meta_keywords"`
	FooterText      string    `gorm:"size:500" json:"footer_text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
