package services

import (
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// SiteSettingsService reads and updates the single site settings row.
type SiteSettingsService struct {
	db *gorm.DB
}

func NewSiteSettingsService(db *gorm.DB) *SiteSettingsService {
	return &SiteSettingsService{db: db}
}

type UpdateSiteSettingsRequest struct {
	SiteName        string `json:"site_name" binding:"required"`
	SiteDescription string `json:"site_description"`
	SiteURL         string `json:"site_url"`
	OGImage         string `json:"og_image"`
	MetaKeywords    string `json:"meta_keywords"`
	FooterText      string `json:"footer_text"`
}

// Get returns the settings row, creating a default one if the seed was
// somehow skipped.
func (s *SiteSettingsService) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.Order("created_at ASC").First(&settings).Error
	if err == gorm.ErrRecordNotFound {
		settings = models.SiteSettings{SiteName: "Portfolio"}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update edits the settings row in place.
func (s *SiteSettingsService) Update(req *UpdateSiteSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.SiteName = req.SiteName
	settings.SiteDescription = req.SiteDescription
	settings.SiteURL = req.SiteURL
	settings.OGImage = req.OGImage
	settings.MetaKeywords = req.MetaKeywords
	settings.FooterText = req.FooterText

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}
