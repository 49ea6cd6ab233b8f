package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type SiteSettingsHandler struct {
	settingsService *services.SiteSettingsService
}

func NewSiteSettingsHandler(db *gorm.DB) *SiteSettingsHandler {
	return &SiteSettingsHandler{
		settingsService: services.NewSiteSettingsService(db),
	}
}

// Get returns the site settings for public rendering
// GET /api/settings
func (h *SiteSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, settings)
}

// Update edits the site settings
// PUT /api/admin/settings
func (h *SiteSettingsHandler) Update(c *gin.Context) {
	var req services.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, settings)
}
