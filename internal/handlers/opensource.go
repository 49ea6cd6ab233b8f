package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// OpenSourceHandler serves open source project pages and their admin CRUD.
type OpenSourceHandler struct {
	openSourceService *services.OpenSourceService
}

func NewOpenSourceHandler(db *gorm.DB) *OpenSourceHandler {
	return &OpenSourceHandler{
		openSourceService: services.NewOpenSourceService(db),
	}
}

// List returns paginated open source projects
// GET /api/opensource
func (h *OpenSourceHandler) List(c *gin.Context) {
	var req services.OpenSourceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.openSourceService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetBySlug returns the public project page payload
// GET /api/opensource/:slug
func (h *OpenSourceHandler) GetBySlug(c *gin.Context) {
	project, err := h.openSourceService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, project)
}

// GetByID returns a project for the admin editor
// GET /api/admin/opensource/:id
func (h *OpenSourceHandler) GetByID(c *gin.Context) {
	project, err := h.openSourceService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, project)
}

// Create creates a new open source project
// POST /api/admin/opensource
func (h *OpenSourceHandler) Create(c *gin.Context) {
	var req services.SaveOpenSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.openSourceService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, project)
}

// Update updates an open source project
// PUT /api/admin/opensource/:id
func (h *OpenSourceHandler) Update(c *gin.Context) {
	var req services.SaveOpenSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.openSourceService.Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, project)
}

// Delete removes a project along with its requests and contributors
// DELETE /api/admin/opensource/:id
func (h *OpenSourceHandler) Delete(c *gin.Context) {
	if err := h.openSourceService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted"})
}
