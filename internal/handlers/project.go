package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// ProjectHandler serves the showcase project catalogue.
type ProjectHandler struct {
	projectService *services.ProjectService
	reviewService  *services.ReviewService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		reviewService:  services.NewReviewService(db),
	}
}

// List returns paginated showcase projects
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetByID returns a project with its average rating
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rating, err := h.reviewService.AverageRating(project.ID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"project": project, "average_rating": rating})
}

// Create creates a new showcase project
// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, project)
}

// Update updates a showcase project
// PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req services.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, project)
}

// Delete removes a showcase project and its reviews
// DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted"})
}
