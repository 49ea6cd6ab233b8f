package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// ReviewHandler serves visitor reviews on showcase projects.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{
		reviewService: services.NewReviewService(db),
	}
}

// ListByProject returns a project's reviews
// GET /api/projects/:id/reviews
func (h *ReviewHandler) ListByProject(c *gin.Context) {
	reviews, err := h.reviewService.ListByProject(c.Param("id"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	rating, err := h.reviewService.AverageRating(c.Param("id"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"reviews": reviews, "average_rating": rating})
}

// Create submits a visitor review
// POST /api/projects/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, review)
}

// List returns all reviews across projects
// GET /api/admin/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, reviews)
}

// Update edits a review
// PUT /api/admin/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, review)
}

// Delete removes a review
// DELETE /api/admin/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "review deleted"})
}
