package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// SubmissionHandler serves the public contact/enquiry forms and the admin
// inbox over them.
type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(db *gorm.DB, queue services.TaskQueue) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: services.NewSubmissionService(db, queue),
	}
}

// CreateContact accepts a contact form submission
// POST /api/contact
func (h *SubmissionHandler) CreateContact(c *gin.Context) {
	h.create(c, models.SubmissionSourceContact)
}

// CreateEnquiry accepts a project enquiry submission
// POST /api/enquiry
func (h *SubmissionHandler) CreateEnquiry(c *gin.Context) {
	h.create(c, models.SubmissionSourceEnquiry)
}

func (h *SubmissionHandler) create(c *gin.Context, source string) {
	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Source = source

	submission, err := h.submissionService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"id": submission.ID})
}

// List returns paginated submissions
// GET /api/admin/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	var req services.SubmissionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.submissionService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// ToggleReviewed flips the reviewed flag on a submission
// PUT /api/admin/submissions/:id/reviewed
func (h *SubmissionHandler) ToggleReviewed(c *gin.Context) {
	submission, err := h.submissionService.ToggleReviewed(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, submission)
}

// Delete removes a submission
// DELETE /api/admin/submissions/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.submissionService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "submission deleted"})
}
