package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/saurabhtbj1201/portfolio/backend/internal/services"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// ContributionHandler exposes the contributor workflow: public intake and
// roster keyed by project slug, and the admin approval surface keyed by id.
type ContributionHandler struct {
	contributionService *services.ContributionService
	rosterService       *services.RosterService
	openSourceService   *services.OpenSourceService
}

func NewContributionHandler(db *gorm.DB, queue services.TaskQueue) *ContributionHandler {
	return &ContributionHandler{
		contributionService: services.NewContributionService(db, queue),
		rosterService:       services.NewRosterService(db),
		openSourceService:   services.NewOpenSourceService(db),
	}
}

// SubmitRequest accepts a contribution request for a project
// POST /api/opensource/:slug/requests
func (h *ContributionHandler) SubmitRequest(c *gin.Context) {
	project, err := h.openSourceService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var input services.SubmitRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.contributionService.SubmitRequest(project.ID, &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"id": request.ID, "status": request.Status})
}

// Roster returns the public list of approved contributors
// GET /api/opensource/:slug/contributors
func (h *ContributionHandler) Roster(c *gin.Context) {
	project, err := h.openSourceService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views, err := h.rosterService.ListApproved(project.ID)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, views)
}

// ListRequests returns a project's contribution requests
// GET /api/admin/opensource/:id/requests
func (h *ContributionHandler) ListRequests(c *gin.Context) {
	requests, err := h.contributionService.ListRequests(c.Param("id"), c.Query("status"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, requests)
}

// GetRequest returns one contribution request
// GET /api/admin/requests/:id
func (h *ContributionHandler) GetRequest(c *gin.Context) {
	request, err := h.contributionService.GetRequest(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, request)
}

// Approve approves a pending request and materializes the contributor
// POST /api/admin/requests/:id/approve
func (h *ContributionHandler) Approve(c *gin.Context) {
	var req struct {
		AdminNotes string `json:"admin_notes"`
	}
	// Body is optional; approval without notes is the common case.
	_ = c.ShouldBindJSON(&req)

	contributor, err := h.contributionService.Approve(c.Param("id"), req.AdminNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, contributor)
}

// Reject rejects a pending request
// POST /api/admin/requests/:id/reject
func (h *ContributionHandler) Reject(c *gin.Context) {
	if err := h.contributionService.Reject(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "request rejected"})
}

// ListContributors returns all of a project's contributor rows
// GET /api/admin/opensource/:id/contributors
func (h *ContributionHandler) ListContributors(c *gin.Context) {
	contributors, err := h.contributionService.ListContributors(c.Param("id"))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, contributors)
}

// RemoveContributor soft-deletes an approved contributor
// DELETE /api/admin/contributors/:id
func (h *ContributionHandler) RemoveContributor(c *gin.Context) {
	if err := h.contributionService.RemoveContributor(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "contributor removed"})
}

// UpdateNotes replaces the admin notes on a contributor
// PUT /api/admin/contributors/:id/notes
func (h *ContributionHandler) UpdateNotes(c *gin.Context) {
	var req struct {
		AdminNotes string `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.contributionService.UpdateNotes(c.Param("id"), req.AdminNotes); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "notes updated"})
}
