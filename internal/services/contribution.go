package services

import (
	"errors"
	"net/mail"
	"net/url"
	"strings"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// ContributionService owns the contributor lifecycle: intake of contribution
// requests and the only two transitions out of pending (approve, reject),
// plus soft removal of approved contributors.
//
// Every mutation of the approved set runs inside one transaction, with the
// status change as a conditional update so concurrent admins cannot process
// the same row twice, and contributor_count recomputed from a count query in
// the same transaction rather than incremented in place.
type ContributionService struct {
	db    *gorm.DB
	queue TaskQueue // optional, for approval notifications
}

func NewContributionService(db *gorm.DB, queue TaskQueue) *ContributionService {
	return &ContributionService{db: db, queue: queue}
}

// SubmitRequestInput carries an applicant's contribution request form.
type SubmitRequestInput struct {
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	ProfessionalType        string `json:"professional_type"`
	GithubProfile           string `json:"github_profile"`
	LinkedinProfile         string `json:"linkedin_profile"`
	PortfolioURL            string `json:"portfolio_url"`
	ImprovementDescription  string `json:"improvement_description"`
	ImportanceReason        string `json:"importance_reason"`
	ImplementationPlan      string `json:"implementation_plan"`
	HasOpensourceExperience bool   `json:"has_opensource_experience"`
	PreviousContributions   string `json:"previous_contributions"`
	DeclarationAccepted     bool   `json:"declaration_accepted"`
}

func (in *SubmitRequestInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	validType := false
	for _, t := range models.ProfessionalTypes {
		if in.ProfessionalType == t {
			validType = true
			break
		}
	}
	if !validType {
		return &ValidationError{Field: "professional_type", Message: "must be one of: " + strings.Join(models.ProfessionalTypes, ", ")}
	}
	if strings.TrimSpace(in.GithubProfile) == "" {
		return &ValidationError{Field: "github_profile", Message: "GitHub profile is required"}
	}
	if u, err := url.Parse(in.GithubProfile); err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: "github_profile", Message: "GitHub profile must be a valid URL"}
	}
	if strings.TrimSpace(in.ImprovementDescription) == "" {
		return &ValidationError{Field: "improvement_description", Message: "describe what you want to change"}
	}
	if strings.TrimSpace(in.ImportanceReason) == "" {
		return &ValidationError{Field: "importance_reason", Message: "explain why this change matters"}
	}
	if strings.TrimSpace(in.ImplementationPlan) == "" {
		return &ValidationError{Field: "implementation_plan", Message: "explain how you plan to implement it"}
	}
	if !in.DeclarationAccepted {
		return &ValidationError{Field: "declaration_accepted", Message: "the declaration must be accepted"}
	}
	return nil
}

// SubmitRequest validates and persists a new pending contribution request.
// Nothing else is written; the project's contributor_count stays untouched
// until approval.
func (s *ContributionService) SubmitRequest(projectID string, in *SubmitRequestInput) (*models.PRRequest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var project models.OpenSourceProject
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	request := models.PRRequest{
		ProjectID:               project.ID,
		Name:                    strings.TrimSpace(in.Name),
		Email:                   strings.TrimSpace(in.Email),
		ProfessionalType:        in.ProfessionalType,
		GithubProfile:           strings.TrimSpace(in.GithubProfile),
		LinkedinProfile:         strings.TrimSpace(in.LinkedinProfile),
		PortfolioURL:            strings.TrimSpace(in.PortfolioURL),
		ImprovementDescription:  in.ImprovementDescription,
		ImportanceReason:        in.ImportanceReason,
		ImplementationPlan:      in.ImplementationPlan,
		HasOpensourceExperience: in.HasOpensourceExperience,
		PreviousContributions:   in.PreviousContributions,
		DeclarationAccepted:     in.DeclarationAccepted,
		Status:                  models.RequestStatusPending,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// Approve transitions a pending request to approved, materializes the
// Contributor row and refreshes the project's contributor_count, all in one
// transaction. Only one of two racing approvals can win the conditional
// status update; the loser gets ErrInvalidState and no data changes.
func (s *ContributionService) Approve(requestID string, adminNotes string) (*models.Contributor, error) {
	var contributor models.Contributor

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PRRequest{}).
			Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
			Update("status", models.RequestStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return s.classifyMissedUpdate(tx, requestID)
		}

		var request models.PRRequest
		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			return err
		}

		contributor = models.Contributor{
			ProjectID:               request.ProjectID,
			RequestID:               request.ID,
			Name:                    request.Name,
			Email:                   request.Email,
			ProfessionalType:        request.ProfessionalType,
			GithubProfile:           request.GithubProfile,
			LinkedinProfile:         request.LinkedinProfile,
			PortfolioURL:            request.PortfolioURL,
			ImprovementDescription:  request.ImprovementDescription,
			ImportanceReason:        request.ImportanceReason,
			ImplementationPlan:      request.ImplementationPlan,
			HasOpensourceExperience: request.HasOpensourceExperience,
			PreviousContributions:   request.PreviousContributions,
			Status:                  models.ContributorStatusApproved,
		}
		if notes := strings.TrimSpace(adminNotes); notes != "" {
			contributor.AdminNotes = &notes
		}
		if err := tx.Create(&contributor).Error; err != nil {
			return err
		}

		return recountContributors(tx, request.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		task := &NotificationTask{Type: TaskTypeContributorApproved, ContributorID: contributor.ID}
		if err := s.queue.Enqueue(task); err != nil {
			logger.Warnf("[Contribution] failed to enqueue approval notification for %s: %v", contributor.ID, err)
		}
	}

	return &contributor, nil
}

// Reject transitions a pending request to rejected. No Contributor row is
// created and contributor_count is untouched. Rejecting a request that is
// not pending returns ErrInvalidState with no side effects.
func (s *ContributionService) Reject(requestID string) error {
	res := s.db.Model(&models.PRRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Update("status", models.RequestStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.classifyMissedUpdate(s.db, requestID)
	}
	return nil
}

// RemoveContributor soft-deletes an approved contributor: the row stays for
// audit with status rejected, and the project's count is recomputed from the
// remaining approved rows inside the same transaction.
func (s *ContributionService) RemoveContributor(contributorID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var contributor models.Contributor
		if err := tx.First(&contributor, "id = ?", contributorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.Contributor{}).
			Where("id = ? AND status = ?", contributorID, models.ContributorStatusApproved).
			Update("status", models.ContributorStatusRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}

		return recountContributors(tx, contributor.ProjectID)
	})
}

// UpdateNotes replaces the admin notes on a contributor.
func (s *ContributionService) UpdateNotes(contributorID string, notes string) error {
	res := s.db.Model(&models.Contributor{}).
		Where("id = ?", contributorID).
		Update("admin_notes", strings.TrimSpace(notes))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRequests returns a project's requests, newest first, optionally
// filtered by status.
func (s *ContributionService) ListRequests(projectID, status string) ([]models.PRRequest, error) {
	query := s.db.Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.PRRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequest returns a single request by id.
func (s *ContributionService) GetRequest(requestID string) (*models.PRRequest, error) {
	var request models.PRRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListContributors returns a project's contributors regardless of status,
// newest first. The admin surface uses this; the public roster goes through
// RosterService.
func (s *ContributionService) ListContributors(projectID string) ([]models.Contributor, error) {
	var contributors []models.Contributor
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&contributors).Error; err != nil {
		return nil, err
	}
	return contributors, nil
}

// RecountProject recomputes one project's contributor_count from source
// rows. Shared with the nightly reconciliation job.
func (s *ContributionService) RecountProject(projectID string) error {
	return recountContributors(s.db, projectID)
}

// classifyMissedUpdate decides whether a conditional update matched nothing
// because the row is gone or because it left the pending state.
func (s *ContributionService) classifyMissedUpdate(tx *gorm.DB, requestID string) error {
	var request models.PRRequest
	if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return ErrInvalidState
}

// recountContributors writes contributor_count = count of approved rows.
// Counting from source instead of incrementing prevents drift compounding
// across repeated approve/remove cycles.
func recountContributors(tx *gorm.DB, projectID string) error {
	var count int64
	if err := tx.Model(&models.Contributor{}).
		Where("project_id = ? AND status = ?", projectID, models.ContributorStatusApproved).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.OpenSourceProject{}).
		Where("id = ?", projectID).
		Update("contributor_count", count).Error
}
