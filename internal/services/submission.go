package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// SubmissionService handles the public contact and enquiry forms and the
// admin views over them.
type SubmissionService struct {
	db    *gorm.DB
	queue TaskQueue // optional, for admin alert mail
}

func NewSubmissionService(db *gorm.DB, queue TaskQueue) *SubmissionService {
	return &SubmissionService{db: db, queue: queue}
}

type CreateSubmissionRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Purpose   string  `json:"purpose"`
	Message   string  `json:"message"`
	Source    string  `json:"source"`
	ProjectID *string `json:"project_id"`
}

func (in *CreateSubmissionRequest) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &ValidationError{Field: "email", Message: "a valid email address is required"}
	}
	if strings.TrimSpace(in.Purpose) == "" {
		return &ValidationError{Field: "purpose", Message: "purpose is required"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return &ValidationError{Field: "message", Message: "message is required"}
	}
	if in.Source != "" && in.Source != models.SubmissionSourceContact && in.Source != models.SubmissionSourceEnquiry {
		return &ValidationError{Field: "source", Message: "source must be contact or enquiry"}
	}
	return nil
}

type SubmissionListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Source   string `form:"source"`
	Reviewed *bool  `form:"reviewed"`
}

type SubmissionListResponse struct {
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Items    []models.FormSubmission `json:"items"`
}

// Create validates and stores a form submission, then alerts the site owner.
func (s *SubmissionService) Create(req *CreateSubmissionRequest) (*models.FormSubmission, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = models.SubmissionSourceContact
	}

	submission := models.FormSubmission{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Purpose:   req.Purpose,
		Message:   req.Message,
		Source:    source,
		ProjectID: req.ProjectID,
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	if s.queue != nil {
		task := &NotificationTask{Type: TaskTypeSubmissionReceived, SubmissionID: submission.ID}
		if err := s.queue.Enqueue(task); err != nil {
			logger.Warnf("[Submission] failed to enqueue alert for %s: %v", submission.ID, err)
		}
	}

	return &submission, nil
}

// List returns paginated submissions, newest first.
func (s *SubmissionService) List(req *SubmissionListRequest) (*SubmissionListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var submissions []models.FormSubmission
	var total int64

	query := s.db.Model(&models.FormSubmission{})

	if req.Source != "" {
		query = query.Where("source = ?", req.Source)
	}
	if req.Reviewed != nil {
		query = query.Where("reviewed = ?", *req.Reviewed)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return &SubmissionListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    submissions,
	}, nil
}

// ToggleReviewed flips the reviewed flag, stamping reviewed_at when set.
func (s *SubmissionService) ToggleReviewed(id string) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	if err := s.db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	submission.Reviewed = !submission.Reviewed
	if submission.Reviewed {
		now := time.Now()
		submission.ReviewedAt = &now
	} else {
		submission.ReviewedAt = nil
	}

	if err := s.db.Save(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

// Delete removes a submission permanently.
func (s *SubmissionService) Delete(id string) error {
	res := s.db.Delete(&models.FormSubmission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
