package services

import (
	"errors"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type SaveProjectRequest struct {
	Name              string   `json:"name" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Date              string   `json:"date"`
	Status            string   `json:"status" binding:"omitempty,oneof=completed in_progress planned"`
	GithubLink        string   `json:"github_link"`
	LiveLink          string   `json:"live_link"`
	StarsRating       *float64 `json:"stars_rating"`
	TechStack         []string `json:"tech_stack"`
	Images            []string `json:"images"`
	ImageDescriptions []string `json:"image_descriptions"`
}

// List returns paginated showcase projects
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{})

	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create creates a new showcase project
func (s *ProjectService) Create(req *SaveProjectRequest) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusCompleted
	}

	project := models.Project{
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Date:              req.Date,
		Status:            status,
		GithubLink:        req.GithubLink,
		LiveLink:          req.LiveLink,
		StarsRating:       req.StarsRating,
		TechStack:         req.TechStack,
		Images:            req.Images,
		ImageDescriptions: req.ImageDescriptions,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Update updates a showcase project
func (s *ProjectService) Update(id string, req *SaveProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	project.Name = req.Name
	project.Category = req.Category
	project.Description = req.Description
	project.Date = req.Date
	if req.Status != "" {
		project.Status = req.Status
	}
	project.GithubLink = req.GithubLink
	project.LiveLink = req.LiveLink
	project.StarsRating = req.StarsRating
	project.TechStack = req.TechStack
	project.Images = req.Images
	project.ImageDescriptions = req.ImageDescriptions

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete removes a project and its reviews
func (s *ProjectService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
