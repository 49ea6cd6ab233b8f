package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type OpenSourceService struct {
	db *gorm.DB
}

func NewOpenSourceService(db *gorm.DB) *OpenSourceService {
	return &OpenSourceService{db: db}
}

type OpenSourceListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status"`
	Category string `form:"category"`
}

type OpenSourceListResponse struct {
	Total    int64                      `json:"total"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"page_size"`
	Items    []models.OpenSourceProject `json:"items"`
}

type SaveOpenSourceRequest struct {
	Title                          string   `json:"title" binding:"required"`
	Slug                           string   `json:"slug"`
	Category                       string   `json:"category"`
	Status                         string   `json:"status" binding:"omitempty,oneof=active completed on_hold archived"`
	GithubRepoLink                 string   `json:"github_repo_link" binding:"required"`
	DocLink                        string   `json:"doc_link"`
	Overview                       string   `json:"overview"`
	ProblemStatement               string   `json:"problem_statement"`
	Features                       string   `json:"features"`
	InstallationGuide              string   `json:"installation_guide"`
	ContributionGuidelines         string   `json:"contribution_guidelines"`
	Roadmap                        string   `json:"roadmap"`
	CustomContributionInstructions string   `json:"custom_contribution_instructions"`
	TechStack                      []string `json:"tech_stack"`
	SkillsRequired                 []string `json:"skills_required"`
	Images                         []string `json:"images"`
}

// List returns paginated open source projects
func (s *OpenSourceService) List(req *OpenSourceListRequest) (*OpenSourceListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var projects []models.OpenSourceProject
	var total int64

	query := s.db.Model(&models.OpenSourceProject{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &OpenSourceListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetBySlug returns a project by its URL slug
func (s *OpenSourceService) GetBySlug(slug string) (*models.OpenSourceProject, error) {
	var project models.OpenSourceProject
	if err := s.db.First(&project, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// GetByID returns a project by ID
func (s *OpenSourceService) GetByID(id string) (*models.OpenSourceProject, error) {
	var project models.OpenSourceProject
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create creates a new open source project. The slug is generated from the
// title when not supplied.
func (s *OpenSourceService) Create(req *SaveOpenSourceRequest) (*models.OpenSourceProject, error) {
	slug := req.Slug
	if slug == "" {
		slug = GenerateSlug(req.Title)
	}
	status := req.Status
	if status == "" {
		status = models.OpenSourceStatusActive
	}

	project := models.OpenSourceProject{
		Title:                          req.Title,
		Slug:                           slug,
		Category:                       req.Category,
		Status:                         status,
		GithubRepoLink:                 req.GithubRepoLink,
		DocLink:                        req.DocLink,
		Overview:                       req.Overview,
		ProblemStatement:               req.ProblemStatement,
		Features:                       req.Features,
		InstallationGuide:              req.InstallationGuide,
		ContributionGuidelines:         req.ContributionGuidelines,
		Roadmap:                        req.Roadmap,
		CustomContributionInstructions: req.CustomContributionInstructions,
		TechStack:                      req.TechStack,
		SkillsRequired:                 req.SkillsRequired,
		Images:                         req.Images,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Update updates an open source project. contributor_count is deliberately
// not updatable here; only the workflow engine writes it.
func (s *OpenSourceService) Update(id string, req *SaveOpenSourceRequest) (*models.OpenSourceProject, error) {
	var project models.OpenSourceProject
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = GenerateSlug(req.Title)
	}

	project.Title = req.Title
	project.Slug = slug
	project.Category = req.Category
	if req.Status != "" {
		project.Status = req.Status
	}
	project.GithubRepoLink = req.GithubRepoLink
	project.DocLink = req.DocLink
	project.Overview = req.Overview
	project.ProblemStatement = req.ProblemStatement
	project.Features = req.Features
	project.InstallationGuide = req.InstallationGuide
	project.ContributionGuidelines = req.ContributionGuidelines
	project.Roadmap = req.Roadmap
	project.CustomContributionInstructions = req.CustomContributionInstructions
	project.TechStack = req.TechStack
	project.SkillsRequired = req.SkillsRequired
	project.Images = req.Images

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete removes a project and cascades to its requests and contributors in
// one transaction, so no orphaned rows survive for the public site to find.
func (s *OpenSourceService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.OpenSourceProject
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.PRRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Contributor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug turns a title into a URL-safe slug.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
