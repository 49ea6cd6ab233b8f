package services

import (
	"errors"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type CreateReviewRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func (in *CreateReviewRequest) validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	return nil
}

// ListByProject returns a project's reviews, newest first.
func (s *ReviewService) ListByProject(projectID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// List returns all reviews, newest first (admin surface).
func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create validates and stores a visitor review for a project.
func (s *ReviewService) Create(projectID string, req *CreateReviewRequest) (*models.Review, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		ProjectID: project.ID,
		Name:      req.Name,
		Rating:    req.Rating,
		Review:    req.Review,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// Update edits a review (admin surface).
func (s *ReviewService) Update(id string, req *CreateReviewRequest) (*models.Review, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review.Name = req.Name
	review.Rating = req.Rating
	review.Review = req.Review

	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// Delete removes a review permanently.
func (s *ReviewService) Delete(id string) error {
	res := s.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AverageRating returns the mean rating for a project, 0 when unreviewed.
func (s *ReviewService) AverageRating(projectID string) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).
		Where("project_id = ?", projectID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
