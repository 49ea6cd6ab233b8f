package services

import (
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Projects             int64   `json:"projects"`
	OpenSourceProjects   int64   `json:"open_source_projects"`
	ApprovedContributors int64   `json:"approved_contributors"`
	PendingRequests      int64   `json:"pending_requests"`
	Reviews              int64   `json:"reviews"`
	AverageRating        float64 `json:"average_rating"`
	UnreviewedEnquiries  int64   `json:"unreviewed_enquiries"`
	UnreviewedContacts   int64   `json:"unreviewed_contacts"`
}

type ProjectContributorStats struct {
	ProjectID        string `json:"project_id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	ContributorCount int    `json:"contributor_count"`
	PendingRequests  int64  `json:"pending_requests"`
}

type DashboardResponse struct {
	Stats       DashboardStats            `json:"stats"`
	TopProjects []ProjectContributorStats `json:"top_projects"`
}

// GetStats aggregates the admin overview numbers.
func (s *DashboardService) GetStats() (*DashboardResponse, error) {
	var stats DashboardStats

	s.db.Model(&models.Project{}).Count(&stats.Projects)
	s.db.Model(&models.OpenSourceProject{}).Count(&stats.OpenSourceProjects)
	s.db.Model(&models.Contributor{}).
		Where("status = ?", models.ContributorStatusApproved).
		Count(&stats.ApprovedContributors)
	s.db.Model(&models.PRRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&stats.PendingRequests)
	s.db.Model(&models.Review{}).Count(&stats.Reviews)
	s.db.Model(&models.FormSubmission{}).
		Where("source = ? AND reviewed = ?", models.SubmissionSourceEnquiry, false).
		Count(&stats.UnreviewedEnquiries)
	s.db.Model(&models.FormSubmission{}).
		Where("source = ? AND reviewed = ?", models.SubmissionSourceContact, false).
		Count(&stats.UnreviewedContacts)

	var avg *float64
	if err := s.db.Model(&models.Review{}).Select("AVG(rating)").Scan(&avg).Error; err == nil && avg != nil {
		stats.AverageRating = *avg
	}

	topProjects, err := s.topProjects(5)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats:       stats,
		TopProjects: topProjects,
	}, nil
}

// topProjects lists the open source projects with the most approved
// contributors, with their pending request backlog.
func (s *DashboardService) topProjects(limit int) ([]ProjectContributorStats, error) {
	var projects []models.OpenSourceProject
	if err := s.db.Order("contributor_count DESC, created_at DESC").
		Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}

	result := make([]ProjectContributorStats, 0, len(projects))
	for _, p := range projects {
		var pending int64
		s.db.Model(&models.PRRequest{}).
			Where("project_id = ? AND status = ?", p.ID, models.RequestStatusPending).
			Count(&pending)

		result = append(result, ProjectContributorStats{
			ProjectID:        p.ID,
			Title:            p.Title,
			Slug:             p.Slug,
			ContributorCount: p.ContributorCount,
			PendingRequests:  pending,
		})
	}
	return result, nil
}
