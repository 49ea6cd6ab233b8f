package services

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// RosterService is the read-only projection of a project's approved
// contributors, recomputed from the store on every call.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

// ContributorView is the public rendering of an approved contributor.
// AvatarURL is derived from the GitHub profile and empty when the profile
// URL cannot be parsed; Initial is the display fallback in that case.
type ContributorView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ProfessionalType string `json:"professional_type"`
	GithubProfile    string `json:"github_profile"`
	LinkedinProfile  string `json:"linkedin_profile,omitempty"`
	PortfolioURL     string `json:"portfolio_url,omitempty"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	Initial          string `json:"initial"`
}

// ListApproved returns the approved contributors for a project, newest first.
func (s *RosterService) ListApproved(projectID string) ([]ContributorView, error) {
	var contributors []models.Contributor
	if err := s.db.
		Where("project_id = ? AND status = ?", projectID, models.ContributorStatusApproved).
		Order("created_at DESC").
		Find(&contributors).Error; err != nil {
		return nil, err
	}

	views := make([]ContributorView, 0, len(contributors))
	for _, c := range contributors {
		views = append(views, ContributorView{
			ID:               c.ID,
			Name:             c.Name,
			ProfessionalType: c.ProfessionalType,
			GithubProfile:    c.GithubProfile,
			LinkedinProfile:  c.LinkedinProfile,
			PortfolioURL:     c.PortfolioURL,
			AvatarURL:        GithubAvatarURL(c.GithubProfile),
			Initial:          nameInitial(c.Name),
		})
	}
	return views, nil
}

// GithubAvatarURL derives the canonical avatar endpoint from a GitHub
// profile URL: the first path segment is taken as the username. It never
// fails; an unparsable profile yields an empty string and the caller falls
// back to the initial-letter glyph.
func GithubAvatarURL(githubProfile string) string {
	u, err := url.Parse(githubProfile)
	if err != nil || u.Host == "" {
		return ""
	}
	username := strings.TrimPrefix(u.Path, "/")
	if i := strings.Index(username, "/"); i >= 0 {
		username = username[:i]
	}
	if username == "" {
		return ""
	}
	return "https://avatars.githubusercontent.com/" + username
}

func nameInitial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return ""
}
