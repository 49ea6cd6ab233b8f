package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Review{},
		&models.FormSubmission{},
		&models.OpenSourceProject{},
		&models.PRRequest{},
		&models.Contributor{},
	))
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *models.OpenSourceProject {
	t.Helper()
	project := &models.OpenSourceProject{
		Title:          "Village Guide",
		Slug:           "village-guide",
		GithubRepoLink: "https://github.com/example/village-guide",
		Status:         models.OpenSourceStatusActive,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func validInput() *SubmitRequestInput {
	return &SubmitRequestInput{
		Name:                   "Asha Verma",
		Email:                  "asha@example.com",
		ProfessionalType:       "student",
		GithubProfile:          "https://github.com/ashaverma",
		ImprovementDescription: "Add offline caching for the map view",
		ImportanceReason:       "Most users are on flaky connections",
		ImplementationPlan:     "Service worker plus an IndexedDB tile cache",
		DeclarationAccepted:    true,
	}
}

func projectCount(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var p models.OpenSourceProject
	require.NoError(t, db.First(&p, "id = ?", id).Error)
	return p.ContributorCount
}

func TestSubmitRequestCreatesPending(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, project.ID, request.ProjectID)
	assert.NotEmpty(t, request.ID)

	// Intake alone must not touch the roster or the count.
	assert.Equal(t, 0, projectCount(t, db, project.ID))
	var contributors int64
	require.NoError(t, db.Model(&models.Contributor{}).Count(&contributors).Error)
	assert.Zero(t, contributors)
}

func TestSubmitRequestUnknownProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewContributionService(db, nil)

	_, err := svc.SubmitRequest("does-not-exist", validInput())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitRequestValidation(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	tests := []struct {
		name   string
		mutate func(*SubmitRequestInput)
		field  string
	}{
		{"missing name", func(in *SubmitRequestInput) { in.Name = "  " }, "name"},
		{"bad email", func(in *SubmitRequestInput) { in.Email = "not-an-address" }, "email"},
		{"bad professional type", func(in *SubmitRequestInput) { in.ProfessionalType = "wizard" }, "professional_type"},
		{"missing github", func(in *SubmitRequestInput) { in.GithubProfile = "" }, "github_profile"},
		{"relative github url", func(in *SubmitRequestInput) { in.GithubProfile = "ashaverma" }, "github_profile"},
		{"missing description", func(in *SubmitRequestInput) { in.ImprovementDescription = "" }, "improvement_description"},
		{"missing reason", func(in *SubmitRequestInput) { in.ImportanceReason = "" }, "importance_reason"},
		{"missing plan", func(in *SubmitRequestInput) { in.ImplementationPlan = "" }, "implementation_plan"},
		{"declaration not accepted", func(in *SubmitRequestInput) { in.DeclarationAccepted = false }, "declaration_accepted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			_, err := svc.SubmitRequest(project.ID, in)
			vErr, ok := AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestApproveMaterializesContributor(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)

	contributor, err := svc.Approve(request.ID, "  solid proposal  ")
	require.NoError(t, err)

	assert.Equal(t, models.ContributorStatusApproved, contributor.Status)
	assert.Equal(t, request.ID, contributor.RequestID)
	assert.Equal(t, request.Name, contributor.Name)
	assert.Equal(t, request.Email, contributor.Email)
	require.NotNil(t, contributor.AdminNotes)
	assert.Equal(t, "solid proposal", *contributor.AdminNotes)

	var stored models.PRRequest
	require.NoError(t, db.First(&stored, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusApproved, stored.Status)

	assert.Equal(t, 1, projectCount(t, db, project.ID))
}

func TestApproveIsSingleShot(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)

	_, err = svc.Approve(request.ID, "")
	require.NoError(t, err)

	// A second approval of the same request loses the conditional update
	// and must leave no trace.
	_, err = svc.Approve(request.ID, "")
	assert.ErrorIs(t, err, ErrInvalidState)

	var contributors int64
	require.NoError(t, db.Model(&models.Contributor{}).
		Where("request_id = ?", request.ID).Count(&contributors).Error)
	assert.EqualValues(t, 1, contributors)
	assert.Equal(t, 1, projectCount(t, db, project.ID))
}

func TestApproveAfterReject(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(request.ID))

	_, err = svc.Approve(request.ID, "")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 0, projectCount(t, db, project.ID))
}

func TestApproveUnknownRequest(t *testing.T) {
	db := newTestDB(t)
	seedProject(t, db)
	svc := NewContributionService(db, nil)

	_, err := svc.Approve("missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectLeavesNoSideEffects(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(request.ID))

	var stored models.PRRequest
	require.NoError(t, db.First(&stored, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusRejected, stored.Status)

	var contributors int64
	require.NoError(t, db.Model(&models.Contributor{}).Count(&contributors).Error)
	assert.Zero(t, contributors)
	assert.Equal(t, 0, projectCount(t, db, project.ID))

	// Rejection is terminal; repeating it reports the state, changes nothing.
	assert.ErrorIs(t, svc.Reject(request.ID), ErrInvalidState)
}

func TestRemoveContributorSoftDeletes(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	first, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)
	second := validInput()
	second.Email = "dev@example.com"
	second.GithubProfile = "https://github.com/devtwo"
	secondReq, err := svc.SubmitRequest(project.ID, second)
	require.NoError(t, err)

	kept, err := svc.Approve(first.ID, "")
	require.NoError(t, err)
	removed, err := svc.Approve(secondReq.ID, "")
	require.NoError(t, err)
	require.Equal(t, 2, projectCount(t, db, project.ID))

	require.NoError(t, svc.RemoveContributor(removed.ID))

	// The row survives for audit with a flipped status.
	var stored models.Contributor
	require.NoError(t, db.First(&stored, "id = ?", removed.ID).Error)
	assert.Equal(t, models.ContributorStatusRejected, stored.Status)

	assert.Equal(t, 1, projectCount(t, db, project.ID))

	roster, err := NewRosterService(db).ListApproved(project.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, kept.ID, roster[0].ID)

	// Removing again is invalid; removing a ghost is not found.
	assert.ErrorIs(t, svc.RemoveContributor(removed.ID), ErrInvalidState)
	assert.ErrorIs(t, svc.RemoveContributor("missing"), ErrNotFound)
}

func TestCountTracksApproveRemoveCycles(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		in := validInput()
		in.Email = email
		request, err := svc.SubmitRequest(project.ID, in)
		require.NoError(t, err)

		contributor, err := svc.Approve(request.ID, "")
		require.NoError(t, err)
		require.Equal(t, i+1, projectCount(t, db, project.ID))

		if i == 0 {
			require.NoError(t, svc.RemoveContributor(contributor.ID))
			require.Equal(t, 0, projectCount(t, db, project.ID))

			// Re-approve via a fresh request; the old removal must not
			// poison future counts.
			again := validInput()
			again.Email = email
			fresh, err := svc.SubmitRequest(project.ID, again)
			require.NoError(t, err)
			_, err = svc.Approve(fresh.ID, "")
			require.NoError(t, err)
			require.Equal(t, 1, projectCount(t, db, project.ID))
		}
	}
}

func TestRecountProjectRepairsDrift(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)
	_, err = svc.Approve(request.ID, "")
	require.NoError(t, err)

	// Simulate out-of-band damage to the cache.
	require.NoError(t, db.Model(&models.OpenSourceProject{}).
		Where("id = ?", project.ID).Update("contributor_count", 42).Error)

	require.NoError(t, svc.RecountProject(project.ID))
	assert.Equal(t, 1, projectCount(t, db, project.ID))
}

func TestUpdateNotes(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)
	contributor, err := svc.Approve(request.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNotes(contributor.ID, " mentoring through first PR "))

	var stored models.Contributor
	require.NoError(t, db.First(&stored, "id = ?", contributor.ID).Error)
	require.NotNil(t, stored.AdminNotes)
	assert.Equal(t, "mentoring through first PR", *stored.AdminNotes)

	assert.ErrorIs(t, svc.UpdateNotes("missing", "x"), ErrNotFound)
}

func TestListRequestsFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)
	svc := NewContributionService(db, nil)

	first, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)
	in := validInput()
	in.Email = "other@example.com"
	_, err = svc.SubmitRequest(project.ID, in)
	require.NoError(t, err)

	require.NoError(t, svc.Reject(first.ID))

	pending, err := svc.ListRequests(project.ID, models.RequestStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.ListRequests(project.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestApproveEnqueuesNotification(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db)

	queue := &captureQueue{}
	svc := NewContributionService(db, queue)

	request, err := svc.SubmitRequest(project.ID, validInput())
	require.NoError(t, err)
	contributor, err := svc.Approve(request.ID, "")
	require.NoError(t, err)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, TaskTypeContributorApproved, queue.tasks[0].Type)
	assert.Equal(t, contributor.ID, queue.tasks[0].ContributorID)

	// Rejections are silent.
	in := validInput()
	in.Email = "quiet@example.com"
	second, err := svc.SubmitRequest(project.ID, in)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(second.ID))
	assert.Len(t, queue.tasks, 1)
}

type captureQueue struct {
	tasks []*NotificationTask
}

func (q *captureQueue) Enqueue(task *NotificationTask) error {
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *captureQueue) IsAsync() bool { return false }
func (q *captureQueue) Close() error  { return nil }
