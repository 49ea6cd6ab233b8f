package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
)

func TestSubmissionCreateDefaultsToContact(t *testing.T) {
	db := newTestDB(t)
	queue := &captureQueue{}
	svc := NewSubmissionService(db, queue)

	submission, err := svc.Create(&CreateSubmissionRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Purpose: "Collaboration",
		Message: "Interested in working together on the mapping project.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionSourceContact, submission.Source)
	assert.False(t, submission.Reviewed)

	require.Len(t, queue.tasks, 1)
	assert.Equal(t, TaskTypeSubmissionReceived, queue.tasks[0].Type)
	assert.Equal(t, submission.ID, queue.tasks[0].SubmissionID)
}

func TestSubmissionCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)

	tests := []struct {
		name  string
		req   CreateSubmissionRequest
		field string
	}{
		{"missing name", CreateSubmissionRequest{Email: "a@b.com", Purpose: "x", Message: "y"}, "name"},
		{"bad email", CreateSubmissionRequest{Name: "A", Email: "nope", Purpose: "x", Message: "y"}, "email"},
		{"missing purpose", CreateSubmissionRequest{Name: "A", Email: "a@b.com", Message: "y"}, "purpose"},
		{"missing message", CreateSubmissionRequest{Name: "A", Email: "a@b.com", Purpose: "x"}, "message"},
		{"bad source", CreateSubmissionRequest{Name: "A", Email: "a@b.com", Purpose: "x", Message: "y", Source: "fax"}, "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(&tt.req)
			vErr, ok := AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestSubmissionToggleReviewed(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)

	submission, err := svc.Create(&CreateSubmissionRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Purpose: "Enquiry",
		Message: "Pricing question",
		Source:  models.SubmissionSourceEnquiry,
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleReviewed(submission.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Reviewed)
	assert.NotNil(t, toggled.ReviewedAt)

	back, err := svc.ToggleReviewed(submission.ID)
	require.NoError(t, err)
	assert.False(t, back.Reviewed)
	assert.Nil(t, back.ReviewedAt)

	_, err = svc.ToggleReviewed("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)

	for _, source := range []string{models.SubmissionSourceContact, models.SubmissionSourceEnquiry, models.SubmissionSourceEnquiry} {
		_, err := svc.Create(&CreateSubmissionRequest{
			Name:    "Sender",
			Email:   "sender@example.com",
			Purpose: "Test",
			Message: "Hello",
			Source:  source,
		})
		require.NoError(t, err)
	}

	enquiries, err := svc.List(&SubmissionListRequest{Source: models.SubmissionSourceEnquiry})
	require.NoError(t, err)
	assert.EqualValues(t, 2, enquiries.Total)

	reviewed := false
	unreviewed, err := svc.List(&SubmissionListRequest{Reviewed: &reviewed})
	require.NoError(t, err)
	assert.EqualValues(t, 3, unreviewed.Total)
}

func TestSubmissionDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, nil)

	submission, err := svc.Create(&CreateSubmissionRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Purpose: "Spam",
		Message: "Buy now",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(submission.ID))
	assert.ErrorIs(t, svc.Delete(submission.ID), ErrNotFound)
}
