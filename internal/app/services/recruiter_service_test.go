package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

func TestRecruiterCreateJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme Corp")

	job, err := env.recruiter.CreateJob(ctx, recruiter.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		College:     college.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, college.ID, job.CollegeID)

	// Unknown target college.
	_, err = env.recruiter.CreateJob(ctx, recruiter.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		College:     999,
	})
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestRecruiterUpdateJobOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	owner := env.addRecruiter(t, "bob@acme.com", "Acme")
	intruder := env.addRecruiter(t, "carol@globex.com", "Globex")
	job := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)

	updated, err := env.recruiter.UpdateJob(ctx, owner.ID, job.ID, &dto.UpdateJobRequest{
		Title:       "Senior Engineer",
		Description: "More Go services",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Title)
	// Content edits never touch the approval status.
	assert.Equal(t, models.JobStatusApproved, updated.Status)

	_, err = env.recruiter.UpdateJob(ctx, intruder.ID, job.ID, &dto.UpdateJobRequest{
		Title:       "Hijacked",
		Description: "Nope",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRecruiterListJobApplications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	owner := env.addRecruiter(t, "bob@acme.com", "Acme")
	intruder := env.addRecruiter(t, "carol@globex.com", "Globex")
	student := env.addStudent(t, "alice@example.com", college.ID)
	job := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)

	_, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	applications, err := env.recruiter.ListJobApplications(ctx, owner.ID, job.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, student.ID, applications[0].StudentID)

	_, err = env.recruiter.ListJobApplications(ctx, intruder.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRecruiterUpdateApplicationStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	owner := env.addRecruiter(t, "bob@acme.com", "Acme")
	student := env.addStudent(t, "alice@example.com", college.ID)
	job := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	updated, err := env.recruiter.UpdateApplicationStatus(ctx, owner.ID, application.ID, models.ApplicationStatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)

	updated, err = env.recruiter.UpdateApplicationStatus(ctx, owner.ID, application.ID, models.ApplicationStatusInterview)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, updated.Status)

	// Moving back through the pipeline is refused.
	_, err = env.recruiter.UpdateApplicationStatus(ctx, owner.ID, application.ID, models.ApplicationStatusShortlisted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationTransitionNotAllowed)

	updated, err = env.recruiter.UpdateApplicationStatus(ctx, owner.ID, application.ID, models.ApplicationStatusOffered)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusOffered, updated.Status)

	// Offered is terminal.
	_, err = env.recruiter.UpdateApplicationStatus(ctx, owner.ID, application.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationTransitionNotAllowed)
}

func TestRecruiterUpdateApplicationStatusNotOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	owner := env.addRecruiter(t, "bob@acme.com", "Acme")
	intruder := env.addRecruiter(t, "carol@globex.com", "Globex")
	student := env.addStudent(t, "alice@example.com", college.ID)
	job := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	_, err = env.recruiter.UpdateApplicationStatus(ctx, intruder.ID, application.ID, models.ApplicationStatusShortlisted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRecruiterListCandidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	owner := env.addRecruiter(t, "bob@acme.com", "Acme")
	alice := env.addStudent(t, "alice@example.com", college.ID)
	dan := env.addStudent(t, "dan@example.com", college.ID)

	first := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)
	second := env.addJob(t, owner.ID, college.ID, models.JobStatusApproved)

	_, err := env.student.Apply(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	_, err = env.student.Apply(ctx, alice.ID, second.ID)
	require.NoError(t, err)
	_, err = env.student.Apply(ctx, dan.ID, first.ID)
	require.NoError(t, err)

	// Each student appears once, however many of the recruiter's jobs they
	// applied to.
	candidates, err := env.recruiter.ListCandidates(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}
