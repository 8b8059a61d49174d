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

func TestStudentListJobsVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	collegeA := env.addCollege(t, "College A")
	collegeB := env.addCollege(t, "College B")
	student := env.addStudent(t, "alice@example.com", collegeA.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")

	visible := env.addJob(t, recruiter.ID, collegeA.ID, models.JobStatusApproved)
	env.addJob(t, recruiter.ID, collegeA.ID, models.JobStatusPending)
	env.addJob(t, recruiter.ID, collegeA.ID, models.JobStatusRejected)
	env.addJob(t, recruiter.ID, collegeB.ID, models.JobStatusApproved)

	jobs, err := env.student.ListJobs(ctx, student.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, visible.ID, jobs[0].ID)
}

func TestStudentApply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")
	job := env.addJob(t, recruiter.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, application.Status)

	// Applying twice to the same job fails.
	_, err = env.student.Apply(ctx, student.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestStudentApplyInvisibleJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	collegeA := env.addCollege(t, "College A")
	collegeB := env.addCollege(t, "College B")
	student := env.addStudent(t, "alice@example.com", collegeA.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")

	pending := env.addJob(t, recruiter.ID, collegeA.ID, models.JobStatusPending)
	otherCollege := env.addJob(t, recruiter.ID, collegeB.ID, models.JobStatusApproved)

	// A job that is not yet approved, or targets another college, reads as
	// not found rather than forbidden.
	_, err := env.student.Apply(ctx, student.ID, pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	_, err = env.student.Apply(ctx, student.ID, otherCollege.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestStudentWithdrawAndReapply(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")
	job := env.addJob(t, recruiter.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	require.NoError(t, env.student.WithdrawApplication(ctx, student.ID, application.ID))

	// The withdrawn pair can apply again.
	_, err = env.student.Apply(ctx, student.ID, job.ID)
	assert.NoError(t, err)
}

func TestStudentWithdrawOfferedBlocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")
	job := env.addJob(t, recruiter.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	require.NoError(t, env.stores.Applications.UpdateStatus(ctx, application.ID, models.ApplicationStatusApplied, models.ApplicationStatusOffered))

	err = env.student.WithdrawApplication(ctx, student.ID, application.ID)
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotAllowed)
}

func TestStudentWithdrawNotOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	other := env.addStudent(t, "dan@example.com", college.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")
	job := env.addJob(t, recruiter.ID, college.ID, models.JobStatusApproved)

	application, err := env.student.Apply(ctx, student.ID, job.ID)
	require.NoError(t, err)

	err = env.student.WithdrawApplication(ctx, other.ID, application.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestStudentUpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)

	branch := "CSE"
	cgpa := 8.7
	updated, err := env.student.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{
		Branch: &branch,
		CGPA:   &cgpa,
		Skills: []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Student", updated.Name)
	require.NotNil(t, updated.Branch)
	assert.Equal(t, "CSE", *updated.Branch)
	assert.Equal(t, []string{"Go", "SQL"}, updated.Skills)

	// A later update with nil fields keeps the earlier values.
	name := "Alice K"
	updated, err = env.student.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice K", updated.Name)
	require.NotNil(t, updated.Branch)
	assert.Equal(t, "CSE", *updated.Branch)
}

func TestStudentSavedJobs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	recruiter := env.addRecruiter(t, "bob@acme.com", "Acme")
	job := env.addJob(t, recruiter.ID, college.ID, models.JobStatusApproved)

	require.NoError(t, env.student.SaveJob(ctx, student.ID, job.ID))
	// Saving twice is a no-op.
	require.NoError(t, env.student.SaveJob(ctx, student.ID, job.ID))

	saved, err := env.student.ListSavedJobs(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, job.ID, saved[0].ID)

	require.NoError(t, env.student.UnsaveJob(ctx, student.ID, job.ID))
	saved, err = env.student.ListSavedJobs(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// Unsaving a job that is no longer saved reads as not found.
	err = env.student.UnsaveJob(ctx, student.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	college := env.addCollege(t, "College A")
	student := env.addStudent(t, "alice@example.com", college.ID)
	other := env.addStudent(t, "dan@example.com", college.ID)

	project, err := env.student.CreateProject(ctx, student.ID, &dto.CreateProjectRequest{
		Name:        "Portfolio Site",
		Description: "Personal website",
		Tech:        []string{"Go", "HTMX"},
	})
	require.NoError(t, err)

	projects, err := env.student.ListProjects(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	err = env.student.DeleteProject(ctx, other.ID, project.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, env.student.DeleteProject(ctx, student.ID, project.ID))
	projects, err = env.student.ListProjects(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
