package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/testutil"
)

type authFixture struct {
	stores *testutil.Stores
	svc    *AuthorizationService

	collegeA *models.College
	collegeB *models.College

	student     *models.User
	collegeUser *models.User
	recruiter   *models.User
	otherRecr   *models.User

	job *models.Job
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctx := context.Background()
	_, stores := testutil.NewStores()

	f := &authFixture{stores: stores}
	f.svc = NewAuthorizationService(stores.Users, stores.Jobs, stores.Applications, stores.Projects)

	f.collegeA = &models.College{Name: "College A"}
	require.NoError(t, stores.Colleges.Create(ctx, f.collegeA))
	f.collegeB = &models.College{Name: "College B"}
	require.NoError(t, stores.Colleges.Create(ctx, f.collegeB))

	f.student = &models.User{Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent, CollegeID: &f.collegeA.ID}
	require.NoError(t, stores.Users.Create(ctx, f.student))

	f.collegeUser = &models.User{Name: "College A", Email: "college-a@example.com", Role: models.RoleCollege, CollegeID: &f.collegeA.ID}
	require.NoError(t, stores.Users.Create(ctx, f.collegeUser))

	f.recruiter = &models.User{Name: "Bob", Email: "bob@example.com", Role: models.RoleRecruiter}
	require.NoError(t, stores.Users.Create(ctx, f.recruiter))

	f.otherRecr = &models.User{Name: "Carol", Email: "carol@example.com", Role: models.RoleRecruiter}
	require.NoError(t, stores.Users.Create(ctx, f.otherRecr))

	f.job = &models.Job{Title: "Engineer", RecruiterID: f.recruiter.ID, CollegeID: f.collegeA.ID, Status: models.JobStatusPending}
	require.NoError(t, stores.Jobs.Create(ctx, f.job))

	return f
}

func TestValidateJobOwnership(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	assert.NoError(t, f.svc.ValidateJobOwnership(ctx, f.job.ID, f.recruiter.ID))

	err := f.svc.ValidateJobOwnership(ctx, f.job.ID, f.otherRecr.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = f.svc.ValidateJobOwnership(ctx, 9999, f.recruiter.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestValidateJobStatusAuthority(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	job, err := f.svc.ValidateJobStatusAuthority(ctx, f.job.ID, f.collegeUser.ID)
	require.NoError(t, err)
	assert.Equal(t, f.job.ID, job.ID)

	// A college user of another college has no authority over the job.
	collegeBUser := &models.User{Name: "College B", Email: "college-b@example.com", Role: models.RoleCollege, CollegeID: &f.collegeB.ID}
	require.NoError(t, f.stores.Users.Create(ctx, collegeBUser))
	_, err = f.svc.ValidateJobStatusAuthority(ctx, f.job.ID, collegeBUser.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Neither does a non-college caller of the right college.
	_, err = f.svc.ValidateJobStatusAuthority(ctx, f.job.ID, f.student.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestValidateApplicationOwnership(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	application := &models.Application{StudentID: f.student.ID, JobID: f.job.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, f.stores.Applications.Create(ctx, application))

	got, err := f.svc.ValidateApplicationOwnership(ctx, application.ID, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, got.ID)

	otherStudent := &models.User{Name: "Dan", Email: "dan@example.com", Role: models.RoleStudent, CollegeID: &f.collegeA.ID}
	require.NoError(t, f.stores.Users.Create(ctx, otherStudent))
	_, err = f.svc.ValidateApplicationOwnership(ctx, application.ID, otherStudent.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestValidateApplicationRecruiter(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	application := &models.Application{StudentID: f.student.ID, JobID: f.job.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, f.stores.Applications.Create(ctx, application))

	got, err := f.svc.ValidateApplicationRecruiter(ctx, application.ID, f.recruiter.ID)
	require.NoError(t, err)
	assert.Equal(t, application.ID, got.ID)

	// Owning some other job is not enough.
	_, err = f.svc.ValidateApplicationRecruiter(ctx, application.ID, f.otherRecr.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestValidateProjectOwnership(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	project := &models.Project{UserID: f.student.ID, Name: "Portfolio Site"}
	require.NoError(t, f.stores.Projects.Create(ctx, project))

	_, err := f.svc.ValidateProjectOwnership(ctx, project.ID, f.student.ID)
	assert.NoError(t, err)

	_, err = f.svc.ValidateProjectOwnership(ctx, project.ID, f.recruiter.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestStudentCollege(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	collegeID, err := f.svc.StudentCollege(ctx, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, f.collegeA.ID, collegeID)

	_, err = f.svc.StudentCollege(ctx, f.recruiter.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
