package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appauth "github.com/campushire/campushire/internal/app/auth"
	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/pkg/auth"
	"github.com/campushire/campushire/internal/testutil"
)

// testEnv wires every service against the in-memory stores.
type testEnv struct {
	stores    *testutil.Stores
	authz     *appauth.AuthorizationService
	auth      *AuthService
	student   *StudentService
	college   *CollegeService
	recruiter *RecruiterService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	_, stores := testutil.NewStores()

	authz := appauth.NewAuthorizationService(stores.Users, stores.Jobs, stores.Applications, stores.Projects)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	nop := zerolog.Nop()

	return &testEnv{
		stores:    stores,
		authz:     authz,
		auth:      NewAuthService(stores.Users, stores.Colleges, jwtService, nop),
		student:   NewStudentService(stores.Users, stores.Jobs, stores.Applications, stores.Projects, authz, nil, nop),
		college:   NewCollegeService(stores.Users, stores.Colleges, stores.Jobs, stores.Applications, authz, nop),
		recruiter: NewRecruiterService(stores.Colleges, stores.Jobs, stores.Applications, authz, nop),
	}
}

func (e *testEnv) addCollege(t *testing.T, name string) *models.College {
	t.Helper()
	college := &models.College{Name: name}
	require.NoError(t, e.stores.Colleges.Create(context.Background(), college))
	return college
}

func (e *testEnv) addStudent(t *testing.T, email string, collegeID int64) *models.User {
	t.Helper()
	user := &models.User{Name: "Student", Email: email, Role: models.RoleStudent, CollegeID: &collegeID}
	require.NoError(t, e.stores.Users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addCollegeUser(t *testing.T, email string, collegeID int64) *models.User {
	t.Helper()
	user := &models.User{Name: "Placement Cell", Email: email, Role: models.RoleCollege, CollegeID: &collegeID}
	require.NoError(t, e.stores.Users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addRecruiter(t *testing.T, email, company string) *models.User {
	t.Helper()
	user := &models.User{Name: "Recruiter", Email: email, Role: models.RoleRecruiter, Company: &company}
	require.NoError(t, e.stores.Users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addJob(t *testing.T, recruiterID, collegeID int64, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       "Software Engineer",
		Description: "Build things",
		Company:     "Acme",
		RecruiterID: recruiterID,
		CollegeID:   collegeID,
		Status:      status,
	}
	require.NoError(t, e.stores.Jobs.Create(context.Background(), job))
	return job
}
