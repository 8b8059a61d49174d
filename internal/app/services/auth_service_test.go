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

func TestRegisterStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	college := env.addCollege(t, "City University")

	resp, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
		Role:     models.RoleStudent,
		College:  &college.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)

	// Email is normalized to lower case.
	assert.Equal(t, "alice@example.com", resp.User.Email)
	require.NotNil(t, resp.User.CollegeID)
	assert.Equal(t, college.ID, *resp.User.CollegeID)
}

func TestRegisterStudentRequiresExistingCollege(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	missing := int64(999)
	_, err = env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     models.RoleStudent,
		College:  &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestRegisterCollegeCreatesCollege(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "State Engineering College",
		Email:    "placement@sec.edu",
		Password: "secret123",
		Role:     models.RoleCollege,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User.CollegeID)

	college, err := env.stores.Colleges.GetByID(ctx, *resp.User.CollegeID)
	require.NoError(t, err)
	assert.Equal(t, "State Engineering College", college.Name)

	// A second college under the same name is rejected.
	_, err = env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "State Engineering College",
		Email:    "other@sec.edu",
		Password: "secret123",
		Role:     models.RoleCollege,
	})
	assert.ErrorIs(t, err, apperrors.ErrCollegeAlreadyExists)
}

func TestRegisterRecruiter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "secret123",
		Role:     models.RoleRecruiter,
		Company:  "Acme Corp",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User.Company)
	assert.Equal(t, "Acme Corp", *resp.User.Company)
	assert.Nil(t, resp.User.CollegeID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "secret123",
		Role:     models.RoleRecruiter,
	}
	_, err := env.auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "short",
		Role:     models.RoleRecruiter,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "not-an-email",
		Password: "secret123",
		Role:     models.RoleRecruiter,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "secret123",
		Role:     models.RoleType("Admin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// A recruiter account is not tied to any college.
	college := env.addCollege(t, "College A")
	_, err = env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "secret123",
		Role:     models.RoleRecruiter,
		College:  &college.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@acme.com",
		Password: "secret123",
		Role:     models.RoleRecruiter,
	})
	require.NoError(t, err)

	resp, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "bob@acme.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)

	// Wrong password and unknown email are indistinguishable.
	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "bob@acme.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@acme.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
