// Package auth implements the role and ownership gates applied on top of
// token authentication. Role checks happen at the routing layer; everything
// record-scoped is decided here and nowhere else.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/logger"
)

// UserStore is the user lookup the authorization checks need.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// JobStore is the job lookup the authorization checks need.
type JobStore interface {
	GetByID(ctx context.Context, id int64) (*models.Job, error)
}

// ApplicationStore is the application lookup the authorization checks need.
type ApplicationStore interface {
	GetByID(ctx context.Context, id int64) (*models.Application, error)
}

// ProjectStore is the project lookup the authorization checks need.
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*models.Project, error)
}

// AuthorizationService decides record-level permissions: whether a caller
// owns the job, application, or project an operation targets, and whether a
// college caller is scoped to the job it is approving.
type AuthorizationService struct {
	users        UserStore
	jobs         JobStore
	applications ApplicationStore
	projects     ProjectStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users UserStore, jobs JobStore, applications ApplicationStore, projects ProjectStore) *AuthorizationService {
	return &AuthorizationService{
		users:        users,
		jobs:         jobs,
		applications: applications,
		projects:     projects,
	}
}

// GetCaller resolves an authenticated user ID to its full user record.
func (s *AuthorizationService) GetCaller(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error resolving caller")
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return user, nil
}

// CanEditJob checks if the user owns the job's content.
func (s *AuthorizationService) CanEditJob(ctx context.Context, jobID, userID int64) (bool, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	return job.RecruiterID == userID, nil
}

// ValidateJobOwnership validates that the user owns the job or returns an
// error.
func (s *AuthorizationService) ValidateJobOwnership(ctx context.Context, jobID, userID int64) error {
	canEdit, err := s.CanEditJob(ctx, jobID, userID)
	if err != nil {
		return err
	}
	if !canEdit {
		return apperrors.NewForbiddenError("job belongs to another recruiter")
	}
	return nil
}

// ValidateJobStatusAuthority validates that the caller is a College-role
// user of the job's target college, so one college cannot approve another's
// postings.
func (s *AuthorizationService) ValidateJobStatusAuthority(ctx context.Context, jobID, userID int64) (*models.Job, error) {
	caller, err := s.GetCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	if caller.Role != models.RoleCollege || caller.CollegeID == nil {
		return nil, apperrors.NewForbiddenError("caller is not a college account")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.CollegeID != *caller.CollegeID {
		return nil, apperrors.NewForbiddenError("job targets another college")
	}

	return job, nil
}

// ValidateApplicationOwnership validates that the student owns the
// application.
func (s *AuthorizationService) ValidateApplicationOwnership(ctx context.Context, applicationID, studentID int64) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.StudentID != studentID {
		return nil, apperrors.NewForbiddenError("application belongs to another student")
	}
	return application, nil
}

// ValidateApplicationRecruiter validates that the caller owns the job an
// application targets, which is what permits advancing its status.
func (s *AuthorizationService) ValidateApplicationRecruiter(ctx context.Context, applicationID, recruiterID int64) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	if job.RecruiterID != recruiterID {
		return nil, apperrors.NewForbiddenError("application targets another recruiter's job")
	}

	return application, nil
}

// ValidateProjectOwnership validates that the student owns the project.
func (s *AuthorizationService) ValidateProjectOwnership(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, apperrors.NewForbiddenError("project belongs to another student")
	}
	return project, nil
}

// StudentCollege returns the college a student caller belongs to; every
// student-facing list is scoped by it.
func (s *AuthorizationService) StudentCollege(ctx context.Context, userID int64) (int64, error) {
	caller, err := s.GetCaller(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !caller.IsStudent() {
		return 0, apperrors.NewForbiddenError("caller is not a student")
	}
	if caller.CollegeID == nil {
		return 0, apperrors.ErrCollegeNotFound
	}
	return *caller.CollegeID, nil
}
