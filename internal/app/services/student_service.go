package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	appauth "github.com/campushire/campushire/internal/app/auth"
	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/app/repositories"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/filestorage"
)

// StudentService handles the student-facing operations: the profile, the
// job board scoped to the student's college, applications, saved jobs and
// portfolio projects.
type StudentService struct {
	users        UserStore
	jobs         JobStore
	applications ApplicationStore
	projects     ProjectStore
	authz        *appauth.AuthorizationService
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	users UserStore,
	jobs JobStore,
	applications ApplicationStore,
	projects ProjectStore,
	authz *appauth.AuthorizationService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		users:        users,
		jobs:         jobs,
		applications: applications,
		projects:     projects,
		authz:        authz,
		storage:      storage,
		logger:       logger,
	}
}

// GetProfile returns the caller's own user record.
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of the request to the caller's
// profile. Role, email and password never change through this path.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Branch != nil {
		user.Branch = req.Branch
	}
	if req.CGPA != nil {
		user.CGPA = req.CGPA
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Resume != nil {
		user.Resume = req.Resume
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UploadResume stores the uploaded file and records its path on the
// caller's profile, replacing any previously stored resume.
func (s *StudentService) UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	path, err := s.storage.SaveFileWithPath(fileHeader, "resumes")
	if err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}

	previous := user.Resume
	user.Resume = &path
	if err := s.users.UpdateProfile(ctx, user); err != nil {
		_ = s.storage.DeleteFile(path)
		return "", err
	}

	if previous != nil {
		if err := s.storage.DeleteFile(*previous); err != nil {
			s.logger.Warn().Err(err).Str("path", *previous).Msg("Failed to remove replaced resume")
		}
	}

	return path, nil
}

// ListJobs returns the approved postings targeting the caller's college,
// newest first.
func (s *StudentService) ListJobs(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Job, error) {
	collegeID, err := s.authz.StudentCollege(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.jobs.List(ctx, repositories.JobFilter{
		CollegeID: collegeID,
		Status:    models.JobStatusApproved,
		Offset:    offset,
		Limit:     limit,
	})
}

// Apply creates an application from the caller to a job. Only approved jobs
// of the caller's own college can be applied to; everything else reads as
// not found. A second application to the same job fails.
func (s *StudentService) Apply(ctx context.Context, userID, jobID int64) (*models.Application, error) {
	collegeID, err := s.authz.StudentCollege(ctx, userID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusApproved || job.CollegeID != collegeID {
		return nil, apperrors.ErrJobNotFound
	}

	applied, err := s.applications.ExistsForPair(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if applied {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		StudentID: userID,
		JobID:     jobID,
		Status:    models.ApplicationStatusApplied,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", userID).
		Int64("jobID", jobID).
		Msg("Application submitted")

	return application, nil
}

// ListApplications returns the caller's applications with job details,
// newest first.
func (s *StudentService) ListApplications(ctx context.Context, userID int64) ([]*models.Application, error) {
	return s.applications.ListByStudent(ctx, userID)
}

// WithdrawApplication deletes an application owned by the caller. An offer
// already extended cannot be walked away from through this endpoint; the
// withdrawn pair can apply again later.
func (s *StudentService) WithdrawApplication(ctx context.Context, userID, applicationID int64) error {
	application, err := s.authz.ValidateApplicationOwnership(ctx, applicationID, userID)
	if err != nil {
		return err
	}

	if application.Status == models.ApplicationStatusOffered {
		return apperrors.ErrWithdrawalNotAllowed
	}

	return s.applications.Delete(ctx, applicationID)
}

// SaveJob bookmarks a job for the caller. Saving twice is a no-op.
func (s *StudentService) SaveJob(ctx context.Context, userID, jobID int64) error {
	collegeID, err := s.authz.StudentCollege(ctx, userID)
	if err != nil {
		return err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != models.JobStatusApproved || job.CollegeID != collegeID {
		return apperrors.ErrJobNotFound
	}

	return s.jobs.SaveForUser(ctx, userID, jobID)
}

// UnsaveJob removes a bookmark.
func (s *StudentService) UnsaveJob(ctx context.Context, userID, jobID int64) error {
	return s.jobs.UnsaveForUser(ctx, userID, jobID)
}

// ListSavedJobs returns the caller's bookmarked jobs.
func (s *StudentService) ListSavedJobs(ctx context.Context, userID int64) ([]*models.Job, error) {
	return s.jobs.ListSavedByUser(ctx, userID)
}

// CreateProject adds a portfolio entry to the caller's profile.
func (s *StudentService) CreateProject(ctx context.Context, userID int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Tech:        req.Tech,
		Link:        req.Link,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns the caller's portfolio entries.
func (s *StudentService) ListProjects(ctx context.Context, userID int64) ([]*models.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// DeleteProject removes a portfolio entry owned by the caller.
func (s *StudentService) DeleteProject(ctx context.Context, userID, projectID int64) error {
	if _, err := s.authz.ValidateProjectOwnership(ctx, projectID, userID); err != nil {
		return err
	}
	return s.projects.Delete(ctx, projectID)
}
