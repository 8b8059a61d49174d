package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appauth "github.com/campushire/campushire/internal/app/auth"
	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/app/repositories"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

// CollegeService handles the placement-cell operations: the public college
// directory, job moderation, the student roster and the dashboard counts.
type CollegeService struct {
	users        UserStore
	colleges     CollegeStore
	jobs         JobStore
	applications ApplicationStore
	authz        *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(
	users UserStore,
	colleges CollegeStore,
	jobs JobStore,
	applications ApplicationStore,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *CollegeService {
	return &CollegeService{
		users:        users,
		colleges:     colleges,
		jobs:         jobs,
		applications: applications,
		authz:        authz,
		logger:       logger,
	}
}

// ListColleges returns the public college directory, sorted by name.
func (s *CollegeService) ListColleges(ctx context.Context) ([]*models.College, error) {
	return s.colleges.GetAll(ctx)
}

// callerCollege resolves the caller to its college id, rejecting callers
// without the College role.
func (s *CollegeService) callerCollege(ctx context.Context, userID int64) (*models.User, int64, error) {
	caller, err := s.authz.GetCaller(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if caller.Role != models.RoleCollege || caller.CollegeID == nil {
		return nil, 0, apperrors.ErrPermissionDenied
	}
	return caller, *caller.CollegeID, nil
}

// ListJobs returns the postings targeting the caller's college. An empty
// status means all statuses; Pending is what the moderation queue asks for.
func (s *CollegeService) ListJobs(ctx context.Context, userID int64, status models.JobStatus, offset uint64, limit int) ([]*models.Job, error) {
	_, collegeID, err := s.callerCollege(ctx, userID)
	if err != nil {
		return nil, err
	}

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidJobStatus, status)
	}

	return s.jobs.List(ctx, repositories.JobFilter{
		CollegeID: collegeID,
		Status:    status,
		Offset:    offset,
		Limit:     limit,
	})
}

// CreateJob posts a job on behalf of the college itself. Self-postings skip
// moderation and are approved immediately.
func (s *CollegeService) CreateJob(ctx context.Context, userID int64, req *dto.CreateCollegeJobRequest) (*models.Job, error) {
	caller, collegeID, err := s.callerCollege(ctx, userID)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     caller.Name,
		RecruiterID: userID,
		CollegeID:   collegeID,
		Location:    req.Location,
		Salary:      req.Salary,
		Deadline:    req.Deadline,
		Status:      models.JobStatusApproved,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("jobID", job.ID).
		Int64("collegeID", collegeID).
		Msg("College job posted")

	return job, nil
}

// UpdateJobStatus decides a pending posting targeting the caller's college.
// Only Pending jobs move, and only to Approved or Rejected; a decision
// already made cannot be remade.
func (s *CollegeService) UpdateJobStatus(ctx context.Context, userID, jobID int64, status models.JobStatus) (*models.Job, error) {
	job, err := s.authz.ValidateJobStatusAuthority(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidJobStatus, status)
	}
	if !job.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrJobTransitionNotAllowed
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, job.Status, status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("jobID", jobID).
		Str("from", string(job.Status)).
		Str("to", string(status)).
		Msg("Job status updated")

	job.Status = status
	return job, nil
}

// ListStudents returns a page of the caller college's student roster along
// with the total count.
func (s *CollegeService) ListStudents(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.User, int64, error) {
	_, collegeID, err := s.callerCollege(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	students, err := s.users.ListStudentsByCollege(ctx, collegeID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.users.CountStudentsByCollege(ctx, collegeID)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// ListRecruiters returns the recruiters who have posted jobs targeting the
// caller's college.
func (s *CollegeService) ListRecruiters(ctx context.Context, userID int64) ([]*models.User, error) {
	_, collegeID, err := s.callerCollege(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.ListRecruitersByCollege(ctx, collegeID)
}

// GetStats returns the dashboard counts for the caller's college.
func (s *CollegeService) GetStats(ctx context.Context, userID int64) (*dto.CollegeStatsResponse, error) {
	_, collegeID, err := s.callerCollege(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalStudents, err := s.users.CountStudentsByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	placed, err := s.applications.CountOfferedByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	pending, err := s.jobs.CountByCollegeAndStatus(ctx, collegeID, models.JobStatusPending)
	if err != nil {
		return nil, err
	}

	active, err := s.jobs.CountByCollegeAndStatus(ctx, collegeID, models.JobStatusApproved)
	if err != nil {
		return nil, err
	}

	return &dto.CollegeStatsResponse{
		TotalStudents:    totalStudents,
		PlacedStudents:   placed,
		PendingApprovals: pending,
		ActiveJobs:       active,
	}, nil
}
