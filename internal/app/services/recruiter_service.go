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

// RecruiterService handles job postings and candidate pipelines owned by a
// recruiter.
type RecruiterService struct {
	colleges     CollegeStore
	jobs         JobStore
	applications ApplicationStore
	authz        *appauth.AuthorizationService
	logger       zerolog.Logger
}

// NewRecruiterService creates a new RecruiterService
func NewRecruiterService(
	colleges CollegeStore,
	jobs JobStore,
	applications ApplicationStore,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *RecruiterService {
	return &RecruiterService{
		colleges:     colleges,
		jobs:         jobs,
		applications: applications,
		authz:        authz,
		logger:       logger,
	}
}

// CreateJob posts a job targeting a college. The posting starts Pending and
// stays invisible to students until that college approves it.
func (s *RecruiterService) CreateJob(ctx context.Context, recruiterID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	caller, err := s.authz.GetCaller(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	college, err := s.colleges.GetByID(ctx, req.College)
	if err != nil {
		return nil, err
	}

	company := ""
	if caller.Company != nil {
		company = *caller.Company
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     company,
		RecruiterID: recruiterID,
		CollegeID:   college.ID,
		Location:    req.Location,
		Salary:      req.Salary,
		Deadline:    req.Deadline,
		Status:      models.JobStatusPending,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("jobID", job.ID).
		Int64("recruiterID", recruiterID).
		Int64("collegeID", college.ID).
		Msg("Job posted")

	return job, nil
}

// ListJobs returns the caller's own postings across all statuses.
func (s *RecruiterService) ListJobs(ctx context.Context, recruiterID int64, offset uint64, limit int) ([]*models.Job, error) {
	return s.jobs.List(ctx, repositories.JobFilter{
		RecruiterID: recruiterID,
		Offset:      offset,
		Limit:       limit,
	})
}

// UpdateJob edits the content of a posting the caller owns. The approval
// status is untouched; an approved job keeps its approval through edits.
func (s *RecruiterService) UpdateJob(ctx context.Context, recruiterID, jobID int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := s.authz.ValidateJobOwnership(ctx, jobID, recruiterID); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.Salary = req.Salary
	job.Deadline = req.Deadline

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ListJobApplications returns the applications received by a posting the
// caller owns, with candidate profiles attached.
func (s *RecruiterService) ListJobApplications(ctx context.Context, recruiterID, jobID int64) ([]*models.Application, error) {
	if err := s.authz.ValidateJobOwnership(ctx, jobID, recruiterID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

// UpdateApplicationStatus advances a candidate through the pipeline on a
// posting the caller owns. Statuses only move forward; Rejected and Offered
// are terminal.
func (s *RecruiterService) UpdateApplicationStatus(ctx context.Context, recruiterID, applicationID int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidApplicationStatus, status)
	}

	application, err := s.authz.ValidateApplicationRecruiter(ctx, applicationID, recruiterID)
	if err != nil {
		return nil, err
	}

	if !application.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrApplicationTransitionNotAllowed
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, application.Status, status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationID", applicationID).
		Str("from", string(application.Status)).
		Str("to", string(status)).
		Msg("Application status updated")

	application.Status = status
	return application, nil
}

// ListCandidates returns the distinct students who have applied to any of
// the caller's postings.
func (s *RecruiterService) ListCandidates(ctx context.Context, recruiterID int64) ([]*models.User, error) {
	return s.applications.ListCandidatesByRecruiter(ctx, recruiterID)
}
