package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

// JobFilter narrows the job list query. Zero values mean "no filter".
type JobFilter struct {
	CollegeID   int64
	RecruiterID int64
	Status      models.JobStatus
	Offset      uint64
	Limit       int
}

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, description, company, recruiter_id, college_id, location, salary, deadline, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Company, job.RecruiterID, job.CollegeID,
		job.Location, job.Salary, job.Deadline, job.Status,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `
		SELECT id, title, description, company, recruiter_id, college_id, location, salary, deadline, status, created_at
		FROM jobs
		WHERE id = $1
	`

	var job models.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Company,
		&job.RecruiterID,
		&job.CollegeID,
		&job.Location,
		&job.Salary,
		&job.Deadline,
		&job.Status,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return &job, nil
}

// List retrieves jobs matching the filter, newest first, with the recruiter
// and college relations populated.
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]*models.Job, error) {
	builder := r.sb.
		Select(
			"j.id", "j.title", "j.description", "j.company", "j.recruiter_id",
			"j.college_id", "j.location", "j.salary", "j.deadline", "j.status",
			"j.created_at", "u.name", "u.email", "c.name",
		).
		From("jobs j").
		Join("users u ON u.id = j.recruiter_id").
		Join("colleges c ON c.id = j.college_id").
		OrderBy("j.created_at DESC")

	if filter.CollegeID != 0 {
		builder = builder.Where(squirrel.Eq{"j.college_id": filter.CollegeID})
	}
	if filter.RecruiterID != 0 {
		builder = builder.Where(squirrel.Eq{"j.recruiter_id": filter.RecruiterID})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"j.status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Offset(filter.Offset).Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building job list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		var (
			job           models.Job
			recruiterName string
			recruiterMail string
			collegeName   string
		)
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Company, &job.RecruiterID,
			&job.CollegeID, &job.Location, &job.Salary, &job.Deadline, &job.Status,
			&job.CreatedAt, &recruiterName, &recruiterMail, &collegeName,
		); err != nil {
			return nil, err
		}
		job.Recruiter = &models.User{ID: job.RecruiterID, Name: recruiterName, Email: recruiterMail}
		job.College = &models.College{ID: job.CollegeID, Name: collegeName}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Update updates the content fields of a job. Status never changes through
// this path.
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, description = $2, location = $3, salary = $4, deadline = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		job.Title, job.Description, job.Location, job.Salary, job.Deadline, job.ID)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// UpdateStatus moves a job out of Pending. The WHERE clause re-checks the
// current status so two concurrent approvals cannot both succeed.
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, from, to models.JobStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return fmt.Errorf("error updating job status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobTransitionNotAllowed
	}

	return nil
}

// CountByCollegeAndStatus returns the number of a college's jobs in the
// given status.
func (r *JobRepository) CountByCollegeAndStatus(ctx context.Context, collegeID int64, status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE college_id = $1 AND status = $2`,
		collegeID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}

// SaveForUser adds a job to a student's saved set. Saving twice is a no-op.
func (r *JobRepository) SaveForUser(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, jobID)
	if err != nil {
		return fmt.Errorf("error saving job: %w", err)
	}
	return nil
}

// UnsaveForUser removes a job from a student's saved set. Unsaving a job
// that was never saved reads as not found.
func (r *JobRepository) UnsaveForUser(ctx context.Context, userID, jobID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID)
	if err != nil {
		return fmt.Errorf("error unsaving job: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("saved job not found")
	}

	return nil
}

// ListSavedByUser retrieves the jobs a student has saved, most recently
// saved first.
func (r *JobRepository) ListSavedByUser(ctx context.Context, userID int64) ([]*models.Job, error) {
	query := `
		SELECT j.id, j.title, j.description, j.company, j.recruiter_id, j.college_id,
		       j.location, j.salary, j.deadline, j.status, j.created_at
		FROM jobs j
		JOIN saved_jobs s ON s.job_id = j.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing saved jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Company, &job.RecruiterID,
			&job.CollegeID, &job.Location, &job.Salary, &job.Deadline, &job.Status,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
