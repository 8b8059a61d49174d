package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application. The (student_id, job_id) unique
// constraint is the authority on duplicates; a violation maps to
// ErrDuplicateApplication regardless of who checked what beforehand.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (student_id, job_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		application.StudentID, application.JobID, application.Status,
	).Scan(&application.ID, &application.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_job_id_key") {
			return apperrors.ErrDuplicateApplication
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("application violates a unique constraint")
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, student_id, job_id, status, created_at
		FROM applications
		WHERE id = $1
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.StudentID,
		&application.JobID,
		&application.Status,
		&application.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// ExistsForPair checks if the student already applied to the job
func (r *ApplicationRepository) ExistsForPair(ctx context.Context, studentID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND job_id = $2)`,
		studentID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// ListByStudent retrieves a student's applications, newest first, with the
// job relation populated.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.job_id, a.status, a.created_at,
		       j.title, j.company, j.status
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var (
			application models.Application
			job         models.Job
		)
		if err := rows.Scan(
			&application.ID, &application.StudentID, &application.JobID,
			&application.Status, &application.CreatedAt,
			&job.Title, &job.Company, &job.Status,
		); err != nil {
			return nil, err
		}
		job.ID = application.JobID
		application.Job = &job
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// ListByJob retrieves all applications for a job, newest first, with the
// candidate profile populated.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.job_id, a.status, a.created_at,
		       u.name, u.email, u.branch, u.cgpa, u.skills, u.resume
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("error listing job applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var (
			application models.Application
			student     models.User
		)
		if err := rows.Scan(
			&application.ID, &application.StudentID, &application.JobID,
			&application.Status, &application.CreatedAt,
			&student.Name, &student.Email, &student.Branch, &student.CGPA,
			&student.Skills, &student.Resume,
		); err != nil {
			return nil, err
		}
		student.ID = application.StudentID
		student.Role = models.RoleStudent
		application.Student = &student
		applications = append(applications, &application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// ListCandidatesByRecruiter retrieves the distinct students who applied to
// any of the recruiter's jobs.
func (r *ApplicationRepository) ListCandidatesByRecruiter(ctx context.Context, recruiterID int64) ([]*models.User, error) {
	query := `
		SELECT DISTINCT ON (u.id)
		       u.id, u.name, u.email, u.role, u.college_id, u.branch, u.cgpa, u.skills, u.resume
		FROM users u
		JOIN applications a ON a.student_id = u.id
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1
		ORDER BY u.id
	`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("error listing candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role, &user.CollegeID,
			&user.Branch, &user.CGPA, &user.Skills, &user.Resume,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// UpdateStatus advances an application through the recruiter pipeline. The
// WHERE clause re-checks the current status so racing transitions cannot
// both apply.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, from, to models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationTransitionNotAllowed
	}

	return nil
}

// Delete removes an application (withdrawal)
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// CountOfferedByCollege returns the number of Offered applications on a
// college's jobs, used for the placement dashboard.
func (r *ApplicationRepository) CountOfferedByCollege(ctx context.Context, collegeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.college_id = $1 AND a.status = $2
	`, collegeID, models.ApplicationStatusOffered).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting offered applications: %w", err)
	}
	return count, nil
}
