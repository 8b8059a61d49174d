package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/db"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/dberrors"
)

const userColumns = `id, name, email, password, role, college_id, company, branch, cgpa, skills, resume, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CollegeID,
		&user.Company,
		&user.Branch,
		&user.CGPA,
		&user.Skills,
		&user.Resume,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func insertUser(ctx context.Context, q Querier, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, college_id, company, branch, cgpa, skills, resume)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.CollegeID,
		user.Company, user.Branch, user.CGPA, user.Skills, user.Resume,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("user violates a unique constraint")
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return insertUser(ctx, r.db, user)
}

// CreateCollegeUser creates a college and its account user atomically. If
// either insert fails (a duplicate college name, a duplicate email) neither
// row is kept.
func (r *UserRepository) CreateCollegeUser(ctx context.Context, college *models.College, user *models.User) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertCollege(ctx, tx, college); err != nil {
			return err
		}
		user.CollegeID = &college.ID
		return insertUser(ctx, tx, user)
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if a user with the given email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile updates the mutable profile fields of a user. The password
// and role never change through this path.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, branch = $2, cgpa = $3, skills = $4, resume = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Branch, user.CGPA, user.Skills, user.Resume, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating user profile: %w", err)
	}

	return nil
}

// ListStudentsByCollege retrieves the student roster of a college, newest
// first.
func (r *UserRepository) ListStudentsByCollege(ctx context.Context, collegeID int64, offset uint64, limit int) ([]*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE college_id = $1 AND role = $2
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`, userColumns)

	rows, err := r.db.Query(ctx, query, collegeID, models.RoleStudent, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// CountStudentsByCollege returns the number of students in a college.
func (r *UserRepository) CountStudentsByCollege(ctx context.Context, collegeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE college_id = $1 AND role = $2`,
		collegeID, models.RoleStudent).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// ListRecruitersByCollege retrieves the distinct recruiters who have posted
// jobs targeting the college.
func (r *UserRepository) ListRecruitersByCollege(ctx context.Context, collegeID int64) ([]*models.User, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (u.id) %s
		FROM users u
		JOIN jobs j ON j.recruiter_id = u.id
		WHERE j.college_id = $1
		ORDER BY u.id
	`, prefixColumns("u", userColumns))

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, fmt.Errorf("error listing recruiters: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
