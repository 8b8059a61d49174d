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

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

func insertCollege(ctx context.Context, q Querier, college *models.College) error {
	err := q.QueryRow(ctx,
		`INSERT INTO colleges (name) VALUES ($1) RETURNING id`,
		college.Name).Scan(&college.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("college violates a unique constraint")
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// Create inserts a new college. The name carries a unique constraint, so a
// duplicate insert fails atomically even when two registrations race.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	return insertCollege(ctx, r.db, college)
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	var college models.College
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM colleges WHERE id = $1`, id).Scan(&college.ID, &college.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// GetAll retrieves all colleges sorted by name
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM colleges ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.ID, &college.Name); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// NameExists checks if a college with the given name exists
func (r *CollegeRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM colleges WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college existence: %w", err)
	}
	return exists, nil
}
