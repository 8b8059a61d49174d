// Package services holds the business rules sitting between the HTTP
// controllers and the repositories. Services depend on narrow store
// interfaces, satisfied by the pgx repositories in production and by
// in-memory fakes in tests.
package services

import (
	"context"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/repositories"
)

// UserStore is the user persistence surface the services need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	CreateCollegeUser(ctx context.Context, college *models.College, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ListStudentsByCollege(ctx context.Context, collegeID int64, offset uint64, limit int) ([]*models.User, error)
	CountStudentsByCollege(ctx context.Context, collegeID int64) (int64, error)
	ListRecruitersByCollege(ctx context.Context, collegeID int64) ([]*models.User, error)
}

// CollegeStore is the college persistence surface the services need.
type CollegeStore interface {
	Create(ctx context.Context, college *models.College) error
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

// JobStore is the job persistence surface the services need.
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context, filter repositories.JobFilter) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	UpdateStatus(ctx context.Context, id int64, from, to models.JobStatus) error
	CountByCollegeAndStatus(ctx context.Context, collegeID int64, status models.JobStatus) (int64, error)
	SaveForUser(ctx context.Context, userID, jobID int64) error
	UnsaveForUser(ctx context.Context, userID, jobID int64) error
	ListSavedByUser(ctx context.Context, userID int64) ([]*models.Job, error)
}

// ApplicationStore is the application persistence surface the services need.
type ApplicationStore interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	ExistsForPair(ctx context.Context, studentID, jobID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error)
	ListCandidatesByRecruiter(ctx context.Context, recruiterID int64) ([]*models.User, error)
	UpdateStatus(ctx context.Context, id int64, from, to models.ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
	CountOfferedByCollege(ctx context.Context, collegeID int64) (int64, error)
}

// ProjectStore is the project persistence surface the services need.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Project, error)
	Delete(ctx context.Context, id int64) error
}
