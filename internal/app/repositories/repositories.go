package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CollegeRepository     *CollegeRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	ProjectRepository     *ProjectRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CollegeRepository:     NewCollegeRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ProjectRepository:     NewProjectRepository(db),
	}
}
