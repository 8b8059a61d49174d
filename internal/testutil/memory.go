// Package testutil provides in-memory store implementations mirroring the
// semantics of the Postgres repositories, for tests that run without a
// database.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/repositories"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

// DB is the shared state behind the in-memory stores.
type DB struct {
	mu           sync.Mutex
	nextID       int64
	users        map[int64]*models.User
	colleges     map[int64]*models.College
	jobs         map[int64]*models.Job
	applications map[int64]*models.Application
	projects     map[int64]*models.Project
	saved        map[int64][]int64
}

// NewDB creates an empty in-memory database.
func NewDB() *DB {
	return &DB{
		users:        make(map[int64]*models.User),
		colleges:     make(map[int64]*models.College),
		jobs:         make(map[int64]*models.Job),
		applications: make(map[int64]*models.Application),
		projects:     make(map[int64]*models.Project),
		saved:        make(map[int64][]int64),
	}
}

func (d *DB) id() int64 {
	d.nextID++
	return d.nextID
}

// Stores bundles the per-entity store views over one DB.
type Stores struct {
	Users        *UserStore
	Colleges     *CollegeStore
	Jobs         *JobStore
	Applications *ApplicationStore
	Projects     *ProjectStore
}

// NewStores creates a fresh DB and its store views.
func NewStores() (*DB, *Stores) {
	db := NewDB()
	return db, &Stores{
		Users:        &UserStore{db: db},
		Colleges:     &CollegeStore{db: db},
		Jobs:         &JobStore{db: db},
		Applications: &ApplicationStore{db: db},
		Projects:     &ProjectStore{db: db},
	}
}

// UserStore is an in-memory user store.
type UserStore struct {
	db *DB
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.insertUser(user)
}

func (d *DB) insertUser(user *models.User) error {
	for _, existing := range d.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = d.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	d.users[user.ID] = &copied
	return nil
}

func (s *UserStore) CreateCollegeUser(_ context.Context, college *models.College, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.colleges {
		if existing.Name == college.Name {
			return apperrors.ErrCollegeAlreadyExists
		}
	}

	college.ID = s.db.id()
	user.CollegeID = &college.ID
	if err := s.db.insertUser(user); err != nil {
		// Neither row survives a failed pair, as in the transactional path.
		return err
	}

	copied := *college
	s.db.colleges[college.ID] = &copied
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	user, ok := s.db.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, user := range s.db.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *UserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, user := range s.db.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored, ok := s.db.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Branch = user.Branch
	stored.CGPA = user.CGPA
	stored.Skills = user.Skills
	stored.Resume = user.Resume
	stored.UpdatedAt = time.Now()
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *UserStore) ListStudentsByCollege(_ context.Context, collegeID int64, offset uint64, limit int) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var students []*models.User
	for _, user := range s.db.users {
		if user.Role == models.RoleStudent && user.CollegeID != nil && *user.CollegeID == collegeID {
			copied := *user
			students = append(students, &copied)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID > students[j].ID })

	if int(offset) >= len(students) {
		return nil, nil
	}
	students = students[offset:]
	if limit > 0 && len(students) > limit {
		students = students[:limit]
	}
	return students, nil
}

func (s *UserStore) CountStudentsByCollege(_ context.Context, collegeID int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var count int64
	for _, user := range s.db.users {
		if user.Role == models.RoleStudent && user.CollegeID != nil && *user.CollegeID == collegeID {
			count++
		}
	}
	return count, nil
}

func (s *UserStore) ListRecruitersByCollege(_ context.Context, collegeID int64) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	seen := make(map[int64]bool)
	var recruiters []*models.User
	for _, job := range s.db.jobs {
		if job.CollegeID != collegeID || seen[job.RecruiterID] {
			continue
		}
		if user, ok := s.db.users[job.RecruiterID]; ok {
			seen[user.ID] = true
			copied := *user
			recruiters = append(recruiters, &copied)
		}
	}
	sort.Slice(recruiters, func(i, j int) bool { return recruiters[i].ID < recruiters[j].ID })
	return recruiters, nil
}

// CollegeStore is an in-memory college store.
type CollegeStore struct {
	db *DB
}

func (s *CollegeStore) Create(_ context.Context, college *models.College) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.colleges {
		if existing.Name == college.Name {
			return apperrors.ErrCollegeAlreadyExists
		}
	}
	college.ID = s.db.id()
	copied := *college
	s.db.colleges[college.ID] = &copied
	return nil
}

func (s *CollegeStore) GetByID(_ context.Context, id int64) (*models.College, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	college, ok := s.db.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	copied := *college
	return &copied, nil
}

func (s *CollegeStore) GetAll(_ context.Context) ([]*models.College, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var colleges []*models.College
	for _, college := range s.db.colleges {
		copied := *college
		colleges = append(colleges, &copied)
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

func (s *CollegeStore) NameExists(_ context.Context, name string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, college := range s.db.colleges {
		if college.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// JobStore is an in-memory job store.
type JobStore struct {
	db *DB
}

func (s *JobStore) Create(_ context.Context, job *models.Job) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	job.ID = s.db.id()
	job.CreatedAt = time.Now()
	copied := *job
	s.db.jobs[job.ID] = &copied
	return nil
}

func (s *JobStore) GetByID(_ context.Context, id int64) (*models.Job, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	job, ok := s.db.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (s *JobStore) List(_ context.Context, filter repositories.JobFilter) ([]*models.Job, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var jobs []*models.Job
	for _, job := range s.db.jobs {
		if filter.CollegeID != 0 && job.CollegeID != filter.CollegeID {
			continue
		}
		if filter.RecruiterID != 0 && job.RecruiterID != filter.RecruiterID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		copied := *job
		jobs = append(jobs, &copied)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })

	if int(filter.Offset) >= len(jobs) {
		return nil, nil
	}
	jobs = jobs[filter.Offset:]
	if filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

func (s *JobStore) Update(_ context.Context, job *models.Job) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored, ok := s.db.jobs[job.ID]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	stored.Title = job.Title
	stored.Description = job.Description
	stored.Location = job.Location
	stored.Salary = job.Salary
	stored.Deadline = job.Deadline
	return nil
}

func (s *JobStore) UpdateStatus(_ context.Context, id int64, from, to models.JobStatus) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	job, ok := s.db.jobs[id]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	if job.Status != from {
		return apperrors.ErrJobTransitionNotAllowed
	}
	job.Status = to
	return nil
}

func (s *JobStore) CountByCollegeAndStatus(_ context.Context, collegeID int64, status models.JobStatus) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var count int64
	for _, job := range s.db.jobs {
		if job.CollegeID == collegeID && job.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *JobStore) SaveForUser(_ context.Context, userID, jobID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, saved := range s.db.saved[userID] {
		if saved == jobID {
			return nil
		}
	}
	s.db.saved[userID] = append(s.db.saved[userID], jobID)
	return nil
}

func (s *JobStore) UnsaveForUser(_ context.Context, userID, jobID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	saved := s.db.saved[userID]
	for i, id := range saved {
		if id == jobID {
			s.db.saved[userID] = append(saved[:i], saved[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("saved job not found")
}

func (s *JobStore) ListSavedByUser(_ context.Context, userID int64) ([]*models.Job, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var jobs []*models.Job
	for _, id := range s.db.saved[userID] {
		if job, ok := s.db.jobs[id]; ok {
			copied := *job
			jobs = append(jobs, &copied)
		}
	}
	return jobs, nil
}

// ApplicationStore is an in-memory application store.
type ApplicationStore struct {
	db *DB
}

func (s *ApplicationStore) Create(_ context.Context, application *models.Application) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.applications {
		if existing.StudentID == application.StudentID && existing.JobID == application.JobID {
			return apperrors.ErrDuplicateApplication
		}
	}
	application.ID = s.db.id()
	application.CreatedAt = time.Now()
	copied := *application
	s.db.applications[application.ID] = &copied
	return nil
}

func (s *ApplicationStore) GetByID(_ context.Context, id int64) (*models.Application, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	application, ok := s.db.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (s *ApplicationStore) ExistsForPair(_ context.Context, studentID, jobID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, application := range s.db.applications {
		if application.StudentID == studentID && application.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *ApplicationStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var applications []*models.Application
	for _, application := range s.db.applications {
		if application.StudentID == studentID {
			copied := *application
			applications = append(applications, &copied)
		}
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID > applications[j].ID })
	return applications, nil
}

func (s *ApplicationStore) ListByJob(_ context.Context, jobID int64) ([]*models.Application, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var applications []*models.Application
	for _, application := range s.db.applications {
		if application.JobID == jobID {
			copied := *application
			if student, ok := s.db.users[application.StudentID]; ok {
				studentCopy := *student
				copied.Student = &studentCopy
			}
			applications = append(applications, &copied)
		}
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID > applications[j].ID })
	return applications, nil
}

func (s *ApplicationStore) ListCandidatesByRecruiter(_ context.Context, recruiterID int64) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	seen := make(map[int64]bool)
	var candidates []*models.User
	for _, application := range s.db.applications {
		job, ok := s.db.jobs[application.JobID]
		if !ok || job.RecruiterID != recruiterID || seen[application.StudentID] {
			continue
		}
		if student, ok := s.db.users[application.StudentID]; ok {
			seen[student.ID] = true
			copied := *student
			candidates = append(candidates, &copied)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates, nil
}

func (s *ApplicationStore) UpdateStatus(_ context.Context, id int64, from, to models.ApplicationStatus) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	application, ok := s.db.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	if application.Status != from {
		return apperrors.ErrApplicationTransitionNotAllowed
	}
	application.Status = to
	return nil
}

func (s *ApplicationStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.applications[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(s.db.applications, id)
	return nil
}

func (s *ApplicationStore) CountOfferedByCollege(_ context.Context, collegeID int64) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var count int64
	for _, application := range s.db.applications {
		if application.Status != models.ApplicationStatusOffered {
			continue
		}
		if job, ok := s.db.jobs[application.JobID]; ok && job.CollegeID == collegeID {
			count++
		}
	}
	return count, nil
}

// ProjectStore is an in-memory project store.
type ProjectStore struct {
	db *DB
}

func (s *ProjectStore) Create(_ context.Context, project *models.Project) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	project.ID = s.db.id()
	copied := *project
	s.db.projects[project.ID] = &copied
	return nil
}

func (s *ProjectStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	project, ok := s.db.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (s *ProjectStore) ListByUser(_ context.Context, userID int64) ([]*models.Project, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var projects []*models.Project
	for _, project := range s.db.projects {
		if project.UserID == userID {
			copied := *project
			projects = append(projects, &copied)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })
	return projects, nil
}

func (s *ProjectStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.projects[id]; !ok {
		return apperrors.ErrProjectNotFound
	}
	delete(s.db.projects, id)
	return nil
}
