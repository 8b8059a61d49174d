package models

import (
	"time"
)

// Job defines the job posting model based on the 'jobs' table
type Job struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title" example:"Backend Engineer"`
	Description string     `json:"description" db:"description"`
	Company     string     `json:"company" db:"company"` // Denormalized from the posting recruiter or college
	RecruiterID int64      `json:"recruiterId" db:"recruiter_id"`
	CollegeID   int64      `json:"collegeId" db:"college_id"`
	Location    *string    `json:"location,omitempty" db:"location"`
	Salary      *string    `json:"salary,omitempty" db:"salary"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Status      JobStatus  `json:"status" db:"status" example:"Pending"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	Recruiter *User    `json:"recruiter,omitempty"` // Relation, no db tag
	College   *College `json:"college,omitempty"`   // Relation, no db tag
}
