package dto

import (
	"time"

	"github.com/campushire/campushire/internal/app/models"
)

// CreateJobRequest represents a recruiter's job posting. College is the id
// of the college the posting targets.
type CreateJobRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	College     int64      `json:"college" binding:"required,min=1"`
	Location    *string    `json:"location,omitempty"`
	Salary      *string    `json:"salary,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// CreateCollegeJobRequest represents a college's own posting; the target
// college is implied by the caller.
type CreateCollegeJobRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Location    *string    `json:"location,omitempty"`
	Salary      *string    `json:"salary,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateJobRequest represents a content edit of an existing job. The status
// field is absent deliberately; status moves only through the college
// transition endpoint.
type UpdateJobRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Location    *string    `json:"location,omitempty"`
	Salary      *string    `json:"salary,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateJobStatusRequest represents a college's approval decision.
type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" binding:"required,oneof=Approved Rejected"`
}
