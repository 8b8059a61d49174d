package models

import (
	"time"
)

// Application defines the application model based on the 'applications'
// table. At most one application exists per (student, job) pair; the table
// carries a compound unique index so concurrent applies cannot slip past an
// existence check.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	JobID     int64             `json:"jobId" db:"job_id"`
	Status    ApplicationStatus `json:"status" db:"status" example:"Applied"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`

	Student *User `json:"student,omitempty"` // Relation, no db tag
	Job     *Job  `json:"job,omitempty"`     // Relation, no db tag
}
