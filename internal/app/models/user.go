package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Alice Sharma"`                   // Display name
	Email     string    `json:"email" db:"email" example:"alice@campus.edu"`             // User's email address
	Password  string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"Student"`                        // One of Student, College, Recruiter
	CollegeID *int64    `json:"collegeId,omitempty" db:"college_id"`                     // Set for Student and College roles only
	Company   *string   `json:"company,omitempty" db:"company"`                          // Set for Recruiter role only
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	// Student profile fields
	Branch *string  `json:"branch,omitempty" db:"branch"`
	CGPA   *float64 `json:"cgpa,omitempty" db:"cgpa"`
	Skills []string `json:"skills,omitempty" db:"skills"`
	Resume *string  `json:"resume,omitempty" db:"resume"` // URL of the uploaded resume

	College *College `json:"college,omitempty"` // Relation, no db tag
}

// IsStudent reports whether the user holds the Student role.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
