package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "Student"
	RoleCollege   RoleType = "College"
	RoleRecruiter RoleType = "Recruiter"
)

// Valid reports whether the role is one of the three known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleCollege, RoleRecruiter:
		return true
	}
	return false
}

// RequiresCollege reports whether users of this role must reference a college.
func (r RoleType) RequiresCollege() bool {
	return r == RoleStudent || r == RoleCollege
}

// JobStatus represents the approval state of a job posting
type JobStatus string

const (
	JobStatusPending  JobStatus = "Pending"
	JobStatusApproved JobStatus = "Approved"
	JobStatusRejected JobStatus = "Rejected"
)

// Valid reports whether the status is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusApproved, JobStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a college may move a job from s to target.
// Only Pending jobs move, and only to Approved or Rejected.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	if s != JobStatusPending {
		return false
	}
	return target == JobStatusApproved || target == JobStatusRejected
}

// ApplicationStatus represents the state of a student's application
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "Interview Scheduled"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusOffered     ApplicationStatus = "Offered"
)

// Valid reports whether the status is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusRejected,
		ApplicationStatusOffered:
		return true
	}
	return false
}

// Terminal reports whether no further recruiter transition is allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusOffered
}

// CanTransitionTo reports whether a recruiter may move an application from s
// to target. The pipeline only moves forward: Applied, then Shortlisted, then
// Interview Scheduled, with Rejected and Offered reachable from any
// non-terminal state.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if s.Terminal() || !target.Valid() || target == ApplicationStatusApplied {
		return false
	}
	switch s {
	case ApplicationStatusApplied:
		return true
	case ApplicationStatusShortlisted:
		return target != ApplicationStatusShortlisted
	case ApplicationStatusInterview:
		return target == ApplicationStatusRejected || target == ApplicationStatusOffered
	}
	return false
}
