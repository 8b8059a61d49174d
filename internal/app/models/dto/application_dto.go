package dto

import (
	"github.com/campushire/campushire/internal/app/models"
)

// UpdateApplicationStatusRequest represents a recruiter advancing a
// candidate through the pipeline.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=Shortlisted 'Interview Scheduled' Rejected Offered"`
}
