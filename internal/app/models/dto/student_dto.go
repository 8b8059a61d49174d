package dto

// UpdateProfileRequest represents student profile update data. Nil fields
// keep their current value.
type UpdateProfileRequest struct {
	Name   *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Branch *string  `json:"branch,omitempty"`
	CGPA   *float64 `json:"cgpa,omitempty" binding:"omitempty,gte=0,lte=10"`
	Skills []string `json:"skills,omitempty"`
	Resume *string  `json:"resume,omitempty"`
}

// ResumeResponse carries the URL of an uploaded resume.
type ResumeResponse struct {
	Resume string `json:"resume"`
}
