package dto

// CreateProjectRequest represents a new portfolio entry.
type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tech        []string `json:"tech,omitempty"`
	Link        *string  `json:"link,omitempty" binding:"omitempty,url"`
}
