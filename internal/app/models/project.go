package models

// Project defines a portfolio entry owned by exactly one student, based on
// the 'projects' table.
type Project struct {
	ID          int64    `json:"id" db:"id"`
	UserID      int64    `json:"userId" db:"user_id"`
	Name        string   `json:"name" db:"name" example:"Inventory Tracker"`
	Description string   `json:"description" db:"description"`
	Tech        []string `json:"tech" db:"tech"`
	Link        *string  `json:"link,omitempty" db:"link"`
}
