package models

// College defines the college model based on the 'colleges' table.
// A college record is created explicitly through the public directory or
// implicitly when a user registers with the College role.
type College struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"National Institute of Technology"`
}
