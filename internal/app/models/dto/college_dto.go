package dto

// CollegeStatsResponse represents the placement dashboard counts for a
// college.
type CollegeStatsResponse struct {
	TotalStudents    int64 `json:"totalStudents"`
	PlacedStudents   int64 `json:"placedStudents"`
	PendingApprovals int64 `json:"pendingApprovals"`
	ActiveJobs       int64 `json:"activeJobs"`
}
