package models

// DashboardStats is the summary block shown on the landing dashboard.
type DashboardStats struct {
	ActiveStaff    int `json:"active_staff"`
	Students       int `json:"students"`
	Subjects       int `json:"subjects"`
	Assets         int `json:"assets"`
	PendingReports int `json:"pending_reports"`
	PendingLeave   int `json:"pending_leave"`
}
