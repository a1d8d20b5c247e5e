package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
)

// GetDashboardStats returns the counters for the landing dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM staff_members WHERE end_date IS NULL", &stats.ActiveStaff},
		{"SELECT COUNT(*) FROM students", &stats.Students},
		{"SELECT COUNT(*) FROM subjects", &stats.Subjects},
		{"SELECT COUNT(*) FROM assets", &stats.Assets},
		{"SELECT COUNT(*) FROM damage_reports WHERE status = 'pending'", &stats.PendingReports},
		{"SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'", &stats.PendingLeave},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
