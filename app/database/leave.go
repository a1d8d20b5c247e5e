package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
)

const leaveColumns = `l.id, l.start_date, l.end_date, l.document, l.status, l.staff_id, s.name`

func scanLeave(row interface{ Scan(...interface{}) error }) (*models.LeaveRequest, error) {
	l := &models.LeaveRequest{Staff: &models.StaffMember{}}
	err := row.Scan(&l.ID, &l.StartDate, &l.EndDate, &l.Document, &l.Status, &l.StaffID, &l.Staff.Name)
	if err != nil {
		return nil, err
	}
	l.Staff.ID = l.StaffID
	return l, nil
}

func ListLeaveRequests(db *sql.DB) ([]*models.LeaveRequest, error) {
	rows, err := db.Query(`SELECT ` + leaveColumns + ` FROM leave_requests l
		JOIN staff_members s ON s.id = l.staff_id ORDER BY l.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

func GetLeaveRequestByID(db *sql.DB, id string) (*models.LeaveRequest, error) {
	return scanLeave(db.QueryRow(`SELECT `+leaveColumns+` FROM leave_requests l
		JOIN staff_members s ON s.id = l.staff_id WHERE l.id = $1`, id))
}

func CreateLeaveRequest(db *sql.DB, l *models.LeaveRequest) error {
	query := `INSERT INTO leave_requests (start_date, end_date, document, status, staff_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return db.QueryRow(query, l.StartDate, l.EndDate, l.Document, l.Status, l.StaffID).Scan(&l.ID)
}

// UpdateLeaveRequest is the secretary's plain edit: dates, document,
// staff binding and status change with no side effects.
func UpdateLeaveRequest(db *sql.DB, l *models.LeaveRequest) error {
	query := `UPDATE leave_requests SET start_date = $1, end_date = $2, document = $3, status = $4, staff_id = $5 WHERE id = $6`
	res, err := db.Exec(query, l.StartDate, l.EndDate, l.Document, l.Status, l.StaffID, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const memoColumns = `m.id, m.note, m.date, m.staff_id, s.name`

func ListMemos(db *sql.DB) ([]*models.Memo, error) {
	rows, err := db.Query(`SELECT ` + memoColumns + ` FROM memos m
		JOIN staff_members s ON s.id = m.staff_id ORDER BY m.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memos []*models.Memo
	for rows.Next() {
		m := &models.Memo{Staff: &models.StaffMember{}}
		if err := rows.Scan(&m.ID, &m.Note, &m.Date, &m.StaffID, &m.Staff.Name); err != nil {
			return nil, err
		}
		m.Staff.ID = m.StaffID
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

func GetMemoByID(db *sql.DB, id string) (*models.Memo, error) {
	m := &models.Memo{Staff: &models.StaffMember{}}
	err := db.QueryRow(`SELECT `+memoColumns+` FROM memos m
		JOIN staff_members s ON s.id = m.staff_id WHERE m.id = $1`, id).
		Scan(&m.ID, &m.Note, &m.Date, &m.StaffID, &m.Staff.Name)
	if err != nil {
		return nil, err
	}
	m.Staff.ID = m.StaffID
	return m, nil
}

func CreateMemo(db *sql.DB, m *models.Memo) error {
	return db.QueryRow(`INSERT INTO memos (note, date, staff_id) VALUES ($1, $2, $3) RETURNING id`,
		m.Note, m.Date, m.StaffID).Scan(&m.ID)
}

func UpdateMemo(db *sql.DB, m *models.Memo) error {
	res, err := db.Exec(`UPDATE memos SET note = $1, date = $2, staff_id = $3 WHERE id = $4`,
		m.Note, m.Date, m.StaffID, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteMemo(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListStaffAttendance(db *sql.DB) ([]*models.StaffAttendance, error) {
	rows, err := db.Query(`SELECT a.id, a.date, a.hours, a.staff_id, s.name
		FROM staff_attendance a
		JOIN staff_members s ON s.id = a.staff_id ORDER BY a.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StaffAttendance
	for rows.Next() {
		a := &models.StaffAttendance{Staff: &models.StaffMember{}}
		if err := rows.Scan(&a.ID, &a.Date, &a.Hours, &a.StaffID, &a.Staff.Name); err != nil {
			return nil, err
		}
		a.Staff.ID = a.StaffID
		records = append(records, a)
	}
	return records, rows.Err()
}

func CreateStaffAttendance(db *sql.DB, a *models.StaffAttendance) error {
	return db.QueryRow(`INSERT INTO staff_attendance (date, hours, staff_id) VALUES ($1, $2, $3) RETURNING id`,
		a.Date, a.Hours, a.StaffID).Scan(&a.ID)
}

func UpdateStaffAttendance(db *sql.DB, a *models.StaffAttendance) error {
	res, err := db.Exec(`UPDATE staff_attendance SET date = $1, hours = $2, staff_id = $3 WHERE id = $4`,
		a.Date, a.Hours, a.StaffID, a.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteStaffAttendance(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM staff_attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListActivities(db *sql.DB) ([]*models.Activity, error) {
	rows, err := db.Query(`SELECT id, date, description FROM activities ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.Date, &a.Description); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func GetActivityByID(db *sql.DB, id string) (*models.Activity, error) {
	a := &models.Activity{}
	err := db.QueryRow(`SELECT id, date, description FROM activities WHERE id = $1`, id).
		Scan(&a.ID, &a.Date, &a.Description)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT `+staffColumns+` FROM staff_members
		JOIN activity_staff ast ON ast.staff_id = staff_members.id
		WHERE ast.activity_id = $1 ORDER BY name`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		a.Participants = append(a.Participants, s)
	}
	return a, rows.Err()
}

// CreateActivity inserts the activity and its participant rows in one
// transaction.
func CreateActivity(db *sql.DB, a *models.Activity, participantIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`INSERT INTO activities (date, description) VALUES ($1, $2) RETURNING id`,
		a.Date, a.Description).Scan(&a.ID); err != nil {
		return err
	}
	for _, staffID := range participantIDs {
		if _, err := tx.Exec(`INSERT INTO activity_staff (activity_id, staff_id) VALUES ($1, $2)`, a.ID, staffID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateActivity replaces the fields and participant set atomically.
func UpdateActivity(db *sql.DB, a *models.Activity, participantIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE activities SET date = $1, description = $2 WHERE id = $3`,
		a.Date, a.Description, a.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM activity_staff WHERE activity_id = $1`, a.ID); err != nil {
		return err
	}
	for _, staffID := range participantIDs {
		if _, err := tx.Exec(`INSERT INTO activity_staff (activity_id, staff_id) VALUES ($1, $2)`, a.ID, staffID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
