package database

import (
	"database/sql"
	"time"

	"github.com/musicorai90/lca/app/models"
)

const staffColumns = `id, national_id, name, phone, address, email, position, weekly_hours,
	salary, birth_date, hire_date, end_date, photo_path, user_id`

func scanStaff(row interface{ Scan(...interface{}) error }) (*models.StaffMember, error) {
	s := &models.StaffMember{}
	err := row.Scan(
		&s.ID, &s.NationalID, &s.Name, &s.Phone, &s.Address, &s.Email,
		&s.Position, &s.WeeklyHours, &s.Salary, &s.BirthDate, &s.HireDate,
		&s.EndDate, &s.PhotoPath, &s.UserID,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func ListStaff(db *sql.DB) ([]*models.StaffMember, error) {
	rows, err := db.Query(`SELECT ` + staffColumns + ` FROM staff_members ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.StaffMember
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// ListActiveStaff returns members without an end date, for the roster
// export.
func ListActiveStaff(db *sql.DB) ([]*models.StaffMember, error) {
	rows, err := db.Query(`SELECT ` + staffColumns + ` FROM staff_members WHERE end_date IS NULL ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.StaffMember
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func GetStaffByID(db *sql.DB, id string) (*models.StaffMember, error) {
	return scanStaff(db.QueryRow(`SELECT `+staffColumns+` FROM staff_members WHERE id = $1`, id))
}

// GetStaffByNationalID resolves a caller's staff record from the
// identity username, which mirrors the national ID.
func GetStaffByNationalID(db *sql.DB, nationalID string) (*models.StaffMember, error) {
	return scanStaff(db.QueryRow(`SELECT `+staffColumns+` FROM staff_members WHERE national_id = $1`, nationalID))
}

// CreateStaffWithIdentity provisions the login identity and inserts the
// staff record in one transaction. The caller validates the record
// first; nothing is written on a validation failure.
func CreateStaffWithIdentity(db *sql.DB, s *models.StaffMember, user *models.User) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := createUser(tx, user); err != nil {
		return err
	}
	s.UserID = user.ID

	query := `INSERT INTO staff_members
		(national_id, name, phone, address, email, position, weekly_hours, salary, birth_date, hire_date, photo_path, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err = tx.QueryRow(query,
		s.NationalID, s.Name, s.Phone, s.Address, s.Email, s.Position,
		s.WeeklyHours, s.Salary, s.BirthDate, s.HireDate, s.PhotoPath, s.UserID,
	).Scan(&s.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateStaffWithIdentity persists an edited staff record together with
// its identity changes: an optional username rename and the idempotent
// role re-bind. A failure anywhere rolls the whole update back.
func UpdateStaffWithIdentity(db *sql.DB, s *models.StaffMember, rename bool) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if rename {
		if _, err := tx.Exec(`UPDATE users SET username = $1, updated_at = NOW() WHERE id = $2`, s.NationalID, s.UserID); err != nil {
			return err
		}
	}
	if err := SetUserRole(tx, s.UserID, models.RoleForPosition(s.Position)); err != nil {
		return err
	}

	query := `UPDATE staff_members SET
		national_id = $1, name = $2, phone = $3, address = $4, email = $5,
		position = $6, weekly_hours = $7, salary = $8, birth_date = $9,
		hire_date = $10, photo_path = $11
		WHERE id = $12`
	if _, err := tx.Exec(query,
		s.NationalID, s.Name, s.Phone, s.Address, s.Email, s.Position,
		s.WeeklyHours, s.Salary, s.BirthDate, s.HireDate, s.PhotoPath, s.ID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// DeactivateStaff marks the member inactive as of now. The record and
// its history stay in place.
func DeactivateStaff(db *sql.DB, id string, now time.Time) error {
	res, err := db.Exec(`UPDATE staff_members SET end_date = $1 WHERE id = $2`, now, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ReactivateStaff(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE staff_members SET end_date = NULL WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
