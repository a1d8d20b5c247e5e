package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
)

func ListGuardians(db *sql.DB) ([]*models.Guardian, error) {
	rows, err := db.Query(`SELECT id, national_id, name, phone, address FROM guardians ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guardians []*models.Guardian
	for rows.Next() {
		g := &models.Guardian{}
		if err := rows.Scan(&g.ID, &g.NationalID, &g.Name, &g.Phone, &g.Address); err != nil {
			return nil, err
		}
		guardians = append(guardians, g)
	}
	return guardians, rows.Err()
}

func GetGuardianByID(db *sql.DB, id string) (*models.Guardian, error) {
	g := &models.Guardian{}
	err := db.QueryRow(`SELECT id, national_id, name, phone, address FROM guardians WHERE id = $1`, id).
		Scan(&g.ID, &g.NationalID, &g.Name, &g.Phone, &g.Address)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func CreateGuardian(db *sql.DB, g *models.Guardian) error {
	query := `INSERT INTO guardians (national_id, name, phone, address) VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, g.NationalID, g.Name, g.Phone, g.Address).Scan(&g.ID)
}

func UpdateGuardian(db *sql.DB, g *models.Guardian) error {
	query := `UPDATE guardians SET national_id = $1, name = $2, phone = $3, address = $4 WHERE id = $5`
	res, err := db.Exec(query, g.NationalID, g.Name, g.Phone, g.Address, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const studentColumns = `s.id, s.national_id, s.name, s.phone, s.address, s.email,
	s.birth_date, s.photo_path, s.guardian_id, s.user_id`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	st := &models.Student{}
	err := row.Scan(
		&st.ID, &st.NationalID, &st.Name, &st.Phone, &st.Address, &st.Email,
		&st.BirthDate, &st.PhotoPath, &st.GuardianID, &st.UserID,
	)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func ListStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students s ORDER BY s.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	return scanStudent(db.QueryRow(`SELECT `+studentColumns+` FROM students s WHERE s.id = $1`, id))
}

func GetStudentByNationalID(db *sql.DB, nationalID string) (*models.Student, error) {
	return scanStudent(db.QueryRow(`SELECT `+studentColumns+` FROM students s WHERE s.national_id = $1`, nationalID))
}

// CreateStudentWithIdentity provisions the login identity and inserts
// the student record in one transaction.
func CreateStudentWithIdentity(db *sql.DB, st *models.Student, user *models.User) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := createUser(tx, user); err != nil {
		return err
	}
	st.UserID = user.ID

	query := `INSERT INTO students
		(national_id, name, phone, address, email, birth_date, photo_path, guardian_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err = tx.QueryRow(query,
		st.NationalID, st.Name, st.Phone, st.Address, st.Email,
		st.BirthDate, st.PhotoPath, st.GuardianID, st.UserID,
	).Scan(&st.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateStudentWithIdentity persists an edited student together with an
// optional identity rename, atomically.
func UpdateStudentWithIdentity(db *sql.DB, st *models.Student, rename bool) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if rename {
		if _, err := tx.Exec(`UPDATE users SET username = $1, updated_at = NOW() WHERE id = $2`, st.NationalID, st.UserID); err != nil {
			return err
		}
	}

	query := `UPDATE students SET
		national_id = $1, name = $2, phone = $3, address = $4, email = $5,
		birth_date = $6, photo_path = $7, guardian_id = $8
		WHERE id = $9`
	if _, err := tx.Exec(query,
		st.NationalID, st.Name, st.Phone, st.Address, st.Email,
		st.BirthDate, st.PhotoPath, st.GuardianID, st.ID,
	); err != nil {
		return err
	}
	return tx.Commit()
}
