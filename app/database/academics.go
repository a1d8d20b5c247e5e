package database

import (
	"database/sql"

	"github.com/musicorai90/lca/app/models"
)

const subjectColumns = `sj.id, sj.name, sj.is_homeroom, sj.teacher_id, s.name`

func scanSubject(row interface{ Scan(...interface{}) error }) (*models.Subject, error) {
	sj := &models.Subject{Teacher: &models.StaffMember{}}
	err := row.Scan(&sj.ID, &sj.Name, &sj.IsHomeroom, &sj.TeacherID, &sj.Teacher.Name)
	if err != nil {
		return nil, err
	}
	sj.Teacher.ID = sj.TeacherID
	return sj, nil
}

func ListSubjects(db *sql.DB) ([]*models.Subject, error) {
	rows, err := db.Query(`SELECT ` + subjectColumns + ` FROM subjects sj
		JOIN staff_members s ON s.id = sj.teacher_id ORDER BY sj.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		sj, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, sj)
	}
	return subjects, rows.Err()
}

// ListSubjectsByTeacher returns the subjects a staff member teaches,
// the starting set for enrollment scoping.
func ListSubjectsByTeacher(db *sql.DB, teacherID string) ([]*models.Subject, error) {
	rows, err := db.Query(`SELECT `+subjectColumns+` FROM subjects sj
		JOIN staff_members s ON s.id = sj.teacher_id WHERE sj.teacher_id = $1 ORDER BY sj.name`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		sj, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, sj)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	return scanSubject(db.QueryRow(`SELECT `+subjectColumns+` FROM subjects sj
		JOIN staff_members s ON s.id = sj.teacher_id WHERE sj.id = $1`, id))
}

func CreateSubject(db *sql.DB, sj *models.Subject) error {
	return db.QueryRow(`INSERT INTO subjects (name, is_homeroom, teacher_id) VALUES ($1, $2, $3) RETURNING id`,
		sj.Name, sj.IsHomeroom, sj.TeacherID).Scan(&sj.ID)
}

func UpdateSubject(db *sql.DB, sj *models.Subject) error {
	res, err := db.Exec(`UPDATE subjects SET name = $1, is_homeroom = $2, teacher_id = $3 WHERE id = $4`,
		sj.Name, sj.IsHomeroom, sj.TeacherID, sj.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListUnits(db *sql.DB) ([]*models.Unit, error) {
	rows, err := db.Query(`SELECT u.id, u.description, u.start_date, u.end_date, u.subject_id, sj.name
		FROM units u JOIN subjects sj ON sj.id = u.subject_id ORDER BY u.start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		u := &models.Unit{Subject: &models.Subject{}}
		if err := rows.Scan(&u.ID, &u.Description, &u.StartDate, &u.EndDate, &u.SubjectID, &u.Subject.Name); err != nil {
			return nil, err
		}
		u.Subject.ID = u.SubjectID
		units = append(units, u)
	}
	return units, rows.Err()
}

func CreateUnit(db *sql.DB, u *models.Unit) error {
	return db.QueryRow(`INSERT INTO units (description, start_date, end_date, subject_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Description, u.StartDate, u.EndDate, u.SubjectID).Scan(&u.ID)
}

func UpdateUnit(db *sql.DB, u *models.Unit) error {
	res, err := db.Exec(`UPDATE units SET description = $1, start_date = $2, end_date = $3, subject_id = $4 WHERE id = $5`,
		u.Description, u.StartDate, u.EndDate, u.SubjectID, u.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteUnit(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListScheduleSlots(db *sql.DB) ([]*models.ScheduleSlot, error) {
	rows, err := db.Query(`SELECT h.id, h.day, to_char(h.start_time, 'HH24:MI'), to_char(h.end_time, 'HH24:MI'), h.subject_id, sj.name
		FROM schedule_slots h JOIN subjects sj ON sj.id = h.subject_id ORDER BY h.day, h.start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*models.ScheduleSlot
	for rows.Next() {
		slot := &models.ScheduleSlot{Subject: &models.Subject{}}
		if err := rows.Scan(&slot.ID, &slot.Day, &slot.StartTime, &slot.EndTime, &slot.SubjectID, &slot.Subject.Name); err != nil {
			return nil, err
		}
		slot.Subject.ID = slot.SubjectID
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func CreateScheduleSlot(db *sql.DB, slot *models.ScheduleSlot) error {
	return db.QueryRow(`INSERT INTO schedule_slots (day, start_time, end_time, subject_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		slot.Day, slot.StartTime, slot.EndTime, slot.SubjectID).Scan(&slot.ID)
}

func UpdateScheduleSlot(db *sql.DB, slot *models.ScheduleSlot) error {
	res, err := db.Exec(`UPDATE schedule_slots SET day = $1, start_time = $2, end_time = $3, subject_id = $4 WHERE id = $5`,
		slot.Day, slot.StartTime, slot.EndTime, slot.SubjectID, slot.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteScheduleSlot(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM schedule_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const enrollmentColumns = `e.id, e.subject_id, e.student_id, sj.name, st.name`

func scanEnrollment(row interface{ Scan(...interface{}) error }) (*models.Enrollment, error) {
	e := &models.Enrollment{Subject: &models.Subject{}, Student: &models.Student{}}
	err := row.Scan(&e.ID, &e.SubjectID, &e.StudentID, &e.Subject.Name, &e.Student.Name)
	if err != nil {
		return nil, err
	}
	e.Subject.ID = e.SubjectID
	e.Student.ID = e.StudentID
	return e, nil
}

const enrollmentJoin = ` FROM enrollments e
	JOIN subjects sj ON sj.id = e.subject_id
	JOIN students st ON st.id = e.student_id`

func ListEnrollments(db *sql.DB) ([]*models.Enrollment, error) {
	rows, err := db.Query(`SELECT ` + enrollmentColumns + enrollmentJoin + ` ORDER BY sj.name, st.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListEnrollmentsBySubject returns one subject's enrollment list. The
// caller unions these per-subject lists when scoping a teacher's
// choices.
func ListEnrollmentsBySubject(db *sql.DB, subjectID string) ([]*models.Enrollment, error) {
	rows, err := db.Query(`SELECT `+enrollmentColumns+enrollmentJoin+` WHERE e.subject_id = $1 ORDER BY st.name`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func GetEnrollmentByID(db *sql.DB, id string) (*models.Enrollment, error) {
	return scanEnrollment(db.QueryRow(`SELECT `+enrollmentColumns+enrollmentJoin+` WHERE e.id = $1`, id))
}

func CreateEnrollment(db *sql.DB, e *models.Enrollment) error {
	return db.QueryRow(`INSERT INTO enrollments (subject_id, student_id) VALUES ($1, $2) RETURNING id`,
		e.SubjectID, e.StudentID).Scan(&e.ID)
}

func UpdateEnrollment(db *sql.DB, e *models.Enrollment) error {
	res, err := db.Exec(`UPDATE enrollments SET subject_id = $1, student_id = $2 WHERE id = $3`,
		e.SubjectID, e.StudentID, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteEnrollment(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListStudentAttendance(db *sql.DB) ([]*models.StudentAttendance, error) {
	rows, err := db.Query(`SELECT a.id, a.date, a.enrollment_id, sj.name, st.name
		FROM student_attendance a
		JOIN enrollments e ON e.id = a.enrollment_id
		JOIN subjects sj ON sj.id = e.subject_id
		JOIN students st ON st.id = e.student_id
		ORDER BY a.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.StudentAttendance
	for rows.Next() {
		a := &models.StudentAttendance{Enrollment: &models.Enrollment{Subject: &models.Subject{}, Student: &models.Student{}}}
		if err := rows.Scan(&a.ID, &a.Date, &a.EnrollmentID, &a.Enrollment.Subject.Name, &a.Enrollment.Student.Name); err != nil {
			return nil, err
		}
		a.Enrollment.ID = a.EnrollmentID
		records = append(records, a)
	}
	return records, rows.Err()
}

func CreateStudentAttendance(db *sql.DB, a *models.StudentAttendance) error {
	return db.QueryRow(`INSERT INTO student_attendance (date, enrollment_id) VALUES ($1, $2) RETURNING id`,
		a.Date, a.EnrollmentID).Scan(&a.ID)
}

func UpdateStudentAttendance(db *sql.DB, a *models.StudentAttendance) error {
	res, err := db.Exec(`UPDATE student_attendance SET date = $1, enrollment_id = $2 WHERE id = $3`,
		a.Date, a.EnrollmentID, a.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteStudentAttendance(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM student_attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListGradeDefinitions(db *sql.DB) ([]*models.GradeDefinition, error) {
	rows, err := db.Query(`SELECT id, name, max_score, start_date, end_date FROM grade_definitions ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []*models.GradeDefinition
	for rows.Next() {
		d := &models.GradeDefinition{}
		if err := rows.Scan(&d.ID, &d.Name, &d.MaxScore, &d.StartDate, &d.EndDate); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func GetGradeDefinitionByID(db *sql.DB, id string) (*models.GradeDefinition, error) {
	d := &models.GradeDefinition{}
	err := db.QueryRow(`SELECT id, name, max_score, start_date, end_date FROM grade_definitions WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.MaxScore, &d.StartDate, &d.EndDate)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func CreateGradeDefinition(db *sql.DB, d *models.GradeDefinition) error {
	return db.QueryRow(`INSERT INTO grade_definitions (name, max_score, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id`,
		d.Name, d.MaxScore, d.StartDate, d.EndDate).Scan(&d.ID)
}

func UpdateGradeDefinition(db *sql.DB, d *models.GradeDefinition) error {
	res, err := db.Exec(`UPDATE grade_definitions SET name = $1, max_score = $2, start_date = $3, end_date = $4 WHERE id = $5`,
		d.Name, d.MaxScore, d.StartDate, d.EndDate, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteGradeDefinition(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM grade_definitions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListGradeRecords(db *sql.DB) ([]*models.GradeRecord, error) {
	rows, err := db.Query(`SELECT g.id, g.score, g.date, g.enrollment_id, g.definition_id, d.name, sj.name, st.name
		FROM grade_records g
		JOIN grade_definitions d ON d.id = g.definition_id
		JOIN enrollments e ON e.id = g.enrollment_id
		JOIN subjects sj ON sj.id = e.subject_id
		JOIN students st ON st.id = e.student_id
		ORDER BY g.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.GradeRecord
	for rows.Next() {
		g := &models.GradeRecord{
			Definition: &models.GradeDefinition{},
			Enrollment: &models.Enrollment{Subject: &models.Subject{}, Student: &models.Student{}},
		}
		if err := rows.Scan(&g.ID, &g.Score, &g.Date, &g.EnrollmentID, &g.DefinitionID,
			&g.Definition.Name, &g.Enrollment.Subject.Name, &g.Enrollment.Student.Name); err != nil {
			return nil, err
		}
		g.Definition.ID = g.DefinitionID
		g.Enrollment.ID = g.EnrollmentID
		records = append(records, g)
	}
	return records, rows.Err()
}

func CreateGradeRecord(db *sql.DB, g *models.GradeRecord) error {
	return db.QueryRow(`INSERT INTO grade_records (score, date, enrollment_id, definition_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		g.Score, g.Date, g.EnrollmentID, g.DefinitionID).Scan(&g.ID)
}

func UpdateGradeRecord(db *sql.DB, g *models.GradeRecord) error {
	res, err := db.Exec(`UPDATE grade_records SET score = $1, date = $2, enrollment_id = $3, definition_id = $4 WHERE id = $5`,
		g.Score, g.Date, g.EnrollmentID, g.DefinitionID, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteGradeRecord(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM grade_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
