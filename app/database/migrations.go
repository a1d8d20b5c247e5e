package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema. Statements are idempotent so the
// server can run them on every start. Every foreign key cascades on
// delete; people are never hard-deleted by the application, so the
// cascades only matter for the leaf catalogs.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) UNIQUE NOT NULL,
			password TEXT NOT NULL,
			email VARCHAR(50),
			role VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS staff_members (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			national_id VARCHAR(8) UNIQUE NOT NULL,
			name VARCHAR(50) NOT NULL,
			phone VARCHAR(12) NOT NULL,
			address VARCHAR(100) NOT NULL,
			email VARCHAR(50),
			position VARCHAR(20) NOT NULL,
			weekly_hours INTEGER,
			salary INTEGER NOT NULL,
			birth_date DATE NOT NULL,
			hire_date DATE NOT NULL,
			end_date DATE,
			photo_path VARCHAR(200),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS department_staff (
			department_id UUID NOT NULL REFERENCES departments(id) ON DELETE CASCADE,
			staff_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE,
			PRIMARY KEY (department_id, staff_id)
		)`,

		`CREATE TABLE IF NOT EXISTS asset_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS assets (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL,
			condition VARCHAR(10) NOT NULL,
			acquired_on DATE NOT NULL,
			type_id UUID NOT NULL REFERENCES asset_types(id) ON DELETE CASCADE,
			department_id UUID NOT NULL REFERENCES departments(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS damage_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			note VARCHAR(100),
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			opened_on DATE NOT NULL DEFAULT CURRENT_DATE,
			closed_on DATE,
			asset_id UUID NOT NULL REFERENCES assets(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS leave_requests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			document VARCHAR(200) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			staff_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS memos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			note VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			staff_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS staff_attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			hours INTEGER NOT NULL,
			staff_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			is_homeroom BOOLEAN NOT NULL DEFAULT FALSE,
			teacher_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS units (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			description VARCHAR(100) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS schedule_slots (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			day VARCHAR(10) NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS guardians (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			national_id VARCHAR(8) NOT NULL,
			name VARCHAR(50) NOT NULL,
			phone VARCHAR(12) NOT NULL,
			address VARCHAR(100) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			national_id VARCHAR(8) NOT NULL,
			name VARCHAR(50) NOT NULL,
			phone VARCHAR(12) NOT NULL,
			address VARCHAR(100) NOT NULL,
			email VARCHAR(50),
			birth_date DATE NOT NULL,
			photo_path VARCHAR(200),
			guardian_id UUID NOT NULL REFERENCES guardians(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS student_attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			enrollment_id UUID NOT NULL REFERENCES enrollments(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS grade_definitions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL,
			max_score INTEGER NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS grade_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			score INTEGER NOT NULL,
			date DATE NOT NULL,
			enrollment_id UUID NOT NULL REFERENCES enrollments(id) ON DELETE CASCADE,
			definition_id UUID NOT NULL REFERENCES grade_definitions(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS request_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL,
			cost INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS student_requests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			reference INTEGER NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			type_id UUID NOT NULL REFERENCES request_types(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS loans (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			note VARCHAR(100) NOT NULL,
			book_id UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			description VARCHAR(100) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS activity_staff (
			activity_id UUID NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
			staff_id UUID NOT NULL REFERENCES staff_members(id) ON DELETE CASCADE,
			PRIMARY KEY (activity_id, staff_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_assets_department ON assets(department_id)`,
		`CREATE INDEX IF NOT EXISTS idx_damage_reports_asset ON damage_reports(asset_id)`,
		`CREATE INDEX IF NOT EXISTS idx_leave_requests_staff ON leave_requests(staff_id)`,
		`CREATE INDEX IF NOT EXISTS idx_subjects_teacher ON subjects(teacher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_enrollments_subject ON enrollments(subject_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
