package models

import "time"

// Subject is a course taught by one staff member. The homeroom flag
// marks the teacher's advisory subject.
type Subject struct {
	ID         string       `json:"id"`
	Name       string       `json:"name" validate:"required,max=100"`
	IsHomeroom bool         `json:"is_homeroom"`
	TeacherID  string       `json:"teacher_id" validate:"required,uuid"`
	Teacher    *StaffMember `json:"teacher,omitempty"`
}

// Unit is a syllabus block within a subject's term plan.
type Unit struct {
	ID          string    `json:"id"`
	Description string    `json:"description" validate:"required,max=100"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	SubjectID   string    `json:"subject_id" validate:"required,uuid"`
	Subject     *Subject  `json:"subject,omitempty"`
}

// ScheduleSlot places a subject on the weekly timetable. Times are
// wall-clock values in "15:04" form.
type ScheduleSlot struct {
	ID        string   `json:"id"`
	Day       Weekday  `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
	SubjectID string   `json:"subject_id" validate:"required,uuid"`
	Subject   *Subject `json:"subject,omitempty"`
}

// Enrollment links a student to a subject. Attendance and grades hang
// off this junction rather than off the student directly.
type Enrollment struct {
	ID        string   `json:"id"`
	SubjectID string   `json:"subject_id" validate:"required,uuid"`
	StudentID string   `json:"student_id" validate:"required,uuid"`
	Subject   *Subject `json:"subject,omitempty"`
	Student   *Student `json:"student,omitempty"`
}

type StudentAttendance struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date" validate:"required"`
	EnrollmentID string      `json:"enrollment_id" validate:"required,uuid"`
	Enrollment   *Enrollment `json:"enrollment,omitempty"`
}

// GradeDefinition is a school-wide evaluation catalog entry. It is not
// scoped to a subject.
type GradeDefinition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=50"`
	MaxScore  int       `json:"max_score" validate:"required,min=1"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type GradeRecord struct {
	ID           string           `json:"id"`
	Score        int              `json:"score" validate:"min=0"`
	Date         time.Time        `json:"date" validate:"required"`
	EnrollmentID string           `json:"enrollment_id" validate:"required,uuid"`
	DefinitionID string           `json:"definition_id" validate:"required,uuid"`
	Enrollment   *Enrollment      `json:"enrollment,omitempty"`
	Definition   *GradeDefinition `json:"definition,omitempty"`
}
