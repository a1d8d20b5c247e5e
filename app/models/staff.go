package models

import "time"

// StaffMember is a personnel record. Staff are never hard-deleted: a
// set EndDate marks the member inactive while preserving attendance,
// memo and report history.
type StaffMember struct {
	ID          string     `json:"id" validate:"omitempty,uuid"`
	NationalID  string     `json:"national_id" validate:"required,max=8"`
	Name        string     `json:"name" validate:"required,max=50"`
	Phone       string     `json:"phone" validate:"required,max=12"`
	Address     string     `json:"address" validate:"required,max=100"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	Position    Position   `json:"position" validate:"required,oneof=administrative laborer teacher"`
	WeeklyHours *int       `json:"weekly_hours,omitempty" validate:"omitempty,min=1"`
	Salary      int        `json:"salary" validate:"required,min=0"`
	BirthDate   time.Time  `json:"birth_date" validate:"required"`
	HireDate    time.Time  `json:"hire_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	PhotoPath   *string    `json:"photo_path,omitempty"`
	UserID      string     `json:"user_id"`
	User        *User      `json:"user,omitempty"`
}

// Active reports whether the member is currently employed.
func (s *StaffMember) Active() bool {
	return s.EndDate == nil
}

// Memo is a disciplinary or informational note addressed to a staff
// member.
type Memo struct {
	ID      string       `json:"id"`
	Note    string       `json:"note" validate:"required,max=100"`
	Date    time.Time    `json:"date" validate:"required"`
	StaffID string       `json:"staff_id" validate:"required,uuid"`
	Staff   *StaffMember `json:"staff,omitempty"`
}

// StaffAttendance records hours worked by a staff member on a date.
type StaffAttendance struct {
	ID      string       `json:"id"`
	Date    time.Time    `json:"date" validate:"required"`
	Hours   int          `json:"hours" validate:"required,min=1"`
	StaffID string       `json:"staff_id" validate:"required,uuid"`
	Staff   *StaffMember `json:"staff,omitempty"`
}

// LeaveRequest is a permission-to-be-absent request for a staff member.
// Requests filed by a secretary on someone's behalf are accepted at
// creation; self-filed requests start pending.
type LeaveRequest struct {
	ID        string       `json:"id"`
	StartDate time.Time    `json:"start_date" validate:"required"`
	EndDate   time.Time    `json:"end_date" validate:"required"`
	Document  string       `json:"document" validate:"required"`
	Status    ReviewStatus `json:"status"`
	StaffID   string       `json:"staff_id"`
	Staff     *StaffMember `json:"staff,omitempty"`
}

// Activity is a school event with staff participants.
type Activity struct {
	ID           string         `json:"id"`
	Date         time.Time      `json:"date" validate:"required"`
	Description  string         `json:"description" validate:"required,max=100"`
	Participants []*StaffMember `json:"participants,omitempty"`
}
