package services

import (
	"fmt"

	"github.com/musicorai90/lca/app/models"
)

// NewStaffIdentity builds the login identity provisioned alongside a
// new staff record. Validation runs first: a teacher without weekly
// hours is rejected before any identity exists. Username and initial
// password both equal the national ID.
func NewStaffIdentity(s *models.StaffMember) (*models.User, error) {
	if err := ValidateStaff(s); err != nil {
		return nil, err
	}
	email := ""
	if s.Email != nil {
		email = *s.Email
	}
	return &models.User{
		Username: s.NationalID,
		Password: s.NationalID,
		Email:    email,
		Role:     models.RoleForPosition(s.Position),
	}, nil
}

// NewStudentIdentity builds the identity for a new student, bound to
// the fixed student role.
func NewStudentIdentity(st *models.Student) *models.User {
	email := ""
	if st.Email != nil {
		email = *st.Email
	}
	return &models.User{
		Username: st.NationalID,
		Password: st.NationalID,
		Email:    email,
		Role:     models.RoleStudent,
	}
}

// ValidateStaff enforces the conditional-field rules on a staff record
// and normalizes it: teachers must carry weekly hours; any other
// position has them cleared.
func ValidateStaff(s *models.StaffMember) error {
	if !s.Position.Valid() {
		return fmt.Errorf("%w: unknown position %q", ErrValidation, s.Position)
	}
	if s.Position == models.PositionTeacher {
		if s.WeeklyHours == nil {
			return fmt.Errorf("%w: teachers must have weekly hours assigned", ErrValidation)
		}
	} else {
		s.WeeklyHours = nil
	}
	return nil
}

// PlanRename decides whether editing a person requires renaming the
// linked identity. An unchanged national ID is a no-op; a changed ID
// whose value is already taken by another identity aborts the whole
// update with a conflict.
func PlanRename(currentUsername, newNationalID string, usernameTaken bool) (bool, error) {
	if newNationalID == currentUsername {
		return false, nil
	}
	if usernameTaken {
		return false, fmt.Errorf("%w: this national ID is already registered", ErrConflict)
	}
	return true, nil
}
