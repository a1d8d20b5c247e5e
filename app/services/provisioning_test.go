package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicorai90/lca/app/models"
)

func intPtr(v int) *int { return &v }

func TestNewStaffIdentityTeacherWithoutHours(t *testing.T) {
	s := &models.StaffMember{NationalID: "12345678", Position: models.PositionTeacher}

	user, err := NewStaffIdentity(s)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, user)
}

func TestNewStaffIdentityUsernameEqualsNationalID(t *testing.T) {
	email := "ana@example.com"
	s := &models.StaffMember{
		NationalID:  "12345678",
		Email:       &email,
		Position:    models.PositionTeacher,
		WeeklyHours: intPtr(20),
	}

	user, err := NewStaffIdentity(s)
	require.NoError(t, err)

	assert.Equal(t, "12345678", user.Username)
	assert.Equal(t, "12345678", user.Password)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

func TestNewStaffIdentityRoleFollowsPosition(t *testing.T) {
	cases := map[models.Position]models.Role{
		models.PositionAdministrative: models.RoleAdministrative,
		models.PositionLaborer:        models.RoleLaborer,
	}
	for position, role := range cases {
		s := &models.StaffMember{NationalID: "11111111", Position: position}
		user, err := NewStaffIdentity(s)
		require.NoError(t, err)
		assert.Equal(t, role, user.Role)
	}
}

func TestNewStudentIdentity(t *testing.T) {
	st := &models.Student{NationalID: "87654321"}

	user := NewStudentIdentity(st)
	assert.Equal(t, "87654321", user.Username)
	assert.Equal(t, "87654321", user.Password)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestValidateStaffClearsHoursForNonTeachers(t *testing.T) {
	s := &models.StaffMember{
		NationalID:  "12345678",
		Position:    models.PositionLaborer,
		WeeklyHours: intPtr(10),
	}

	require.NoError(t, ValidateStaff(s))
	assert.Nil(t, s.WeeklyHours)
}

func TestValidateStaffUnknownPosition(t *testing.T) {
	s := &models.StaffMember{NationalID: "12345678", Position: "janitor"}
	assert.ErrorIs(t, ValidateStaff(s), ErrValidation)
}

func TestPlanRenameUnchangedIDIsNoop(t *testing.T) {
	rename, err := PlanRename("12345678", "12345678", false)
	require.NoError(t, err)
	assert.False(t, rename)

	// An unchanged ID never conflicts, even with itself in the table.
	rename, err = PlanRename("12345678", "12345678", true)
	require.NoError(t, err)
	assert.False(t, rename)
}

func TestPlanRenameChangedID(t *testing.T) {
	rename, err := PlanRename("12345678", "99999999", false)
	require.NoError(t, err)
	assert.True(t, rename)
}

func TestPlanRenameConflictAborts(t *testing.T) {
	_, err := PlanRename("12345678", "99999999", true)
	assert.ErrorIs(t, err, ErrConflict)
}
