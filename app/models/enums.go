package models

// Role defines the single role bound to a login identity. A principal
// holds exactly one role, resolved at login and carried in the token.
type Role string

const (
	RoleSecretary      Role = "secretary"
	RoleAdministrative Role = "administrative"
	RoleLaborer        Role = "laborer"
	RoleTeacher        Role = "teacher"
	RoleStudent        Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSecretary, RoleAdministrative, RoleLaborer, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// Position defines the job of a staff member. Secretaries are not staff
// records; their identities are provisioned out-of-band.
type Position string

const (
	PositionAdministrative Position = "administrative"
	PositionLaborer        Position = "laborer"
	PositionTeacher        Position = "teacher"
)

func (p Position) Valid() bool {
	switch p {
	case PositionAdministrative, PositionLaborer, PositionTeacher:
		return true
	}
	return false
}

// RoleForPosition maps a staff position onto the identity role of the
// matching name.
func RoleForPosition(p Position) Role {
	return Role(p)
}

// AssetCondition defines the possible condition values for an asset.
type AssetCondition string

const (
	AssetActive  AssetCondition = "active"
	AssetDamaged AssetCondition = "damaged"
)

// ReviewStatus is shared by damage reports and leave requests.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusAccepted ReviewStatus = "accepted"
	StatusRejected ReviewStatus = "rejected"
)

// Weekday defines the school days a schedule slot may fall on.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}
