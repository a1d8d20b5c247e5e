package models

import "time"

// Department groups staff; assets also belong to a department, which is
// what scopes a teacher's damage-report choices.
type Department struct {
	ID      string         `json:"id"`
	Name    string         `json:"name" validate:"required,max=50"`
	Members []*StaffMember `json:"members,omitempty"`
}

// AssetType is the taxonomy entry an asset is classified under.
type AssetType struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

type Asset struct {
	ID           string         `json:"id"`
	Name         string         `json:"name" validate:"required,max=50"`
	Condition    AssetCondition `json:"condition" validate:"required,oneof=active damaged"`
	AcquiredOn   time.Time      `json:"acquired_on" validate:"required"`
	TypeID       string         `json:"type_id" validate:"required,uuid"`
	DepartmentID string         `json:"department_id" validate:"required,uuid"`
	Type         *AssetType     `json:"type,omitempty"`
	Department   *Department    `json:"department,omitempty"`
}

// DamageReport tracks a reported asset fault from filing to resolution.
// ClosedOn is set exactly when the status leaves pending; an accepted
// report marks the asset damaged in the same transaction.
type DamageReport struct {
	ID       string       `json:"id"`
	Note     *string      `json:"note,omitempty" validate:"omitempty,max=100"`
	Status   ReviewStatus `json:"status"`
	OpenedOn time.Time    `json:"opened_on"`
	ClosedOn *time.Time   `json:"closed_on,omitempty"`
	AssetID  string       `json:"asset_id" validate:"required,uuid"`
	Asset    *Asset       `json:"asset,omitempty"`
}

// Resolved reports whether the report reached a terminal status.
func (r *DamageReport) Resolved() bool {
	return r.Status != StatusPending
}
