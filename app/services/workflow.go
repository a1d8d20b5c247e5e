package services

import (
	"fmt"
	"time"

	"github.com/musicorai90/lca/app/models"
)

// DamageResolution describes every entity mutated by resolving a damage
// report. Asset is non-nil only when the asset's condition changed.
type DamageResolution struct {
	Report *models.DamageReport
	Asset  *models.Asset
}

// ResolveDamageReport applies a resolution decision to a pending report.
// The report moves to a terminal status and gets its close date; an
// accepted report additionally marks the asset damaged. Terminal
// reports reject any further transition. The caller persists the
// returned entities in one transaction.
func ResolveDamageReport(report *models.DamageReport, asset *models.Asset, decision models.ReviewStatus, note *string, now time.Time) (*DamageResolution, error) {
	if report.Resolved() {
		return nil, fmt.Errorf("%w: report already %s", ErrValidation, report.Status)
	}
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return nil, fmt.Errorf("%w: decision must be accepted or rejected", ErrValidation)
	}
	if asset == nil || asset.ID != report.AssetID {
		return nil, fmt.Errorf("%w: asset for report", ErrNotFound)
	}

	report.Status = decision
	report.ClosedOn = &now
	if note != nil {
		report.Note = note
	}

	res := &DamageResolution{Report: report}
	if decision == models.StatusAccepted {
		asset.Condition = models.AssetDamaged
		res.Asset = asset
	}
	return res, nil
}

// PrepareLeaveRequest applies the creation-path rules to a leave
// request before it is persisted. A secretary files on behalf of the
// staff member named in the request, which is auto-accepted. Any other
// staff role files for itself: the request is bound to the caller's own
// record regardless of what was submitted, and stays pending.
func PrepareLeaveRequest(callerRole models.Role, callerStaff *models.StaffMember, req *models.LeaveRequest) error {
	switch callerRole {
	case models.RoleSecretary:
		if req.StaffID == "" {
			return fmt.Errorf("%w: staff member is required", ErrValidation)
		}
		req.Status = models.StatusAccepted
	case models.RoleAdministrative, models.RoleTeacher, models.RoleLaborer:
		if callerStaff == nil {
			return fmt.Errorf("%w: no staff record for caller", ErrNotFound)
		}
		req.StaffID = callerStaff.ID
		req.Staff = callerStaff
		req.Status = models.StatusPending
	default:
		return fmt.Errorf("%w: role %q may not file leave requests", ErrForbidden, callerRole)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrValidation)
	}
	return nil
}
