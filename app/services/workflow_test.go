package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicorai90/lca/app/models"
)

func pendingReport(assetID string) *models.DamageReport {
	return &models.DamageReport{
		ID:       "r1",
		AssetID:  assetID,
		Status:   models.StatusPending,
		OpenedOn: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func activeAsset(id string) *models.Asset {
	return &models.Asset{ID: id, Name: "Projector", Condition: models.AssetActive}
}

func TestResolveDamageReportAccept(t *testing.T) {
	report := pendingReport("a1")
	asset := activeAsset("a1")
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	res, err := ResolveDamageReport(report, asset, models.StatusAccepted, nil, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAccepted, report.Status)
	require.NotNil(t, report.ClosedOn)
	assert.Equal(t, now, *report.ClosedOn)

	require.NotNil(t, res.Asset)
	assert.Equal(t, models.AssetDamaged, res.Asset.Condition)
}

func TestResolveDamageReportReject(t *testing.T) {
	report := pendingReport("a1")
	asset := activeAsset("a1")
	now := time.Now()

	res, err := ResolveDamageReport(report, asset, models.StatusRejected, nil, now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, report.Status)
	require.NotNil(t, report.ClosedOn)

	// A rejection never touches the asset.
	assert.Nil(t, res.Asset)
	assert.Equal(t, models.AssetActive, asset.Condition)
}

func TestResolveDamageReportTerminalIsImmutable(t *testing.T) {
	for _, status := range []models.ReviewStatus{models.StatusAccepted, models.StatusRejected} {
		report := pendingReport("a1")
		report.Status = status
		closed := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		report.ClosedOn = &closed

		_, err := ResolveDamageReport(report, activeAsset("a1"), models.StatusAccepted, nil, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, status, report.Status)
		assert.Equal(t, closed, *report.ClosedOn)
	}
}

func TestResolveDamageReportInvalidDecision(t *testing.T) {
	_, err := ResolveDamageReport(pendingReport("a1"), activeAsset("a1"), models.StatusPending, nil, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveDamageReportAssetMismatch(t *testing.T) {
	_, err := ResolveDamageReport(pendingReport("a1"), activeAsset("a2"), models.StatusAccepted, nil, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveDamageReport(pendingReport("a1"), nil, models.StatusAccepted, nil, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDamageReportNote(t *testing.T) {
	report := pendingReport("a1")
	note := "screen cracked beyond repair"

	_, err := ResolveDamageReport(report, activeAsset("a1"), models.StatusAccepted, &note, time.Now())
	require.NoError(t, err)
	require.NotNil(t, report.Note)
	assert.Equal(t, note, *report.Note)
}

func leaveDates() (time.Time, time.Time) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 3)
}

func TestPrepareLeaveRequestSecretaryAutoAccepts(t *testing.T) {
	start, end := leaveDates()
	// The submitted status is overridden no matter what it claims.
	req := &models.LeaveRequest{StartDate: start, EndDate: end, Document: "doc.pdf", StaffID: "s1", Status: models.StatusPending}

	err := PrepareLeaveRequest(models.RoleSecretary, nil, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, req.Status)
	assert.Equal(t, "s1", req.StaffID)
}

func TestPrepareLeaveRequestSecretaryNeedsStaff(t *testing.T) {
	start, end := leaveDates()
	req := &models.LeaveRequest{StartDate: start, EndDate: end, Document: "doc.pdf"}

	err := PrepareLeaveRequest(models.RoleSecretary, nil, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPrepareLeaveRequestSelfFileBindsCaller(t *testing.T) {
	caller := &models.StaffMember{ID: "me", Position: models.PositionTeacher}
	start, end := leaveDates()

	for _, role := range []models.Role{models.RoleAdministrative, models.RoleTeacher, models.RoleLaborer} {
		// A submitted staff FK is ignored for self-filed requests.
		req := &models.LeaveRequest{StartDate: start, EndDate: end, Document: "doc.pdf", StaffID: "someone-else"}

		err := PrepareLeaveRequest(role, caller, req)
		require.NoError(t, err)
		assert.Equal(t, "me", req.StaffID)
		assert.Equal(t, models.StatusPending, req.Status)
	}
}

func TestPrepareLeaveRequestStudentForbidden(t *testing.T) {
	start, end := leaveDates()
	req := &models.LeaveRequest{StartDate: start, EndDate: end, Document: "doc.pdf"}

	err := PrepareLeaveRequest(models.RoleStudent, nil, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPrepareLeaveRequestMissingStaffRecord(t *testing.T) {
	start, end := leaveDates()
	req := &models.LeaveRequest{StartDate: start, EndDate: end, Document: "doc.pdf"}

	err := PrepareLeaveRequest(models.RoleTeacher, nil, req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrepareLeaveRequestBackwardDates(t *testing.T) {
	start, end := leaveDates()
	req := &models.LeaveRequest{StartDate: end, EndDate: start, Document: "doc.pdf", StaffID: "s1"}

	err := PrepareLeaveRequest(models.RoleSecretary, nil, req)
	assert.ErrorIs(t, err, ErrValidation)
}
