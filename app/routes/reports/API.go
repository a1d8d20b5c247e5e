package reports

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
	"github.com/musicorai90/lca/app/services"
)

func ListReportsAPI(c *fiber.Ctx) error {
	reports, err := database.ListDamageReports(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reports"})
	}
	return c.JSON(fiber.Map{"reports": reports, "count": len(reports)})
}

func GetReportAPI(c *fiber.Ctx) error {
	r, err := database.GetDamageReportByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(r)
}

// callerDepartment resolves the calling teacher's department through
// their staff record, looked up by the token username (national ID).
func callerDepartment(c *fiber.Ctx, db *sql.DB) (*models.Department, error) {
	staff, err := database.GetStaffByNationalID(db, auth.CallerUsername(c))
	if err != nil {
		return nil, err
	}
	return database.GetDepartmentOfStaff(db, staff.ID)
}

// ListReportableAssetsAPI returns the asset choices offered to the
// reporting teacher: only assets of the teacher's own department.
func ListReportableAssetsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	dept, err := callerDepartment(c, db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No department found for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	assets, err := database.ListAssetsByDepartment(db, dept.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assets"})
	}
	return c.JSON(fiber.Map{"assets": assets, "count": len(assets)})
}

// CreateReportAPI files a damage report. The asset must belong to the
// calling teacher's department; the report opens pending as of today.
func CreateReportAPI(c *fiber.Ctx) error {
	type createRequest struct {
		AssetID string  `json:"asset_id" validate:"required,uuid"`
		Note    *string `json:"note" validate:"omitempty,max=100"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	dept, err := callerDepartment(c, db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No department found for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	asset, err := database.GetAssetByID(db, req.AssetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if asset.DepartmentID != dept.ID {
		return c.Status(403).JSON(fiber.Map{"error": "Asset is outside your department"})
	}

	r := &models.DamageReport{AssetID: req.AssetID, Note: req.Note}
	if err := database.CreateDamageReport(db, r); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create report"})
	}
	return c.Status(201).JSON(r)
}

// ResolveReportAPI runs the resolution workflow: the report moves to a
// terminal status with its close date, and an accepted decision marks
// the asset damaged; both writes share one transaction.
func ResolveReportAPI(c *fiber.Ctx) error {
	type resolveRequest struct {
		Decision string  `json:"decision" validate:"required,oneof=accepted rejected"`
		Note     *string `json:"note" validate:"omitempty,max=100"`
	}

	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	report, err := database.GetDamageReportByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	asset, err := database.GetAssetByID(db, report.AssetID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	resolution, err := services.ResolveDamageReport(report, asset, models.ReviewStatus(req.Decision), req.Note, time.Now())
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.ApplyDamageResolution(db, resolution); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve report"})
	}
	return c.JSON(fiber.Map{
		"report": resolution.Report,
		"asset":  resolution.Asset,
	})
}
