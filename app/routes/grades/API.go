package grades

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
	"github.com/musicorai90/lca/app/services"
)

type definitionRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	MaxScore  int    `json:"max_score" validate:"required,min=1"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (r *definitionRequest) toModel() (*models.GradeDefinition, error) {
	start, err := models.ParseDate(r.StartDate)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	end, err := models.ParseDate(r.EndDate)
	if err != nil {
		return nil, errors.New("invalid end date")
	}
	if end.Before(start) {
		return nil, errors.New("end date before start date")
	}
	return &models.GradeDefinition{
		Name:      r.Name,
		MaxScore:  r.MaxScore,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func ListGradeDefinitionsAPI(c *fiber.Ctx) error {
	defs, err := database.ListGradeDefinitions(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade definitions"})
	}
	return c.JSON(fiber.Map{"definitions": defs, "count": len(defs)})
}

func GetGradeDefinitionAPI(c *fiber.Ctx) error {
	d, err := database.GetGradeDefinitionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade definition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(d)
}

func CreateGradeDefinitionAPI(c *fiber.Ctx) error {
	var req definitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	d, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateGradeDefinition(config.GetDB(), d); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grade definition"})
	}
	return c.Status(201).JSON(d)
}

func UpdateGradeDefinitionAPI(c *fiber.Ctx) error {
	var req definitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	d, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	d.ID = c.Params("id")

	if err := database.UpdateGradeDefinition(config.GetDB(), d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade definition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grade definition"})
	}
	return c.JSON(d)
}

func DeleteGradeDefinitionAPI(c *fiber.Ctx) error {
	if err := database.DeleteGradeDefinition(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade definition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grade definition"})
	}
	return c.JSON(fiber.Map{"message": "Grade definition deleted"})
}

type recordRequest struct {
	Score        int    `json:"score" validate:"min=0"`
	Date         string `json:"date" validate:"required"`
	EnrollmentID string `json:"enrollment_id" validate:"required,uuid"`
	DefinitionID string `json:"definition_id" validate:"required,uuid"`
}

func (r *recordRequest) toModel() (*models.GradeRecord, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &models.GradeRecord{
		Score:        r.Score,
		Date:         date,
		EnrollmentID: r.EnrollmentID,
		DefinitionID: r.DefinitionID,
	}, nil
}

// gradableEnrollment reports whether the enrollment belongs to one of
// the calling teacher's subjects.
func gradableEnrollment(c *fiber.Ctx, db *sql.DB, enrollmentID string) (bool, error) {
	staff, err := database.GetStaffByNationalID(db, auth.CallerUsername(c))
	if err != nil {
		return false, err
	}
	subjects, err := database.ListSubjectsByTeacher(db, staff.ID)
	if err != nil {
		return false, err
	}

	lists := make([][]*models.Enrollment, 0, len(subjects))
	for _, sj := range subjects {
		enrollments, err := database.ListEnrollmentsBySubject(db, sj.ID)
		if err != nil {
			return false, err
		}
		lists = append(lists, enrollments)
	}
	for _, e := range services.DedupeEnrollments(lists...) {
		if e.ID == enrollmentID {
			return true, nil
		}
	}
	return false, nil
}

func ListGradeRecordsAPI(c *fiber.Ctx) error {
	records, err := database.ListGradeRecords(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grade records"})
	}
	return c.JSON(fiber.Map{"records": records, "count": len(records)})
}

// CreateGradeRecordAPI scores an evaluation for one enrollment. The
// score may not exceed the definition's maximum, and the enrollment
// must belong to the calling teacher's subjects.
func CreateGradeRecordAPI(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	g, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	def, err := database.GetGradeDefinitionByID(db, g.DefinitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade definition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if g.Score > def.MaxScore {
		return c.Status(400).JSON(fiber.Map{"error": "Score exceeds the definition maximum"})
	}

	ok, err := gradableEnrollment(c, db, g.EnrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No staff record for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !ok {
		return c.Status(403).JSON(fiber.Map{"error": "Enrollment is outside your subjects"})
	}

	if err := database.CreateGradeRecord(db, g); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grade record"})
	}
	return c.Status(201).JSON(g)
}

func UpdateGradeRecordAPI(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	g, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	g.ID = c.Params("id")

	db := config.GetDB()
	def, err := database.GetGradeDefinitionByID(db, g.DefinitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade definition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if g.Score > def.MaxScore {
		return c.Status(400).JSON(fiber.Map{"error": "Score exceeds the definition maximum"})
	}

	ok, err := gradableEnrollment(c, db, g.EnrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No staff record for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !ok {
		return c.Status(403).JSON(fiber.Map{"error": "Enrollment is outside your subjects"})
	}

	if err := database.UpdateGradeRecord(db, g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update grade record"})
	}
	return c.JSON(g)
}

func DeleteGradeRecordAPI(c *fiber.Ctx) error {
	if err := database.DeleteGradeRecord(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Grade record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grade record"})
	}
	return c.JSON(fiber.Map{"message": "Grade record deleted"})
}
