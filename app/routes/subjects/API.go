package subjects

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

func ListSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.ListSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	sj, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(sj)
}

// CreateSubjectAPI inserts a subject. The teacher FK must reference a
// staff member in the teacher position.
func CreateSubjectAPI(c *fiber.Ctx) error {
	var sj models.Subject
	if err := c.BodyParser(&sj); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&sj); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	teacher, err := database.GetStaffByID(db, sj.TeacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if teacher.Position != models.PositionTeacher {
		return c.Status(400).JSON(fiber.Map{"error": "Assigned staff member is not a teacher"})
	}

	if err := database.CreateSubject(db, &sj); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(sj)
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	var sj models.Subject
	if err := c.BodyParser(&sj); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&sj); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	sj.ID = c.Params("id")

	db := config.GetDB()
	teacher, err := database.GetStaffByID(db, sj.TeacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if teacher.Position != models.PositionTeacher {
		return c.Status(400).JSON(fiber.Map{"error": "Assigned staff member is not a teacher"})
	}

	if err := database.UpdateSubject(db, &sj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(sj)
}

type unitRequest struct {
	Description string `json:"description" validate:"required,max=100"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	SubjectID   string `json:"subject_id" validate:"required,uuid"`
}

func (r *unitRequest) toModel() (*models.Unit, error) {
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
	return &models.Unit{
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		SubjectID:   r.SubjectID,
	}, nil
}

func ListUnitsAPI(c *fiber.Ctx) error {
	units, err := database.ListUnits(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}
	return c.JSON(fiber.Map{"units": units, "count": len(units)})
}

func CreateUnitAPI(c *fiber.Ctx) error {
	var req unitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	u, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateUnit(config.GetDB(), u); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create unit"})
	}
	return c.Status(201).JSON(u)
}

func UpdateUnitAPI(c *fiber.Ctx) error {
	var req unitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	u, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	u.ID = c.Params("id")

	if err := database.UpdateUnit(config.GetDB(), u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update unit"})
	}
	return c.JSON(u)
}

func DeleteUnitAPI(c *fiber.Ctx) error {
	if err := database.DeleteUnit(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Unit not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete unit"})
	}
	return c.JSON(fiber.Map{"message": "Unit deleted"})
}

func ListScheduleAPI(c *fiber.Ctx) error {
	slots, err := database.ListScheduleSlots(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}
	return c.JSON(fiber.Map{"slots": slots, "count": len(slots)})
}

func CreateScheduleSlotAPI(c *fiber.Ctx) error {
	var slot models.ScheduleSlot
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&slot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateScheduleSlot(config.GetDB(), &slot); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule slot"})
	}
	return c.Status(201).JSON(slot)
}

func UpdateScheduleSlotAPI(c *fiber.Ctx) error {
	var slot models.ScheduleSlot
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&slot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	slot.ID = c.Params("id")

	if err := database.UpdateScheduleSlot(config.GetDB(), &slot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule slot not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule slot"})
	}
	return c.JSON(slot)
}

func DeleteScheduleSlotAPI(c *fiber.Ctx) error {
	if err := database.DeleteScheduleSlot(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Schedule slot not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule slot"})
	}
	return c.JSON(fiber.Map{"message": "Schedule slot deleted"})
}
