package attendance

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

type staffAttendanceRequest struct {
	Date    string `json:"date" validate:"required"`
	Hours   int    `json:"hours" validate:"required,min=1"`
	StaffID string `json:"staff_id" validate:"required,uuid"`
}

func (r *staffAttendanceRequest) toModel() (*models.StaffAttendance, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &models.StaffAttendance{Date: date, Hours: r.Hours, StaffID: r.StaffID}, nil
}

func ListStaffAttendanceAPI(c *fiber.Ctx) error {
	records, err := database.ListStaffAttendance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"attendance": records, "count": len(records)})
}

func CreateStaffAttendanceAPI(c *fiber.Ctx) error {
	var req staffAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	a, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateStaffAttendance(config.GetDB(), a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create attendance record"})
	}
	return c.Status(201).JSON(a)
}

func UpdateStaffAttendanceAPI(c *fiber.Ctx) error {
	var req staffAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	a, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	a.ID = c.Params("id")

	if err := database.UpdateStaffAttendance(config.GetDB(), a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance record"})
	}
	return c.JSON(a)
}

func DeleteStaffAttendanceAPI(c *fiber.Ctx) error {
	if err := database.DeleteStaffAttendance(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	return c.JSON(fiber.Map{"message": "Attendance record deleted"})
}

type studentAttendanceRequest struct {
	Date         string `json:"date" validate:"required"`
	EnrollmentID string `json:"enrollment_id" validate:"required,uuid"`
}

func (r *studentAttendanceRequest) toModel() (*models.StudentAttendance, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &models.StudentAttendance{Date: date, EnrollmentID: r.EnrollmentID}, nil
}

// teacherEnrollments gathers every enrollment in the calling teacher's
// subjects, deduplicated across subjects.
func teacherEnrollments(c *fiber.Ctx, db *sql.DB) ([]*models.Enrollment, error) {
	staff, err := database.GetStaffByNationalID(db, auth.CallerUsername(c))
	if err != nil {
		return nil, err
	}
	subjects, err := database.ListSubjectsByTeacher(db, staff.ID)
	if err != nil {
		return nil, err
	}

	lists := make([][]*models.Enrollment, 0, len(subjects))
	for _, sj := range subjects {
		enrollments, err := database.ListEnrollmentsBySubject(db, sj.ID)
		if err != nil {
			return nil, err
		}
		lists = append(lists, enrollments)
	}
	return services.DedupeEnrollments(lists...), nil
}

func enrollmentInScope(enrollments []*models.Enrollment, id string) bool {
	for _, e := range enrollments {
		if e.ID == id {
			return true
		}
	}
	return false
}

func ListStudentAttendanceAPI(c *fiber.Ctx) error {
	records, err := database.ListStudentAttendance(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(fiber.Map{"attendance": records, "count": len(records)})
}

// ListMarkableEnrollmentsAPI returns the enrollment choices offered to
// the calling teacher when marking attendance or grades.
func ListMarkableEnrollmentsAPI(c *fiber.Ctx) error {
	enrollments, err := teacherEnrollments(c, config.GetDB())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No staff record for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"enrollments": enrollments, "count": len(enrollments)})
}

// CreateStudentAttendanceAPI marks an absence. The enrollment must
// belong to one of the calling teacher's subjects.
func CreateStudentAttendanceAPI(c *fiber.Ctx) error {
	var req studentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	a, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	enrollments, err := teacherEnrollments(c, db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No staff record for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !enrollmentInScope(enrollments, a.EnrollmentID) {
		return c.Status(403).JSON(fiber.Map{"error": "Enrollment is outside your subjects"})
	}

	if err := database.CreateStudentAttendance(db, a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create attendance record"})
	}
	return c.Status(201).JSON(a)
}

func UpdateStudentAttendanceAPI(c *fiber.Ctx) error {
	var req studentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	a, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	a.ID = c.Params("id")

	db := config.GetDB()
	enrollments, err := teacherEnrollments(c, db)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "No staff record for caller"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !enrollmentInScope(enrollments, a.EnrollmentID) {
		return c.Status(403).JSON(fiber.Map{"error": "Enrollment is outside your subjects"})
	}

	if err := database.UpdateStudentAttendance(db, a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance record"})
	}
	return c.JSON(a)
}

func DeleteStudentAttendanceAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudentAttendance(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	return c.JSON(fiber.Map{"message": "Attendance record deleted"})
}
