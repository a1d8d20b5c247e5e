package students

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/services"
)

type studentRequest struct {
	NationalID string  `json:"national_id" validate:"required,max=8"`
	Name       string  `json:"name" validate:"required,max=50"`
	Phone      string  `json:"phone" validate:"required,max=12"`
	Address    string  `json:"address" validate:"required,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	BirthDate  string  `json:"birth_date" validate:"required"`
	GuardianID string  `json:"guardian_id" validate:"required,uuid"`
	PhotoPath  *string `json:"photo_path"`
}

func (r *studentRequest) toModel() (*models.Student, error) {
	birthDate, err := models.ParseDate(r.BirthDate)
	if err != nil {
		return nil, errors.New("invalid birth date")
	}
	return &models.Student{
		NationalID: r.NationalID,
		Name:       r.Name,
		Phone:      r.Phone,
		Address:    r.Address,
		Email:      r.Email,
		BirthDate:  birthDate,
		GuardianID: r.GuardianID,
		PhotoPath:  r.PhotoPath,
	}, nil
}

func ListStudentsAPI(c *fiber.Ctx) error {
	students, err := database.ListStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func GetStudentAPI(c *fiber.Ctx) error {
	st, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(st)
}

// CreateStudentAPI provisions the login identity (student role) and
// inserts the record in one transaction.
func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	st, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	taken, err := database.UsernameTaken(db, st.NationalID, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if taken {
		return c.Status(409).JSON(fiber.Map{"error": "This national ID is already registered"})
	}

	user := services.NewStudentIdentity(st)
	if err := database.CreateStudentWithIdentity(db, st, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(st)
}

// UpdateStudentAPI persists an edit with an optional identity rename;
// a username collision aborts the whole update.
func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	st, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	edited, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	edited.ID = st.ID
	edited.UserID = st.UserID

	taken, err := database.UsernameTaken(db, edited.NationalID, st.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	rename, err := services.PlanRename(st.NationalID, edited.NationalID, taken)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStudentWithIdentity(db, edited, rename); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(edited)
}
