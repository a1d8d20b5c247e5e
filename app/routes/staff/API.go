package staff

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/services"
)

type staffRequest struct {
	NationalID  string  `json:"national_id" validate:"required,max=8"`
	Name        string  `json:"name" validate:"required,max=50"`
	Phone       string  `json:"phone" validate:"required,max=12"`
	Address     string  `json:"address" validate:"required,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Position    string  `json:"position" validate:"required,oneof=administrative laborer teacher"`
	WeeklyHours *int    `json:"weekly_hours" validate:"omitempty,min=1"`
	Salary      int     `json:"salary" validate:"min=0"`
	BirthDate   string  `json:"birth_date" validate:"required"`
	HireDate    string  `json:"hire_date" validate:"required"`
	PhotoPath   *string `json:"photo_path"`
}

func (r *staffRequest) toModel() (*models.StaffMember, error) {
	birthDate, err := models.ParseDate(r.BirthDate)
	if err != nil {
		return nil, errors.New("invalid birth date")
	}
	hireDate, err := models.ParseDate(r.HireDate)
	if err != nil {
		return nil, errors.New("invalid hire date")
	}
	return &models.StaffMember{
		NationalID:  r.NationalID,
		Name:        r.Name,
		Phone:       r.Phone,
		Address:     r.Address,
		Email:       r.Email,
		Position:    models.Position(r.Position),
		WeeklyHours: r.WeeklyHours,
		Salary:      r.Salary,
		BirthDate:   birthDate,
		HireDate:    hireDate,
		PhotoPath:   r.PhotoPath,
	}, nil
}

func ListStaffAPI(c *fiber.Ctx) error {
	staff, err := database.ListStaff(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}
	return c.JSON(fiber.Map{"staff": staff, "count": len(staff)})
}

func GetStaffAPI(c *fiber.Ctx) error {
	s, err := database.GetStaffByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(s)
}

// CreateStaffAPI validates the submission, provisions the login
// identity and inserts the record in one transaction. A teacher
// without weekly hours is rejected before anything is written.
func CreateStaffAPI(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	s, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := services.NewStaffIdentity(s)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	taken, err := database.UsernameTaken(db, s.NationalID, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if taken {
		return c.Status(409).JSON(fiber.Map{"error": "This national ID is already registered"})
	}

	if err := database.CreateStaffWithIdentity(db, s, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff member"})
	}
	return c.Status(201).JSON(s)
}

// UpdateStaffAPI persists an edit together with its identity changes:
// an optional username rename (aborting on collision) and the
// idempotent role re-bind. Non-teacher positions get weekly hours
// cleared.
func UpdateStaffAPI(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	s, err := database.GetStaffByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	edited, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	edited.ID = s.ID
	edited.UserID = s.UserID
	edited.EndDate = s.EndDate

	if err := services.ValidateStaff(edited); err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	taken, err := database.UsernameTaken(db, edited.NationalID, s.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	rename, err := services.PlanRename(s.NationalID, edited.NationalID, taken)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStaffWithIdentity(db, edited, rename); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff member"})
	}
	return c.JSON(edited)
}

// DeactivateStaffAPI sets the end date instead of deleting; history
// stays referenced.
func DeactivateStaffAPI(c *fiber.Ctx) error {
	if err := database.DeactivateStaff(config.GetDB(), c.Params("id"), time.Now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate staff member"})
	}
	return c.JSON(fiber.Map{"message": "Staff member deactivated"})
}

func ReactivateStaffAPI(c *fiber.Ctx) error {
	if err := database.ReactivateStaff(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Staff member not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reactivate staff member"})
	}
	return c.JSON(fiber.Map{"message": "Staff member reactivated"})
}
