package leave

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

type leaveRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Document  string `json:"document" validate:"required,max=100"`
	StaffID   string `json:"staff_id" validate:"omitempty,uuid"`
	Status    string `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

func (r *leaveRequest) toModel() (*models.LeaveRequest, error) {
	start, err := models.ParseDate(r.StartDate)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	end, err := models.ParseDate(r.EndDate)
	if err != nil {
		return nil, errors.New("invalid end date")
	}
	return &models.LeaveRequest{
		StartDate: start,
		EndDate:   end,
		Document:  r.Document,
		StaffID:   r.StaffID,
		Status:    models.ReviewStatus(r.Status),
	}, nil
}

func ListLeaveAPI(c *fiber.Ctx) error {
	requests, err := database.ListLeaveRequests(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	return c.JSON(fiber.Map{"leave_requests": requests, "count": len(requests)})
}

func GetLeaveAPI(c *fiber.Ctx) error {
	l, err := database.GetLeaveRequestByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Leave request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(l)
}

// CreateLeaveAPI files a leave request. A secretary files on behalf of
// the named staff member and the request is accepted at once; any other
// staff role files for itself and the request starts pending.
func CreateLeaveAPI(c *fiber.Ctx) error {
	var req leaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	l, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	role := auth.CallerRole(c)

	var callerStaff *models.StaffMember
	if role != models.RoleSecretary {
		callerStaff, err = database.GetStaffByNationalID(db, auth.CallerUsername(c))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
	}

	if err := services.PrepareLeaveRequest(role, callerStaff, l); err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateLeaveRequest(db, l); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create leave request"})
	}
	return c.Status(201).JSON(l)
}

// UpdateLeaveAPI is the secretary's plain edit: dates, document, staff
// binding and status change with no side effects.
func UpdateLeaveAPI(c *fiber.Ctx) error {
	var req leaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StaffID == "" || req.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Staff member and status are required"})
	}

	l, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if l.EndDate.Before(l.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date before start date"})
	}
	l.ID = c.Params("id")

	if err := database.UpdateLeaveRequest(config.GetDB(), l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Leave request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update leave request"})
	}
	return c.JSON(l)
}
