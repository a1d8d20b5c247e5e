package requests

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

func ListRequestTypesAPI(c *fiber.Ctx) error {
	types, err := database.ListRequestTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch request types"})
	}
	return c.JSON(fiber.Map{"types": types, "count": len(types)})
}

func GetRequestTypeAPI(c *fiber.Ctx) error {
	t, err := database.GetRequestTypeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Request type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(t)
}

func CreateRequestTypeAPI(c *fiber.Ctx) error {
	var t models.RequestType
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateRequestType(config.GetDB(), &t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create request type"})
	}
	return c.Status(201).JSON(t)
}

func UpdateRequestTypeAPI(c *fiber.Ctx) error {
	var t models.RequestType
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	t.ID = c.Params("id")

	if err := database.UpdateRequestType(config.GetDB(), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Request type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update request type"})
	}
	return c.JSON(t)
}

func DeleteRequestTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteRequestType(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Request type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete request type"})
	}
	return c.JSON(fiber.Map{"message": "Request type deleted"})
}

type studentRequestRequest struct {
	Reference int    `json:"reference" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	TypeID    string `json:"type_id" validate:"required,uuid"`
	StudentID string `json:"student_id" validate:"required,uuid"`
}

func (r *studentRequestRequest) toModel() (*models.StudentRequest, error) {
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
	return &models.StudentRequest{
		Reference: r.Reference,
		StartDate: start,
		EndDate:   end,
		TypeID:    r.TypeID,
		StudentID: r.StudentID,
	}, nil
}

func ListStudentRequestsAPI(c *fiber.Ctx) error {
	requests, err := database.ListStudentRequests(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student requests"})
	}
	return c.JSON(fiber.Map{"requests": requests, "count": len(requests)})
}

func GetStudentRequestAPI(c *fiber.Ctx) error {
	r, err := database.GetStudentRequestByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(r)
}

func CreateStudentRequestAPI(c *fiber.Ctx) error {
	var req studentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	r, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateStudentRequest(config.GetDB(), r); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student request"})
	}
	return c.Status(201).JSON(r)
}

func UpdateStudentRequestAPI(c *fiber.Ctx) error {
	var req studentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	r, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	r.ID = c.Params("id")

	if err := database.UpdateStudentRequest(config.GetDB(), r); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student request"})
	}
	return c.JSON(r)
}

func DeleteStudentRequestAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudentRequest(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Student request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student request"})
	}
	return c.JSON(fiber.Map{"message": "Student request deleted"})
}
