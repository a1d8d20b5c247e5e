package departments

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

type departmentRequest struct {
	Name      string   `json:"name" validate:"required,max=50"`
	MemberIDs []string `json:"member_ids" validate:"dive,uuid"`
}

func ListDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.ListDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch departments"})
	}
	return c.JSON(fiber.Map{"departments": departments, "count": len(departments)})
}

func GetDepartmentAPI(c *fiber.Ctx) error {
	d, err := database.GetDepartmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(d)
}

func CreateDepartmentAPI(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	d := &models.Department{Name: req.Name}
	if err := database.CreateDepartment(config.GetDB(), d, req.MemberIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}
	return c.Status(201).JSON(d)
}

func UpdateDepartmentAPI(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	d := &models.Department{ID: c.Params("id"), Name: req.Name}
	if err := database.UpdateDepartment(config.GetDB(), d, req.MemberIDs); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}
	return c.JSON(d)
}
