package guardians

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

func ListGuardiansAPI(c *fiber.Ctx) error {
	guardians, err := database.ListGuardians(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guardians"})
	}
	return c.JSON(fiber.Map{"guardians": guardians, "count": len(guardians)})
}

func GetGuardianAPI(c *fiber.Ctx) error {
	g, err := database.GetGuardianByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(g)
}

func CreateGuardianAPI(c *fiber.Ctx) error {
	var g models.Guardian
	if err := c.BodyParser(&g); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&g); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateGuardian(config.GetDB(), &g); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create guardian"})
	}
	return c.Status(201).JSON(g)
}

func UpdateGuardianAPI(c *fiber.Ctx) error {
	var g models.Guardian
	if err := c.BodyParser(&g); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&g); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	g.ID = c.Params("id")

	if err := database.UpdateGuardian(config.GetDB(), &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update guardian"})
	}
	return c.JSON(g)
}
