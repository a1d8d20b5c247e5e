package enrollments

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

func ListEnrollmentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	if subjectID := c.Query("subject"); subjectID != "" {
		enrollments, err := database.ListEnrollmentsBySubject(db, subjectID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
		}
		return c.JSON(fiber.Map{"enrollments": enrollments, "count": len(enrollments)})
	}

	enrollments, err := database.ListEnrollments(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(fiber.Map{"enrollments": enrollments, "count": len(enrollments)})
}

func CreateEnrollmentAPI(c *fiber.Ctx) error {
	var e models.Enrollment
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateEnrollment(config.GetDB(), &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create enrollment"})
	}
	return c.Status(201).JSON(e)
}

func UpdateEnrollmentAPI(c *fiber.Ctx) error {
	var e models.Enrollment
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	e.ID = c.Params("id")

	if err := database.UpdateEnrollment(config.GetDB(), &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update enrollment"})
	}
	return c.JSON(e)
}

func DeleteEnrollmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteEnrollment(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}
	return c.JSON(fiber.Map{"message": "Enrollment deleted"})
}
