package activities

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

type activityRequest struct {
	Date         string   `json:"date" validate:"required"`
	Description  string   `json:"description" validate:"required,max=100"`
	Participants []string `json:"participants" validate:"dive,uuid"`
}

func (r *activityRequest) toModel() (*models.Activity, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &models.Activity{Date: date, Description: r.Description}, nil
}

func ListActivitiesAPI(c *fiber.Ctx) error {
	activities, err := database.ListActivities(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}
	return c.JSON(fiber.Map{"activities": activities, "count": len(activities)})
}

func GetActivityAPI(c *fiber.Ctx) error {
	a, err := database.GetActivityByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(a)
}

func CreateActivityAPI(c *fiber.Ctx) error {
	var req activityRequest
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
	if err := database.CreateActivity(config.GetDB(), a, req.Participants); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create activity"})
	}
	return c.Status(201).JSON(a)
}

func UpdateActivityAPI(c *fiber.Ctx) error {
	var req activityRequest
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

	if err := database.UpdateActivity(config.GetDB(), a, req.Participants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update activity"})
	}
	return c.JSON(a)
}
