package memos

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

type memoRequest struct {
	Note    string `json:"note" validate:"required,max=100"`
	Date    string `json:"date" validate:"required"`
	StaffID string `json:"staff_id" validate:"required,uuid"`
}

func (r *memoRequest) toModel() (*models.Memo, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &models.Memo{Note: r.Note, Date: date, StaffID: r.StaffID}, nil
}

func ListMemosAPI(c *fiber.Ctx) error {
	memos, err := database.ListMemos(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch memos"})
	}
	return c.JSON(fiber.Map{"memos": memos, "count": len(memos)})
}

func GetMemoAPI(c *fiber.Ctx) error {
	m, err := database.GetMemoByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Memo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(m)
}

func CreateMemoAPI(c *fiber.Ctx) error {
	var req memoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	m, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateMemo(config.GetDB(), m); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create memo"})
	}
	return c.Status(201).JSON(m)
}

func UpdateMemoAPI(c *fiber.Ctx) error {
	var req memoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	m, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	m.ID = c.Params("id")

	if err := database.UpdateMemo(config.GetDB(), m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Memo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update memo"})
	}
	return c.JSON(m)
}

func DeleteMemoAPI(c *fiber.Ctx) error {
	if err := database.DeleteMemo(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Memo not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete memo"})
	}
	return c.JSON(fiber.Map{"message": "Memo deleted"})
}
