package assets

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

type assetRequest struct {
	Name         string `json:"name" validate:"required,max=50"`
	Condition    string `json:"condition" validate:"required,oneof=active damaged"`
	AcquiredOn   string `json:"acquired_on" validate:"required"`
	TypeID       string `json:"type_id" validate:"required,uuid"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
}

func (r *assetRequest) toModel() (*models.Asset, error) {
	acquired, err := models.ParseDate(r.AcquiredOn)
	if err != nil {
		return nil, errors.New("invalid acquisition date")
	}
	return &models.Asset{
		Name:         r.Name,
		Condition:    models.AssetCondition(r.Condition),
		AcquiredOn:   acquired,
		TypeID:       r.TypeID,
		DepartmentID: r.DepartmentID,
	}, nil
}

func ListAssetsAPI(c *fiber.Ctx) error {
	assets, err := database.ListAssets(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assets"})
	}
	return c.JSON(fiber.Map{"assets": assets, "count": len(assets)})
}

func GetAssetAPI(c *fiber.Ctx) error {
	a, err := database.GetAssetByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(a)
}

func CreateAssetAPI(c *fiber.Ctx) error {
	var req assetRequest
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
	if err := database.CreateAsset(config.GetDB(), a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create asset"})
	}
	return c.Status(201).JSON(a)
}

func UpdateAssetAPI(c *fiber.Ctx) error {
	var req assetRequest
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
	if err := database.UpdateAsset(config.GetDB(), a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update asset"})
	}
	return c.JSON(a)
}

func DeleteAssetAPI(c *fiber.Ctx) error {
	if err := database.DeleteAsset(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete asset"})
	}
	return c.JSON(fiber.Map{"message": "Asset deleted"})
}

func ListAssetTypesAPI(c *fiber.Ctx) error {
	types, err := database.ListAssetTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch asset types"})
	}
	return c.JSON(fiber.Map{"asset_types": types, "count": len(types)})
}

func GetAssetTypeAPI(c *fiber.Ctx) error {
	t, err := database.GetAssetTypeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(t)
}

func CreateAssetTypeAPI(c *fiber.Ctx) error {
	var t models.AssetType
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateAssetType(config.GetDB(), &t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create asset type"})
	}
	return c.Status(201).JSON(t)
}

func UpdateAssetTypeAPI(c *fiber.Ctx) error {
	var t models.AssetType
	if err := c.BodyParser(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&t); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	t.ID = c.Params("id")
	if err := database.UpdateAssetType(config.GetDB(), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update asset type"})
	}
	return c.JSON(t)
}

func DeleteAssetTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteAssetType(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Asset type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete asset type"})
	}
	return c.JSON(fiber.Map{"message": "Asset type deleted"})
}
