package assets

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupAssetsRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)

	assets := app.Group("/assets")
	assets.Use(auth.AuthMiddleware)
	assets.Get("/", secretaryOrTeacher, AssetsPage)

	api := app.Group("/api/assets")
	api.Use(auth.AuthMiddleware)

	// Teachers may list assets so they can file damage reports; every
	// mutation is secretary-only.
	api.Get("/", secretaryOrTeacher, ListAssetsAPI)
	api.Get("/:id", secretary, GetAssetAPI)
	api.Post("/", secretary, CreateAssetAPI)
	api.Put("/:id", secretary, UpdateAssetAPI)
	api.Delete("/:id", secretary, DeleteAssetAPI)

	types := app.Group("/api/asset-types")
	types.Use(auth.AuthMiddleware)
	types.Use(secretary)

	types.Get("/", ListAssetTypesAPI)
	types.Get("/:id", GetAssetTypeAPI)
	types.Post("/", CreateAssetTypeAPI)
	types.Put("/:id", UpdateAssetTypeAPI)
	types.Delete("/:id", DeleteAssetTypeAPI)
}

func AssetsPage(c *fiber.Ctx) error {
	return c.Render("assets/index", fiber.Map{
		"Title":       "Assets - LCA Records",
		"CurrentPage": "assets",
	})
}
