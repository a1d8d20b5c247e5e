package memos

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupMemosRoutes(app *fiber.App) {
	staffRoles := auth.RoleMiddleware(
		models.RoleSecretary, models.RoleAdministrative,
		models.RoleTeacher, models.RoleLaborer,
	)
	secretary := auth.RoleMiddleware(models.RoleSecretary)

	memos := app.Group("/memos")
	memos.Use(auth.AuthMiddleware)
	memos.Use(staffRoles)

	memos.Get("/", MemosPage)

	api := app.Group("/api/memos")
	api.Use(auth.AuthMiddleware)

	api.Get("/", staffRoles, ListMemosAPI)
	api.Get("/:id", staffRoles, GetMemoAPI)
	api.Post("/", secretary, CreateMemoAPI)
	api.Put("/:id", secretary, UpdateMemoAPI)
	api.Delete("/:id", secretary, DeleteMemoAPI)
}

func MemosPage(c *fiber.Ctx) error {
	return c.Render("memos/index", fiber.Map{
		"Title":       "Memos - LCA Records",
		"CurrentPage": "memos",
	})
}
