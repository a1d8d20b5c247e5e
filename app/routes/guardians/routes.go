package guardians

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupGuardiansRoutes(app *fiber.App) {
	guardians := app.Group("/guardians")
	guardians.Use(auth.AuthMiddleware)
	guardians.Use(auth.RoleMiddleware(models.RoleSecretary))

	guardians.Get("/", GuardiansPage)

	api := app.Group("/api/guardians")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListGuardiansAPI)
	api.Get("/:id", GetGuardianAPI)
	api.Post("/", CreateGuardianAPI)
	api.Put("/:id", UpdateGuardianAPI)
}

func GuardiansPage(c *fiber.Ctx) error {
	return c.Render("guardians/index", fiber.Map{
		"Title":       "Guardians - LCA Records",
		"CurrentPage": "guardians",
	})
}
