package leave

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupLeaveRoutes(app *fiber.App) {
	staffRoles := auth.RoleMiddleware(
		models.RoleSecretary, models.RoleAdministrative,
		models.RoleTeacher, models.RoleLaborer,
	)
	secretary := auth.RoleMiddleware(models.RoleSecretary)

	leave := app.Group("/leave")
	leave.Use(auth.AuthMiddleware)
	leave.Use(staffRoles)

	leave.Get("/", LeavePage)

	api := app.Group("/api/leave")
	api.Use(auth.AuthMiddleware)

	api.Get("/", staffRoles, ListLeaveAPI)
	api.Get("/:id", staffRoles, GetLeaveAPI)
	api.Post("/", staffRoles, CreateLeaveAPI)
	api.Put("/:id", secretary, UpdateLeaveAPI)
}

func LeavePage(c *fiber.Ctx) error {
	return c.Render("leave/index", fiber.Map{
		"Title":       "Leave Requests - LCA Records",
		"CurrentPage": "leave",
	})
}
