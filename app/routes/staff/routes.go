package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/staff")
	staff.Use(auth.AuthMiddleware)
	staff.Use(auth.RoleMiddleware(models.RoleSecretary))

	staff.Get("/", StaffPage)
	staff.Get("/pdf", StaffPDF)

	api := app.Group("/api/staff")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListStaffAPI)
	api.Get("/:id", GetStaffAPI)
	api.Post("/", CreateStaffAPI)
	api.Put("/:id", UpdateStaffAPI)
	api.Post("/:id/deactivate", DeactivateStaffAPI)
	api.Post("/:id/reactivate", ReactivateStaffAPI)
}

func StaffPage(c *fiber.Ctx) error {
	return c.Render("staff/index", fiber.Map{
		"Title":       "Staff - LCA Records",
		"CurrentPage": "staff",
	})
}
