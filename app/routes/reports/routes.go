package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	teacher := auth.RoleMiddleware(models.RoleTeacher)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)

	reports := app.Group("/reports")
	reports.Use(auth.AuthMiddleware)
	reports.Get("/", secretaryOrTeacher, ReportsPage)

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/", secretaryOrTeacher, ListReportsAPI)
	api.Get("/assets", teacher, ListReportableAssetsAPI)
	api.Get("/:id", secretaryOrTeacher, GetReportAPI)
	api.Post("/", teacher, CreateReportAPI)
	api.Put("/:id/resolve", secretary, ResolveReportAPI)
}

func ReportsPage(c *fiber.Ctx) error {
	return c.Render("reports/index", fiber.Map{
		"Title":       "Damage Reports - LCA Records",
		"CurrentPage": "reports",
	})
}
