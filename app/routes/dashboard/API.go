package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	staffRoles := auth.RoleMiddleware(
		models.RoleSecretary, models.RoleAdministrative,
		models.RoleTeacher, models.RoleLaborer,
	)

	app.Get("/", auth.AuthMiddleware, staffRoles, GetDashboard)
	app.Get("/dashboard", auth.AuthMiddleware, staffRoles, GetDashboard)
	app.Get("/api/dashboard/stats", auth.AuthMiddleware, staffRoles, GetDashboardStatsAPI)
}

func GetDashboard(c *fiber.Ctx) error {
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - LCA Records",
		"CurrentPage": "dashboard",
		"Username":    auth.CallerUsername(c),
		"Role":        auth.CallerRole(c),
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
