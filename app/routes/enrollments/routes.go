package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupEnrollmentsRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)

	enrollments := app.Group("/enrollments")
	enrollments.Use(auth.AuthMiddleware)
	enrollments.Use(secretaryOrTeacher)

	enrollments.Get("/", EnrollmentsPage)

	api := app.Group("/api/enrollments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", secretaryOrTeacher, ListEnrollmentsAPI)
	api.Post("/", secretary, CreateEnrollmentAPI)
	api.Put("/:id", secretary, UpdateEnrollmentAPI)
	api.Delete("/:id", secretary, DeleteEnrollmentAPI)
}

func EnrollmentsPage(c *fiber.Ctx) error {
	return c.Render("enrollments/index", fiber.Map{
		"Title":       "Enrollments - LCA Records",
		"CurrentPage": "enrollments",
	})
}
