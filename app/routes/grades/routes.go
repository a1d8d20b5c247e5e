package grades

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupGradesRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)
	teacher := auth.RoleMiddleware(models.RoleTeacher)

	grades := app.Group("/grades")
	grades.Use(auth.AuthMiddleware)
	grades.Use(secretaryOrTeacher)

	grades.Get("/", GradesPage)

	defs := app.Group("/api/grade-definitions")
	defs.Use(auth.AuthMiddleware)

	defs.Get("/", secretaryOrTeacher, ListGradeDefinitionsAPI)
	defs.Get("/:id", secretary, GetGradeDefinitionAPI)
	defs.Post("/", secretary, CreateGradeDefinitionAPI)
	defs.Put("/:id", secretary, UpdateGradeDefinitionAPI)
	defs.Delete("/:id", secretary, DeleteGradeDefinitionAPI)

	records := app.Group("/api/grade-records")
	records.Use(auth.AuthMiddleware)

	records.Get("/", secretaryOrTeacher, ListGradeRecordsAPI)
	records.Post("/", teacher, CreateGradeRecordAPI)
	records.Put("/:id", teacher, UpdateGradeRecordAPI)
	records.Delete("/:id", teacher, DeleteGradeRecordAPI)
}

func GradesPage(c *fiber.Ctx) error {
	return c.Render("grades/index", fiber.Map{
		"Title":       "Grades - LCA Records",
		"CurrentPage": "grades",
	})
}
