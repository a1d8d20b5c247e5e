package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)

	subjects := app.Group("/subjects")
	subjects.Use(auth.AuthMiddleware)
	subjects.Use(secretaryOrTeacher)

	subjects.Get("/", SubjectsPage)

	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", secretaryOrTeacher, ListSubjectsAPI)
	api.Get("/:id", secretary, GetSubjectAPI)
	api.Post("/", secretary, CreateSubjectAPI)
	api.Put("/:id", secretary, UpdateSubjectAPI)

	units := app.Group("/api/units")
	units.Use(auth.AuthMiddleware)

	units.Get("/", secretaryOrTeacher, ListUnitsAPI)
	units.Post("/", secretary, CreateUnitAPI)
	units.Put("/:id", secretary, UpdateUnitAPI)
	units.Delete("/:id", secretary, DeleteUnitAPI)

	slots := app.Group("/api/schedule")
	slots.Use(auth.AuthMiddleware)

	slots.Get("/", secretaryOrTeacher, ListScheduleAPI)
	slots.Post("/", secretary, CreateScheduleSlotAPI)
	slots.Put("/:id", secretary, UpdateScheduleSlotAPI)
	slots.Delete("/:id", secretary, DeleteScheduleSlotAPI)
}

func SubjectsPage(c *fiber.Ctx) error {
	return c.Render("subjects/index", fiber.Map{
		"Title":       "Subjects - LCA Records",
		"CurrentPage": "subjects",
	})
}
