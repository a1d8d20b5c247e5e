package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Use(auth.RoleMiddleware(models.RoleSecretary))

	students.Get("/", StudentsPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	return c.Render("students/index", fiber.Map{
		"Title":       "Students - LCA Records",
		"CurrentPage": "students",
	})
}
