package departments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupDepartmentsRoutes(app *fiber.App) {
	departments := app.Group("/departments")
	departments.Use(auth.AuthMiddleware)
	departments.Use(auth.RoleMiddleware(models.RoleSecretary))

	departments.Get("/", DepartmentsPage)

	api := app.Group("/api/departments")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListDepartmentsAPI)
	api.Get("/:id", GetDepartmentAPI)
	api.Post("/", CreateDepartmentAPI)
	api.Put("/:id", UpdateDepartmentAPI)
}

func DepartmentsPage(c *fiber.Ctx) error {
	return c.Render("departments/index", fiber.Map{
		"Title":       "Departments - LCA Records",
		"CurrentPage": "departments",
	})
}
