package requests

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupRequestsRoutes(app *fiber.App) {
	requests := app.Group("/requests")
	requests.Use(auth.AuthMiddleware)
	requests.Use(auth.RoleMiddleware(models.RoleSecretary))

	requests.Get("/", RequestsPage)

	types := app.Group("/api/request-types")
	types.Use(auth.AuthMiddleware)
	types.Use(auth.RoleMiddleware(models.RoleSecretary))

	types.Get("/", ListRequestTypesAPI)
	types.Get("/:id", GetRequestTypeAPI)
	types.Post("/", CreateRequestTypeAPI)
	types.Put("/:id", UpdateRequestTypeAPI)
	types.Delete("/:id", DeleteRequestTypeAPI)

	api := app.Group("/api/student-requests")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListStudentRequestsAPI)
	api.Get("/:id", GetStudentRequestAPI)
	api.Post("/", CreateStudentRequestAPI)
	api.Put("/:id", UpdateStudentRequestAPI)
	api.Delete("/:id", DeleteStudentRequestAPI)
}

func RequestsPage(c *fiber.Ctx) error {
	return c.Render("requests/index", fiber.Map{
		"Title":       "Student Requests - LCA Records",
		"CurrentPage": "requests",
	})
}
