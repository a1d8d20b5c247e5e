package activities

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupActivitiesRoutes(app *fiber.App) {
	activities := app.Group("/activities")
	activities.Use(auth.AuthMiddleware)
	activities.Use(auth.RoleMiddleware(models.RoleSecretary))

	activities.Get("/", ActivitiesPage)

	api := app.Group("/api/activities")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSecretary))

	api.Get("/", ListActivitiesAPI)
	api.Get("/:id", GetActivityAPI)
	api.Post("/", CreateActivityAPI)
	api.Put("/:id", UpdateActivityAPI)
}

func ActivitiesPage(c *fiber.Ctx) error {
	return c.Render("activities/index", fiber.Map{
		"Title":       "Activities - LCA Records",
		"CurrentPage": "activities",
	})
}
