package library

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupLibraryRoutes(app *fiber.App) {
	library := app.Group("/library")
	library.Use(auth.AuthMiddleware)
	library.Use(auth.RoleMiddleware(models.RoleSecretary))

	library.Get("/", LibraryPage)

	books := app.Group("/api/books")
	books.Use(auth.AuthMiddleware)
	books.Use(auth.RoleMiddleware(models.RoleSecretary))

	books.Get("/", ListBooksAPI)
	books.Get("/:id", GetBookAPI)
	books.Post("/", CreateBookAPI)
	books.Put("/:id", UpdateBookAPI)
	books.Delete("/:id", DeleteBookAPI)

	loans := app.Group("/api/loans")
	loans.Use(auth.AuthMiddleware)
	loans.Use(auth.RoleMiddleware(models.RoleSecretary))

	loans.Get("/", ListLoansAPI)
	loans.Get("/:id", GetLoanAPI)
	loans.Post("/", CreateLoanAPI)
	loans.Put("/:id", UpdateLoanAPI)
	loans.Delete("/:id", DeleteLoanAPI)
}

func LibraryPage(c *fiber.Ctx) error {
	return c.Render("library/index", fiber.Map{
		"Title":       "Library - LCA Records",
		"CurrentPage": "library",
	})
}
