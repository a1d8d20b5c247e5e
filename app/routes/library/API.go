package library

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

func ListBooksAPI(c *fiber.Ctx) error {
	books, err := database.ListBooks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch books"})
	}
	return c.JSON(fiber.Map{"books": books, "count": len(books)})
}

func GetBookAPI(c *fiber.Ctx) error {
	b, err := database.GetBookByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(b)
}

func CreateBookAPI(c *fiber.Ctx) error {
	var b models.Book
	if err := c.BodyParser(&b); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&b); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateBook(config.GetDB(), &b); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create book"})
	}
	return c.Status(201).JSON(b)
}

func UpdateBookAPI(c *fiber.Ctx) error {
	var b models.Book
	if err := c.BodyParser(&b); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&b); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	b.ID = c.Params("id")

	if err := database.UpdateBook(config.GetDB(), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update book"})
	}
	return c.JSON(b)
}

func DeleteBookAPI(c *fiber.Ctx) error {
	if err := database.DeleteBook(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Book not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete book"})
	}
	return c.JSON(fiber.Map{"message": "Book deleted"})
}

type loanRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Note      string `json:"note" validate:"max=100"`
	BookID    string `json:"book_id" validate:"required,uuid"`
	StudentID string `json:"student_id" validate:"required,uuid"`
}

func (r *loanRequest) toModel() (*models.Loan, error) {
	start, err := models.ParseDate(r.StartDate)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	end, err := models.ParseDate(r.EndDate)
	if err != nil {
		return nil, errors.New("invalid end date")
	}
	if end.Before(start) {
		return nil, errors.New("end date before start date")
	}
	return &models.Loan{
		StartDate: start,
		EndDate:   end,
		Note:      r.Note,
		BookID:    r.BookID,
		StudentID: r.StudentID,
	}, nil
}

func ListLoansAPI(c *fiber.Ctx) error {
	loans, err := database.ListLoans(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch loans"})
	}
	return c.JSON(fiber.Map{"loans": loans, "count": len(loans)})
}

func GetLoanAPI(c *fiber.Ctx) error {
	l, err := database.GetLoanByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Loan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(l)
}

func CreateLoanAPI(c *fiber.Ctx) error {
	var req loanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	l, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.CreateLoan(config.GetDB(), l); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create loan"})
	}
	return c.Status(201).JSON(l)
}

func UpdateLoanAPI(c *fiber.Ctx) error {
	var req loanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	l, err := req.toModel()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	l.ID = c.Params("id")

	if err := database.UpdateLoan(config.GetDB(), l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Loan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update loan"})
	}
	return c.JSON(l)
}

func DeleteLoanAPI(c *fiber.Ctx) error {
	if err := database.DeleteLoan(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "Loan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete loan"})
	}
	return c.JSON(fiber.Map{"message": "Loan deleted"})
}
