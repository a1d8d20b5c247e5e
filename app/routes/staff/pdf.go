package staff

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
)

// StaffPDF renders the active-staff roster as a PDF. Served inline by
// default; the download query flag switches to attachment disposition.
func StaffPDF(c *fiber.Ctx) error {
	staff, err := database.ListActiveStaff(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}

	pdf, err := renderStaffPDF(staff)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}

	disposition := "inline; filename='staff.pdf'"
	if c.Query("download") != "" {
		disposition = "attachment; filename='staff.pdf'"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, disposition)
	return c.Send(pdf)
}

func renderStaffPDF(staff []*models.StaffMember) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Active Staff")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{25, 55, 30, 25, 30, 25}
	headers := []string{"National ID", "Name", "Position", "Hours", "Hired", "Salary"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range staff {
		hours := "-"
		if s.WeeklyHours != nil {
			hours = fmt.Sprintf("%d", *s.WeeklyHours)
		}
		row := []string{
			s.NationalID,
			s.Name,
			string(s.Position),
			hours,
			s.HireDate.Format(models.DateLayout),
			fmt.Sprintf("%d", s.Salary),
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], 8, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
