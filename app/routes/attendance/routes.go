package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	secretary := auth.RoleMiddleware(models.RoleSecretary)
	secretaryOrTeacher := auth.RoleMiddleware(models.RoleSecretary, models.RoleTeacher)
	teacher := auth.RoleMiddleware(models.RoleTeacher)

	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)
	attendance.Use(secretaryOrTeacher)

	attendance.Get("/", AttendancePage)

	staffAPI := app.Group("/api/staff-attendance")
	staffAPI.Use(auth.AuthMiddleware)
	staffAPI.Use(secretary)

	staffAPI.Get("/", ListStaffAttendanceAPI)
	staffAPI.Post("/", CreateStaffAttendanceAPI)
	staffAPI.Put("/:id", UpdateStaffAttendanceAPI)
	staffAPI.Delete("/:id", DeleteStaffAttendanceAPI)

	studentAPI := app.Group("/api/student-attendance")
	studentAPI.Use(auth.AuthMiddleware)

	studentAPI.Get("/", secretaryOrTeacher, ListStudentAttendanceAPI)
	studentAPI.Get("/enrollments", teacher, ListMarkableEnrollmentsAPI)
	studentAPI.Post("/", teacher, CreateStudentAttendanceAPI)
	studentAPI.Put("/:id", teacher, UpdateStudentAttendanceAPI)
	studentAPI.Delete("/:id", teacher, DeleteStudentAttendanceAPI)
}

func AttendancePage(c *fiber.Ctx) error {
	return c.Render("attendance/index", fiber.Map{
		"Title":       "Attendance - LCA Records",
		"CurrentPage": "attendance",
	})
}
