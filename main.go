package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/routes/activities"
	"github.com/musicorai90/lca/app/routes/assets"
	"github.com/musicorai90/lca/app/routes/attendance"
	"github.com/musicorai90/lca/app/routes/auth"
	"github.com/musicorai90/lca/app/routes/dashboard"
	"github.com/musicorai90/lca/app/routes/departments"
	"github.com/musicorai90/lca/app/routes/enrollments"
	"github.com/musicorai90/lca/app/routes/grades"
	"github.com/musicorai90/lca/app/routes/guardians"
	"github.com/musicorai90/lca/app/routes/leave"
	"github.com/musicorai90/lca/app/routes/library"
	"github.com/musicorai90/lca/app/routes/memos"
	"github.com/musicorai90/lca/app/routes/reports"
	"github.com/musicorai90/lca/app/routes/requests"
	"github.com/musicorai90/lca/app/routes/staff"
	"github.com/musicorai90/lca/app/routes/students"
	"github.com/musicorai90/lca/app/routes/subjects"
)

// customErrorHandler renders error pages for web requests and returns
// JSON for /api/ requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - LCA Records",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - LCA Records",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - LCA Records",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - LCA Records",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - LCA Records",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	staff.SetupStaffRoutes(app)
	students.SetupStudentsRoutes(app)
	guardians.SetupGuardiansRoutes(app)
	departments.SetupDepartmentsRoutes(app)
	assets.SetupAssetsRoutes(app)
	reports.SetupReportsRoutes(app)
	leave.SetupLeaveRoutes(app)
	memos.SetupMemosRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	enrollments.SetupEnrollmentsRoutes(app)
	grades.SetupGradesRoutes(app)
	requests.SetupRequestsRoutes(app)
	library.SetupLibraryRoutes(app)
	activities.SetupActivitiesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", config.AppConfig.Addr)
	log.Fatal(app.Listen(config.AppConfig.Addr))
}
