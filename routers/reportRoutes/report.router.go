package reportRoutes

import (
	reportController "traineasy/controllers/report"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes sets up the read-only reporting routes
func SetupReportRoutes(app *fiber.App) {
	app.Get("/ranking", middleware.JWTMiddleware, reportController.GetRanking)
	app.Get("/pontos", middleware.JWTMiddleware, reportController.GetWalletPoints)
	app.Get("/api/estatisticas", middleware.JWTMiddleware, reportController.GetCompanyStatistics)
	app.Get("/fill_dashboard_empresa", middleware.JWTMiddleware, reportController.FillCompanyDashboard)
	app.Get("/fill_dashboard_funcionario", middleware.JWTMiddleware, reportController.FillEmployeeDashboard)
	app.Get("/fill_profile", middleware.JWTMiddleware, reportController.FillProfile)
	app.Get("/courses", middleware.JWTMiddleware, reportController.GetCourses)
	app.Get("/courses_statistics", middleware.JWTMiddleware, reportController.GetCoursesStatistics)
	app.Get("/empresa_data", middleware.JWTMiddleware, reportController.GetCompanyData)
	app.Get("/count_training", middleware.JWTMiddleware, reportController.CountTrainings)
	app.Get("/certificados/:id_funcionario", middleware.JWTMiddleware, reportController.ListCertificates)
}
