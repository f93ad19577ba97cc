package companyRoutes

import (
	companyController "traineasy/controllers/company"
	"traineasy/middleware"
	companyValidator "traineasy/validators/company"

	"github.com/gofiber/fiber/v2"
)

// SetupCompanyRoutes sets up company registration and administration routes.
// Registration is public; everything else requires a token.
func SetupCompanyRoutes(app *fiber.App) {
	app.Post("/empresas", companyValidator.RegisterCompany(), companyController.RegisterCompany)
	app.Post("/list_empresas", middleware.JWTMiddleware, companyController.ListCompanies)
	app.Post("/editarEmpresa", middleware.JWTMiddleware, companyValidator.UpdateCompany(), companyController.UpdateCompany)
}
