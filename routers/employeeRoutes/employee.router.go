package employeeRoutes

import (
	employeeController "traineasy/controllers/employee"
	"traineasy/middleware"
	employeeValidator "traineasy/validators/employee"

	"github.com/gofiber/fiber/v2"
)

// SetupEmployeeRoutes sets up employee administration routes
func SetupEmployeeRoutes(app *fiber.App) {
	app.Post("/funcionarios", middleware.JWTMiddleware, employeeValidator.CreateEmployee(), employeeController.CreateEmployee)
	app.Post("/list_funcionarios", middleware.JWTMiddleware, employeeController.ListEmployees)
	app.Post("/editarFuncionario", middleware.JWTMiddleware, employeeValidator.UpdateEmployee(), employeeController.UpdateEmployee)
	app.Post("/deletarFuncionario", middleware.JWTMiddleware, employeeController.DeleteEmployee)
}
