package departmentRoutes

import (
	departmentController "traineasy/controllers/department"
	"traineasy/middleware"
	departmentValidator "traineasy/validators/department"

	"github.com/gofiber/fiber/v2"
)

// SetupDepartmentRoutes sets up department administration routes
func SetupDepartmentRoutes(app *fiber.App) {
	app.Post("/departamentos", middleware.JWTMiddleware, departmentValidator.CreateDepartment(), departmentController.CreateDepartment)
	app.Post("/list_departamento", middleware.JWTMiddleware, departmentController.ListDepartments)
	app.Post("/editarDepartamento", middleware.JWTMiddleware, departmentValidator.UpdateDepartment(), departmentController.UpdateDepartment)
}
