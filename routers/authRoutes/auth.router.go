package authRoutes

import (
	authController "traineasy/controllers/auth"
	authValidator "traineasy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the public authentication routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/login", authValidator.Login(), authController.Login)
}
