package progressRoutes

import (
	progressController "traineasy/controllers/progress"
	"traineasy/middleware"
	progressValidator "traineasy/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the progress ledger routes
func SetupProgressRoutes(app *fiber.App) {
	app.Post("/status", middleware.JWTMiddleware, progressValidator.ProgressPair(), progressController.CheckStatus)
	app.Post("/criar_progresso", middleware.JWTMiddleware, progressValidator.ProgressPair(), progressController.CreateProgress)
	app.Post("/criar_progresso_geral", middleware.JWTMiddleware, progressValidator.GeneralProgress(), progressController.CreateGeneralProgress)
	app.Patch("/finalizar_progresso", middleware.JWTMiddleware, progressValidator.CompleteProgress(), progressController.CompleteProgress)
}
