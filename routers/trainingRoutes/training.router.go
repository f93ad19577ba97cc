package trainingRoutes

import (
	trainingController "traineasy/controllers/training"
	"traineasy/middleware"
	trainingValidator "traineasy/validators/training"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainingRoutes sets up training catalog routes
func SetupTrainingRoutes(app *fiber.App) {
	app.Post("/salvar-treinamento", middleware.JWTMiddleware, trainingValidator.CreateTraining(), trainingController.CreateTraining)
	app.Get("/treinamentos", middleware.JWTMiddleware, trainingController.ListEmployeeTrainings)
	app.Get("/treinamentos_empresa", middleware.JWTMiddleware, trainingController.ListCompanyTrainings)
	app.Get("/treinamento/:id", middleware.JWTMiddleware, trainingController.GetTrainingDetails)
	app.Get("/list_edit_treinamento/:id", middleware.JWTMiddleware, trainingController.GetTrainingForEdit)
	app.Put("/update_treinamento/:id", middleware.JWTMiddleware, trainingValidator.UpdateTraining(), trainingController.UpdateTraining)
	app.Post("/removerTreinamento", middleware.JWTMiddleware, trainingController.DeleteTraining)
}
