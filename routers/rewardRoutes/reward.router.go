package rewardRoutes

import (
	rewardController "traineasy/controllers/reward"
	"traineasy/middleware"
	rewardValidator "traineasy/validators/reward"

	"github.com/gofiber/fiber/v2"
)

// SetupRewardRoutes sets up the rewards catalog and redemption routes
func SetupRewardRoutes(app *fiber.App) {
	app.Post("/criar-recompensas", middleware.JWTMiddleware, rewardValidator.CreateReward(), rewardController.CreateReward)
	app.Get("/recompensas", middleware.JWTMiddleware, rewardController.ListRewards)
	app.Put("/recompensas/:id", middleware.JWTMiddleware, rewardValidator.UpdateReward(), rewardController.UpdateReward)
	app.Delete("/recompensas/:id", middleware.JWTMiddleware, rewardController.DeleteReward)
	app.Post("/resgatar", middleware.JWTMiddleware, rewardValidator.RedeemReward(), rewardController.RedeemReward)
}
