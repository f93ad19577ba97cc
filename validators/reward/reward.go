package rewardValidator

import (
	"strings"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateReward() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"nome"`
			Description string `json:"descricao"`
			PointPrice  int    `json:"preco_pontos"`
			CompanyID   uint   `json:"id_empresa"`
			Quantity    int    `json:"quantidade"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["nome"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["descricao"] = "Description is required!"
		}
		if reqData.PointPrice < 1 {
			errors["preco_pontos"] = "Point price must be at least 1!"
		}
		if reqData.CompanyID == 0 {
			errors["id_empresa"] = "Company id is required!"
		}
		if reqData.Quantity < 0 {
			errors["quantidade"] = "Quantity must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReward", reqData)
		return c.Next()
	}
}

func UpdateReward() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"nome"`
			Description string `json:"descricao"`
			PointPrice  int    `json:"preco_pontos"`
			Quantity    int    `json:"quantidade_disponivel"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["nome"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["descricao"] = "Description is required!"
		}
		if reqData.PointPrice < 1 {
			errors["preco_pontos"] = "Point price must be at least 1!"
		}
		if reqData.Quantity < 0 {
			errors["quantidade_disponivel"] = "Quantity must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRewardUpdate", reqData)
		return c.Next()
	}
}

func RedeemReward() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmployeeID uint `json:"id_funcionario"`
			RewardID   uint `json:"id_recompensa"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.EmployeeID == 0 {
			errors["id_funcionario"] = "Employee id is required!"
		}
		if reqData.RewardID == 0 {
			errors["id_recompensa"] = "Reward id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRedemption", reqData)
		return c.Next()
	}
}
