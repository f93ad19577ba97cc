package companyValidator

import (
	"strings"
	"traineasy/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func RegisterCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LegalName string `json:"razao_social"`
			TradeName string `json:"nome_fantasia"`
			Email     string `json:"email"`
			TaxID     string `json:"cnpj"`
			Password  string `json:"senha"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.LegalName) == "" {
			errors["razao_social"] = "Legal name is required!"
		}
		if strings.TrimSpace(reqData.TradeName) == "" {
			errors["nome_fantasia"] = "Trade name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Email is invalid!"
		}
		if strings.TrimSpace(reqData.TaxID) == "" {
			errors["cnpj"] = "Tax id is required!"
		}
		if reqData.Password == "" {
			errors["senha"] = "Password is required!"
		} else if len(reqData.Password) < 6 {
			errors["senha"] = "Password must be at least 6 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

func UpdateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID        uint   `json:"id"`
			LegalName string `json:"razao_social"`
			TradeName string `json:"nome_fantasia"`
			Email     string `json:"email"`
			TaxID     string `json:"cnpj"`
			Status    int    `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Company id is required!"
		}
		if strings.TrimSpace(reqData.LegalName) == "" {
			errors["razao_social"] = "Legal name is required!"
		}
		if strings.TrimSpace(reqData.TradeName) == "" {
			errors["nome_fantasia"] = "Trade name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Email is invalid!"
		}
		if strings.TrimSpace(reqData.TaxID) == "" {
			errors["cnpj"] = "Tax id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompanyUpdate", reqData)
		return c.Next()
	}
}
