package departmentValidator

import (
	"strings"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateDepartment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID   uint   `json:"id_empresa"`
			Name        string `json:"nome"`
			Description string `json:"descritivo"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["id_empresa"] = "Company id is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["nome"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["descritivo"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDepartment", reqData)
		return c.Next()
	}
}

func UpdateDepartment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID          uint   `json:"id"`
			Name        string `json:"nome"`
			Description string `json:"descritivo"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Department id is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["nome"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDepartmentUpdate", reqData)
		return c.Next()
	}
}
