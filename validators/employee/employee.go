package employeeValidator

import (
	"strings"
	"traineasy/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email        string `json:"email"`
			Password     string `json:"senha"`
			DepartmentID uint   `json:"id_departamento"`
			Name         string `json:"nome"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Email is invalid!"
		}
		if reqData.Password == "" {
			errors["senha"] = "Password is required!"
		}
		if reqData.DepartmentID == 0 {
			errors["id_departamento"] = "Department id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEmployee", reqData)
		return c.Next()
	}
}

func UpdateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID    uint   `json:"id"`
			Name  string `json:"nome"`
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Employee id is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["nome"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Email is invalid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEmployeeUpdate", reqData)
		return c.Next()
	}
}
