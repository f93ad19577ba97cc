package progressValidator

import (
	"strconv"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

func ProgressPair() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TrainingID uint `json:"id_treinamento"`
			EmployeeID uint `json:"id_funcionario"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TrainingID == 0 {
			errors["id_treinamento"] = "Training id is required!"
		}
		if reqData.EmployeeID == 0 {
			errors["id_funcionario"] = "Employee id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressPair", reqData)
		return c.Next()
	}
}

func GeneralProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DepartmentID uint `json:"id_departamento"`
			TrainingID   uint `json:"id_treinamento"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DepartmentID == 0 {
			errors["id_departamento"] = "Department id is required!"
		}
		if reqData.TrainingID == 0 {
			errors["id_treinamento"] = "Training id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGeneralProgress", reqData)
		return c.Next()
	}
}

// CompleteProgress validates the multipart completion form. The certificate
// file itself is checked by the controller, which also stores it.
func CompleteProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		trainingID, err := strconv.Atoi(c.FormValue("id_treinamento"))
		if err != nil || trainingID < 1 {
			errors["id_treinamento"] = "Training id is required!"
		}

		employeeID, err := strconv.Atoi(c.FormValue("id_funcionario"))
		if err != nil || employeeID < 1 {
			errors["id_funcionario"] = "Employee id is required!"
		}

		score, err := strconv.Atoi(c.FormValue("nova_pontuacao"))
		if err != nil {
			errors["nova_pontuacao"] = "Score is required!"
		} else if score < 0 {
			errors["nova_pontuacao"] = "Score must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", &struct {
			TrainingID uint
			EmployeeID uint
			Score      int
		}{
			TrainingID: uint(trainingID),
			EmployeeID: uint(employeeID),
			Score:      score,
		})
		return c.Next()
	}
}
