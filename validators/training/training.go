package trainingValidator

import (
	"encoding/json"
	"strings"
	"time"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateTraining() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompanyID    uint            `json:"id_empresa"`
			Title        string          `json:"titulo"`
			Description  string          `json:"descricao"`
			VideoURL     *string         `json:"video_url"`
			Content      json.RawMessage `json:"conteudo_json"`
			StartDate    *time.Time      `json:"data_inicio"`
			EndDate      *time.Time      `json:"data_encerramento"`
			DepartmentID uint            `json:"id_departamento"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CompanyID == 0 {
			errors["id_empresa"] = "Company id is required!"
		}
		if reqData.DepartmentID == 0 {
			errors["id_departamento"] = "Department id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["titulo"] = "Title is required!"
		}
		if len(reqData.Content) > 0 && !json.Valid(reqData.Content) {
			errors["conteudo_json"] = "Content must be valid JSON!"
		}
		if reqData.StartDate != nil && reqData.EndDate != nil && reqData.EndDate.Before(*reqData.StartDate) {
			errors["data_encerramento"] = "End date must be after the start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTraining", reqData)
		return c.Next()
	}
}

func UpdateTraining() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string          `json:"titulo"`
			Description string          `json:"descricao"`
			Content     json.RawMessage `json:"conteudo_json"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["titulo"] = "Title is required!"
		}
		if len(reqData.Content) > 0 && !json.Valid(reqData.Content) {
			errors["conteudo_json"] = "Content must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainingUpdate", reqData)
		return c.Next()
	}
}
