package trainingController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateTraining persists a training and fans out one progress row per
// active employee of the target department. The training insert and the
// fan-out commit or roll back together.
func CreateTraining(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTraining").(*struct {
		CompanyID    uint            `json:"id_empresa"`
		Title        string          `json:"titulo"`
		Description  string          `json:"descricao"`
		VideoURL     *string         `json:"video_url"`
		Content      json.RawMessage `json:"conteudo_json"`
		StartDate    *time.Time      `json:"data_inicio"`
		EndDate      *time.Time      `json:"data_encerramento"`
		DepartmentID uint            `json:"id_departamento"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND company_id = ?", reqData.DepartmentID, reqData.CompanyID).First(&models.Department{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	training := models.Training{
		CompanyID:    reqData.CompanyID,
		DepartmentID: reqData.DepartmentID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		VideoURL:     reqData.VideoURL,
		Content:      datatypes.JSON(reqData.Content),
		StartDate:    reqData.StartDate,
		EndDate:      reqData.EndDate,
	}

	var employees []models.Employee
	if err := db.Where("department_id = ? AND status = ?", reqData.DepartmentID, models.EmployeeStatusActive).Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	tx := db.Begin()
	if err := tx.Create(&training).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving training: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save training!", nil)
	}

	if len(employees) > 0 {
		rows := make([]models.Progress, len(employees))
		for i, emp := range employees {
			rows[i] = models.Progress{
				TrainingID: training.ID,
				EmployeeID: emp.ID,
				Status:     models.ProgressStatusPending,
				StartedAt:  time.Now(),
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			log.Printf("Error creating progress rows: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create progress for employees!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save training!", nil)
	}

	message := fmt.Sprintf("Training saved and progress created for %d employees.", len(employees))
	if len(employees) == 0 {
		message = "Training saved, but no employees found for the department."
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, fiber.Map{
		"id_treinamento": training.ID,
		"assigned":       len(employees),
	})
}

// ListEmployeeTrainings lists the trainings of the employee's department
func ListEmployeeTrainings(c *fiber.Ctx) error {
	employeeID := c.QueryInt("id_funcionario")
	if employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_funcionario is required!", nil)
	}

	var trainings []models.Training
	err := database.Database.Db.
		Joins("JOIN departments d ON d.id = trainings.department_id").
		Joins("JOIN employees f ON f.department_id = d.id").
		Where("f.id = ?", employeeID).
		Find(&trainings).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully!", trainings)
}

// ListCompanyTrainings lists every training owned by a company
func ListCompanyTrainings(c *fiber.Ctx) error {
	companyID := c.QueryInt("id_empresa")
	if companyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_empresa is required!", nil)
	}

	var trainings []models.Training
	if err := database.Database.Db.Where("company_id = ?", companyID).Find(&trainings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully!", trainings)
}

// GetTrainingDetails returns one training with its structured content split
// into summary, quiz and key topics for the player screen.
func GetTrainingDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid training id!", nil)
	}

	var training models.Training
	if err := database.Database.Db.Where("id = ?", id).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	var content struct {
		Summary json.RawMessage `json:"resumo"`
		Quiz    json.RawMessage `json:"quiz"`
		Topics  json.RawMessage `json:"topicos_principais"`
	}
	if len(training.Content) > 0 {
		if err := json.Unmarshal(training.Content, &content); err != nil {
			log.Printf("Error parsing training content %d: %v", training.ID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully!", fiber.Map{
		"titulo":        training.Title,
		"descricao":     training.Description,
		"resumo":        content.Summary,
		"quiz":          content.Quiz,
		"topicos":       content.Topics,
		"conteudo_json": training.Content,
	})
}

// GetTrainingForEdit returns the raw training row for the edit form
func GetTrainingForEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid training id!", nil)
	}

	var training models.Training
	if err := database.Database.Db.Where("id = ?", id).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully!", training)
}

// UpdateTraining edits a training's title, description and content
func UpdateTraining(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid training id!", nil)
	}

	reqData, ok := c.Locals("validatedTrainingUpdate").(*struct {
		Title       string          `json:"titulo"`
		Description string          `json:"descricao"`
		Content     json.RawMessage `json:"conteudo_json"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Training{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       reqData.Title,
			"description": reqData.Description,
			"content":     datatypes.JSON(reqData.Content),
		})

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training updated successfully!", nil)
}

// DeleteTraining removes a training and its progress rows in one
// transaction, so no orphaned progress is left behind.
func DeleteTraining(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tx := database.Database.Db.Begin()

	if err := tx.Unscoped().Where("training_id = ?", reqData.ID).Delete(&models.Progress{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}

	result := tx.Unscoped().Where("id = ?", reqData.ID).Delete(&models.Training{})
	if result.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training deleted successfully!", nil)
}
