package progressController

import (
	"errors"
	"fmt"
	"log"
	"time"
	"traineasy/config"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"
	"traineasy/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckStatus reports whether a progress row exists for the pair
func CheckStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgressPair").(*struct {
		TrainingID uint `json:"id_treinamento"`
		EmployeeID uint `json:"id_funcionario"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var progress models.Progress
	err := database.Database.Db.
		Where("training_id = ? AND employee_id = ?", reqData.TrainingID, reqData.EmployeeID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Status checked!", fiber.Map{"exists": false})
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status checked!", fiber.Map{
		"exists": true,
		"status": progress.Status,
	})
}

// CreateProgress starts a training for one employee. Creating is idempotent:
// an existing pair is reported back instead of duplicated, and the unique
// index on (training_id, employee_id) keeps concurrent callers from racing
// past the existence check.
func CreateProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgressPair").(*struct {
		TrainingID uint `json:"id_treinamento"`
		EmployeeID uint `json:"id_funcionario"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ?", reqData.TrainingID).First(&models.Training{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}
	if err := db.Where("id = ? AND status = ?", reqData.EmployeeID, models.EmployeeStatusActive).First(&models.Employee{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	progress := models.Progress{
		TrainingID: reqData.TrainingID,
		EmployeeID: reqData.EmployeeID,
		Status:     models.ProgressStatusInProgress,
		StartedAt:  time.Now(),
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&progress)
	if result.Error != nil {
		log.Printf("Error creating progress: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create progress!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress already exists!", fiber.Map{"exists": true})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Progress created!", progress)
}

// CreateGeneralProgress fans a training out to every active employee of a
// department, marking them in progress. Pairs that already exist are left
// untouched, so calling it twice never duplicates rows.
func CreateGeneralProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGeneralProgress").(*struct {
		DepartmentID uint `json:"id_departamento"`
		TrainingID   uint `json:"id_treinamento"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ?", reqData.TrainingID).First(&models.Training{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	var employees []models.Employee
	if err := db.Where("department_id = ? AND status = ?", reqData.DepartmentID, models.EmployeeStatusActive).Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	if len(employees) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No employees found for this department!", nil)
	}

	rows := make([]models.Progress, len(employees))
	for i, emp := range employees {
		rows[i] = models.Progress{
			TrainingID: reqData.TrainingID,
			EmployeeID: emp.ID,
			Status:     models.ProgressStatusInProgress,
			StartedAt:  time.Now(),
		}
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		log.Printf("Error creating progress rows: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Progress created for %d employees.", result.RowsAffected), fiber.Map{
			"created": result.RowsAffected,
		})
}

// CompleteProgress finishes a training for an employee: it stores the
// uploaded certificate, marks the progress row completed with the final
// score, and credits wallet and lifetime points, all in one transaction.
// Points are credited exactly once; a completed row cannot be completed
// again.
func CompleteProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompletion").(*struct {
		TrainingID uint
		EmployeeID uint
		Score      int
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	certificate, err := c.FormFile("certificado")
	if err != nil || certificate == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"certificado": "Certificate file is required!",
		})
	}

	filename, err := utils.SaveUploadedFile(certificate, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error storing certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store certificate!", nil)
	}
	certificateURL := utils.GetFileURL(filename)

	delta := reqData.Score * config.AppConfig.PointsPerScore

	db := database.Database.Db
	tx := db.Begin()

	var progress models.Progress
	err = tx.Where("training_id = ? AND employee_id = ?", reqData.TrainingID, reqData.EmployeeID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}
	if err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finish progress!", nil)
	}

	if progress.Status == models.ProgressStatusCompleted {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Training already completed!", nil)
	}

	now := time.Now()
	result := tx.Model(&models.Progress{}).
		Where("training_id = ? AND employee_id = ? AND status <> ?",
			reqData.TrainingID, reqData.EmployeeID, models.ProgressStatusCompleted).
		Updates(map[string]interface{}{
			"status":          models.ProgressStatusCompleted,
			"final_score":     reqData.Score,
			"certificate_url": certificateURL,
			"completed_at":    now,
		})
	if result.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finish progress!", nil)
	}
	if result.RowsAffected == 0 {
		// Lost the race to a concurrent completion
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Training already completed!", nil)
	}

	if delta > 0 {
		err = tx.Model(&models.Employee{}).
			Where("id = ?", reqData.EmployeeID).
			Updates(map[string]interface{}{
				"wallet_points":   gorm.Expr("wallet_points + ?", delta),
				"lifetime_points": gorm.Expr("lifetime_points + ?", delta),
			}).Error
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to credit points!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finish progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress finished!", fiber.Map{
		"certificado_url":   certificateURL,
		"pontos_creditados": delta,
	})
}
