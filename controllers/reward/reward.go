package rewardController

import (
	"errors"
	"log"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateReward adds a reward to a company's catalog
func CreateReward(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReward").(*struct {
		Name        string `json:"nome"`
		Description string `json:"descricao"`
		PointPrice  int    `json:"preco_pontos"`
		CompanyID   uint   `json:"id_empresa"`
		Quantity    int    `json:"quantidade"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("id = ?", reqData.CompanyID).First(&models.Company{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reward := models.Reward{
		CompanyID:   reqData.CompanyID,
		Name:        reqData.Name,
		Description: reqData.Description,
		PointPrice:  reqData.PointPrice,
		Quantity:    reqData.Quantity,
	}

	if err := database.Database.Db.Create(&reward).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reward!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reward created successfully!", reward)
}

// ListRewards lists a company's catalog, either directly by company or
// resolved through an employee's department
func ListRewards(c *fiber.Ctx) error {
	companyID := c.QueryInt("id_empresa")
	employeeID := c.QueryInt("id_funcionario")

	db := database.Database.Db
	var rewards []models.Reward

	if companyID > 0 {
		if err := db.Where("company_id = ?", companyID).Find(&rewards).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rewards!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Rewards fetched successfully!", rewards)
	}

	if employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_empresa or id_funcionario is required!", nil)
	}

	err := db.
		Joins("JOIN departments d ON rewards.company_id = d.company_id").
		Joins("JOIN employees f ON f.department_id = d.id").
		Where("f.id = ?", employeeID).
		Find(&rewards).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rewards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rewards fetched successfully!", rewards)
}

// UpdateReward edits a catalog entry
func UpdateReward(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reward id!", nil)
	}

	reqData, ok := c.Locals("validatedRewardUpdate").(*struct {
		Name        string `json:"nome"`
		Description string `json:"descricao"`
		PointPrice  int    `json:"preco_pontos"`
		Quantity    int    `json:"quantidade_disponivel"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Reward{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        reqData.Name,
			"description": reqData.Description,
			"point_price": reqData.PointPrice,
			"quantity":    reqData.Quantity,
		})

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reward!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reward not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reward updated successfully!", nil)
}

// DeleteReward removes a catalog entry. Past redemptions keep their reward
// id; the redemption ledger is never touched.
func DeleteReward(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reward id!", nil)
	}

	result := database.Database.Db.Unscoped().Where("id = ?", id).Delete(&models.Reward{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete reward!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reward not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reward deleted successfully!", nil)
}

// RedeemReward exchanges wallet points for a reward. Checks run in order,
// each with its own error: reward exists, employee exists, balance covers
// the price, reward belongs to the employee's company. The debit and the
// redemption record commit together, and the debit re-checks the balance in
// SQL so two concurrent redemptions cannot both pass the check.
func RedeemReward(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRedemption").(*struct {
		EmployeeID uint `json:"id_funcionario"`
		RewardID   uint `json:"id_recompensa"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var reward models.Reward
	err := db.Where("id = ?", reqData.RewardID).First(&reward).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reward not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reward!", nil)
	}

	var employee models.Employee
	err = db.Where("id = ? AND status = ?", reqData.EmployeeID, models.EmployeeStatusActive).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employee!", nil)
	}

	if employee.WalletPoints < reward.PointPrice {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient points!", nil)
	}

	// Resolve the employee's company through its department
	var department models.Department
	if err := db.Where("id = ?", employee.DepartmentID).First(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employee!", nil)
	}
	if department.CompanyID != reward.CompanyID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reward does not belong to the employee's company!", nil)
	}

	tx := db.Begin()

	// Conditional debit: the WHERE clause re-checks the balance so the
	// wallet can never go negative
	result := tx.Model(&models.Employee{}).
		Where("id = ? AND wallet_points >= ?", employee.ID, reward.PointPrice).
		Update("wallet_points", gorm.Expr("wallet_points - ?", reward.PointPrice))
	if result.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to debit points!", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient points!", nil)
	}

	redemption := models.Redemption{
		EmployeeID: employee.ID,
		RewardID:   reward.ID,
	}
	if err := tx.Create(&redemption).Error; err != nil {
		tx.Rollback()
		log.Printf("Error recording redemption: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record redemption!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record redemption!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reward redeemed successfully!", fiber.Map{
		"id_resgate":       redemption.ID,
		"pontos_restantes": employee.WalletPoints - reward.PointPrice,
	})
}
