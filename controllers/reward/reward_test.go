package rewardController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"traineasy/config"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"
	rewardValidator "traineasy/validators/reward"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite database and installs it as
// the global instance used by the handlers.
func setupTestDB(t *testing.T) *gorm.DB {
	config.AppConfig = &config.Config{
		Port:           "3000",
		JWTKey:         "test-secret",
		SaltRound:      4,
		UploadDir:      t.TempDir(),
		PointsPerScore: 500,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Company{},
		&models.Department{},
		&models.Employee{},
		&models.Training{},
		&models.Progress{},
		&models.Reward{},
		&models.Redemption{},
	)
	require.NoError(t, err, "failed to migrate test database")

	database.Database = database.DbInstance{Db: db}
	return db
}

func setupTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/resgatar", middleware.JWTMiddleware, rewardValidator.RedeemReward(), RedeemReward)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	token, err := middleware.GenerateJWT(1, middleware.UserTypeEmployee, "Tester")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func seedCompanyWithEmployee(t *testing.T, db *gorm.DB, email string, walletPoints int) (models.Company, models.Employee) {
	company := models.Company{LegalName: email + " LTDA", TradeName: email, Email: email, TaxID: "1", Password: "x", Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&company).Error)
	department := models.Department{CompanyID: company.ID, Name: "Ops"}
	require.NoError(t, db.Create(&department).Error)
	employee := models.Employee{
		DepartmentID: department.ID,
		Name:         "Worker",
		Email:        "worker-" + email,
		Password:     "x",
		Status:       models.EmployeeStatusActive,
		WalletPoints: walletPoints,
	}
	require.NoError(t, db.Create(&employee).Error)
	return company, employee
}

func TestRedeemRewardInsufficientPoints(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, employee := seedCompanyWithEmployee(t, db, "acme@example.com", 400)
	reward := models.Reward{CompanyID: company.ID, Name: "Mug", Description: "Coffee mug", PointPrice: 500, Quantity: 10}
	require.NoError(t, db.Create(&reward).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resgatar", fiber.Map{
		"id_funcionario": employee.ID,
		"id_recompensa":  reward.ID,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 400, refreshed.WalletPoints, "wallet unchanged")

	var count int64
	require.NoError(t, db.Model(&models.Redemption{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no redemption recorded")
}

func TestRedeemRewardExactBalance(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, employee := seedCompanyWithEmployee(t, db, "acme@example.com", 500)
	reward := models.Reward{CompanyID: company.ID, Name: "Mug", Description: "Coffee mug", PointPrice: 500, Quantity: 10}
	require.NoError(t, db.Create(&reward).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resgatar", fiber.Map{
		"id_funcionario": employee.ID,
		"id_recompensa":  reward.ID,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 0, refreshed.WalletPoints, "wallet reaches exactly zero")

	var redemptions []models.Redemption
	require.NoError(t, db.Find(&redemptions).Error)
	require.Len(t, redemptions, 1)
	assert.Equal(t, employee.ID, redemptions[0].EmployeeID)
	assert.Equal(t, reward.ID, redemptions[0].RewardID)
}

func TestRedeemRewardOwnershipMismatch(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	// Reward belongs to one company, the employee to another
	rewardOwner, _ := seedCompanyWithEmployee(t, db, "owner@example.com", 0)
	_, employee := seedCompanyWithEmployee(t, db, "other@example.com", 10000)

	reward := models.Reward{CompanyID: rewardOwner.ID, Name: "Mug", Description: "Coffee mug", PointPrice: 500, Quantity: 10}
	require.NoError(t, db.Create(&reward).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resgatar", fiber.Map{
		"id_funcionario": employee.ID,
		"id_recompensa":  reward.ID,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "mismatch rejected regardless of balance")

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 10000, refreshed.WalletPoints, "wallet unchanged")

	var count int64
	require.NoError(t, db.Model(&models.Redemption{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRedeemRewardNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	_, employee := seedCompanyWithEmployee(t, db, "acme@example.com", 500)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resgatar", fiber.Map{
		"id_funcionario": employee.ID,
		"id_recompensa":  999,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRedeemRewardEmployeeNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, _ := seedCompanyWithEmployee(t, db, "acme@example.com", 500)
	reward := models.Reward{CompanyID: company.ID, Name: "Mug", Description: "Coffee mug", PointPrice: 500, Quantity: 10}
	require.NoError(t, db.Create(&reward).Error)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/resgatar", fiber.Map{
		"id_funcionario": 999,
		"id_recompensa":  reward.ID,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
