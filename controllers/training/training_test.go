package trainingController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"traineasy/config"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"
	trainingValidator "traineasy/validators/training"

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
	app.Post("/salvar-treinamento", middleware.JWTMiddleware, trainingValidator.CreateTraining(), CreateTraining)
	app.Post("/removerTreinamento", middleware.JWTMiddleware, DeleteTraining)
	return app
}

func authHeader(t *testing.T) string {
	token, err := middleware.GenerateJWT(1, middleware.UserTypeCompany, "Tester")
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t))
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func seedDepartment(t *testing.T, db *gorm.DB) (models.Company, models.Department) {
	company := models.Company{
		LegalName: "Acme LTDA",
		TradeName: "Acme",
		Email:     "acme@example.com",
		TaxID:     "00.000.000/0001-00",
		Password:  "x",
		Status:    models.CompanyStatusActive,
	}
	require.NoError(t, db.Create(&company).Error)

	department := models.Department{CompanyID: company.ID, Name: "Sales", Description: "Sales team"}
	require.NoError(t, db.Create(&department).Error)

	return company, department
}

func TestCreateTrainingFansOutToActiveEmployees(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, department := seedDepartment(t, db)

	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		emp := models.Employee{
			DepartmentID: department.ID,
			Name:         "Employee",
			Email:        email,
			Password:     "x",
			Status:       models.EmployeeStatusActive,
		}
		require.NoError(t, db.Create(&emp).Error, "employee %d", i)
	}
	// Soft-deleted employees must not be assigned
	inactive := models.Employee{
		DepartmentID: department.ID,
		Name:         "Gone",
		Email:        "gone@example.com",
		Password:     "x",
		Status:       models.EmployeeStatusDeleted,
	}
	require.NoError(t, db.Create(&inactive).Error)

	req := jsonRequest(t, http.MethodPost, "/salvar-treinamento", fiber.Map{
		"id_empresa":      company.ID,
		"id_departamento": department.ID,
		"titulo":          "Safety basics",
		"descricao":       "Mandatory onboarding",
		"conteudo_json":   fiber.Map{"resumo": "summary", "quiz": []string{}},
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var rows []models.Progress
	require.NoError(t, db.Find(&rows).Error)
	assert.Len(t, rows, 3, "one progress row per active employee")
	for _, p := range rows {
		assert.Equal(t, models.ProgressStatusPending, p.Status)
	}

	var training models.Training
	require.NoError(t, db.First(&training).Error)
	for _, p := range rows {
		assert.Equal(t, training.ID, p.TrainingID)
	}
}

func TestCreateTrainingWithEmptyDepartment(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, department := seedDepartment(t, db)

	req := jsonRequest(t, http.MethodPost, "/salvar-treinamento", fiber.Map{
		"id_empresa":      company.ID,
		"id_departamento": department.ID,
		"titulo":          "Lonely training",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, "empty department is not an error")

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["status"])
	assert.Contains(t, envelope["message"], "no employees")

	var trainingCount, progressCount int64
	require.NoError(t, db.Model(&models.Training{}).Count(&trainingCount).Error)
	require.NoError(t, db.Model(&models.Progress{}).Count(&progressCount).Error)
	assert.EqualValues(t, 1, trainingCount, "training persists")
	assert.EqualValues(t, 0, progressCount, "no progress rows created")
}

func TestCreateTrainingMissingTitle(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	company, department := seedDepartment(t, db)

	req := jsonRequest(t, http.MethodPost, "/salvar-treinamento", fiber.Map{
		"id_empresa":      company.ID,
		"id_departamento": department.ID,
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var trainingCount int64
	require.NoError(t, db.Model(&models.Training{}).Count(&trainingCount).Error)
	assert.EqualValues(t, 0, trainingCount)
}

func TestDeleteTrainingCascadesProgress(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	_, department := seedDepartment(t, db)

	emp := models.Employee{DepartmentID: department.ID, Email: "a@example.com", Password: "x", Status: models.EmployeeStatusActive}
	require.NoError(t, db.Create(&emp).Error)

	training := models.Training{CompanyID: department.CompanyID, DepartmentID: department.ID, Title: "Doomed"}
	require.NoError(t, db.Create(&training).Error)
	progress := models.Progress{TrainingID: training.ID, EmployeeID: emp.ID, Status: models.ProgressStatusPending}
	require.NoError(t, db.Create(&progress).Error)

	req := jsonRequest(t, http.MethodPost, "/removerTreinamento", fiber.Map{"id": training.ID})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var trainingCount, progressCount int64
	require.NoError(t, db.Model(&models.Training{}).Count(&trainingCount).Error)
	require.NoError(t, db.Model(&models.Progress{}).Count(&progressCount).Error)
	assert.EqualValues(t, 0, trainingCount)
	assert.EqualValues(t, 0, progressCount, "no orphaned progress rows")
}

func TestDeleteTrainingNotFound(t *testing.T) {
	setupTestDB(t)
	app := setupTestApp()

	req := jsonRequest(t, http.MethodPost, "/removerTreinamento", fiber.Map{"id": 999})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
