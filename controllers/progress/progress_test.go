package progressController

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"traineasy/config"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"
	progressValidator "traineasy/validators/progress"

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
	app.Post("/status", middleware.JWTMiddleware, progressValidator.ProgressPair(), CheckStatus)
	app.Post("/criar_progresso", middleware.JWTMiddleware, progressValidator.ProgressPair(), CreateProgress)
	app.Post("/criar_progresso_geral", middleware.JWTMiddleware, progressValidator.GeneralProgress(), CreateGeneralProgress)
	app.Patch("/finalizar_progresso", middleware.JWTMiddleware, progressValidator.CompleteProgress(), CompleteProgress)
	return app
}

func authHeader(t *testing.T) string {
	token, err := middleware.GenerateJWT(1, middleware.UserTypeEmployee, "Tester")
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

// completionRequest builds the multipart completion form; withCertificate
// controls whether the certificate file part is attached.
func completionRequest(t *testing.T, trainingID, employeeID uint, score int, withCertificate bool) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	require.NoError(t, writer.WriteField("id_treinamento", strconv.Itoa(int(trainingID))))
	require.NoError(t, writer.WriteField("id_funcionario", strconv.Itoa(int(employeeID))))
	require.NoError(t, writer.WriteField("nova_pontuacao", strconv.Itoa(score)))

	if withCertificate {
		part, err := writer.CreateFormFile("certificado", "certificate.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake png bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/finalizar_progresso", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
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

func seedEmployeeWithTraining(t *testing.T, db *gorm.DB) (models.Employee, models.Training) {
	company := models.Company{LegalName: "Acme LTDA", TradeName: "Acme", Email: "acme@example.com", TaxID: "1", Password: "x", Status: models.CompanyStatusActive}
	require.NoError(t, db.Create(&company).Error)
	department := models.Department{CompanyID: company.ID, Name: "Ops"}
	require.NoError(t, db.Create(&department).Error)
	employee := models.Employee{DepartmentID: department.ID, Name: "Alice", Email: "alice@example.com", Password: "x", Status: models.EmployeeStatusActive}
	require.NoError(t, db.Create(&employee).Error)
	training := models.Training{CompanyID: company.ID, DepartmentID: department.ID, Title: "Basics"}
	require.NoError(t, db.Create(&training).Error)
	return employee, training
}

func TestCreateProgressIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)

	body := fiber.Map{"id_treinamento": training.ID, "id_funcionario": employee.ID}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/criar_progresso", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/criar_progresso", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "second call reports exists")

	envelope := decodeEnvelope(t, resp)
	assert.Contains(t, envelope["message"], "already exists")

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one row after both calls")

	var progress models.Progress
	require.NoError(t, db.First(&progress).Error)
	assert.Equal(t, models.ProgressStatusInProgress, progress.Status)
}

func TestCheckStatusReflectsExistence(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)

	body := fiber.Map{"id_treinamento": training.ID, "id_funcionario": employee.ID}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/status", body), -1)
	require.NoError(t, err)
	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["exists"])

	require.NoError(t, db.Create(&models.Progress{
		TrainingID: training.ID,
		EmployeeID: employee.ID,
		Status:     models.ProgressStatusInProgress,
	}).Error)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/status", body), -1)
	require.NoError(t, err)
	envelope = decodeEnvelope(t, resp)
	data = envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["exists"])
}

func TestCreateGeneralProgressSkipsExistingPairs(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)

	second := models.Employee{DepartmentID: employee.DepartmentID, Name: "Bob", Email: "bob@example.com", Password: "x", Status: models.EmployeeStatusActive}
	require.NoError(t, db.Create(&second).Error)

	body := fiber.Map{"id_departamento": employee.DepartmentID, "id_treinamento": training.ID}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/criar_progresso_geral", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second invocation must not duplicate pairs
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/criar_progresso_geral", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "one row per employee after repeated fan-out")
}

func TestCompleteProgressRequiresCertificate(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)
	require.NoError(t, db.Create(&models.Progress{
		TrainingID: training.ID,
		EmployeeID: employee.ID,
		Status:     models.ProgressStatusInProgress,
	}).Error)

	resp, err := app.Test(completionRequest(t, training.ID, employee.ID, 2, false), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var progress models.Progress
	require.NoError(t, db.First(&progress).Error)
	assert.Equal(t, models.ProgressStatusInProgress, progress.Status, "no mutation without certificate")
	assert.Nil(t, progress.FinalScore)
	assert.Nil(t, progress.CertificateURL)

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 0, refreshed.WalletPoints, "no points credited")
}

func TestCompleteProgressRejectsNegativeScore(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)
	require.NoError(t, db.Create(&models.Progress{
		TrainingID: training.ID,
		EmployeeID: employee.ID,
		Status:     models.ProgressStatusInProgress,
	}).Error)

	resp, err := app.Test(completionRequest(t, training.ID, employee.ID, -1, true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCompleteProgressCreditsPointsOnce(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)
	require.NoError(t, db.Create(&models.Progress{
		TrainingID: training.ID,
		EmployeeID: employee.ID,
		Status:     models.ProgressStatusInProgress,
	}).Error)

	resp, err := app.Test(completionRequest(t, training.ID, employee.ID, 2, true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 1000, refreshed.WalletPoints, "score 2 at 500 points per unit")
	assert.Equal(t, 1000, refreshed.LifetimePoints)

	var progress models.Progress
	require.NoError(t, db.First(&progress).Error)
	assert.Equal(t, models.ProgressStatusCompleted, progress.Status)
	require.NotNil(t, progress.FinalScore)
	assert.Equal(t, 2, *progress.FinalScore)
	require.NotNil(t, progress.CertificateURL)
	assert.NotEmpty(t, *progress.CertificateURL)

	// Completing again must not double-credit
	resp, err = app.Test(completionRequest(t, training.ID, employee.ID, 2, true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 1000, refreshed.WalletPoints, "points credited exactly once")
	assert.Equal(t, 1000, refreshed.LifetimePoints)
}

func TestCompleteProgressNotFound(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)

	resp, err := app.Test(completionRequest(t, training.ID, employee.ID, 1, true), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var refreshed models.Employee
	require.NoError(t, db.First(&refreshed, employee.ID).Error)
	assert.Equal(t, 0, refreshed.WalletPoints)
}

func TestCompletedProgressReadIsStable(t *testing.T) {
	db := setupTestDB(t)
	app := setupTestApp()

	employee, training := seedEmployeeWithTraining(t, db)
	require.NoError(t, db.Create(&models.Progress{
		TrainingID: training.ID,
		EmployeeID: employee.ID,
		Status:     models.ProgressStatusInProgress,
	}).Error)

	resp, err := app.Test(completionRequest(t, training.ID, employee.ID, 3, true), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := fiber.Map{"id_treinamento": training.ID, "id_funcionario": employee.ID}

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/status", body), -1)
	require.NoError(t, err)
	first := decodeEnvelope(t, resp)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/status", body), -1)
	require.NoError(t, err)
	second := decodeEnvelope(t, resp)

	assert.Equal(t, first, second, "reads have no side effects")

	var progress models.Progress
	require.NoError(t, db.First(&progress).Error)
	assert.Equal(t, models.ProgressStatusCompleted, progress.Status)
}
