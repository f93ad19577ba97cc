package reportController

import (
	"math"
	"time"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"

	"github.com/gofiber/fiber/v2"
)

// GetRanking returns the top 5 active employees of a company by lifetime
// points, descending. Soft-deleted employees never rank.
func GetRanking(c *fiber.Ctx) error {
	companyID := c.QueryInt("id_empresa")
	if companyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_empresa is required!", nil)
	}

	type rankedEmployee struct {
		Name           string `json:"nome"`
		LifetimePoints int    `json:"total_pontos"`
	}

	var ranking []rankedEmployee
	err := database.Database.Db.Model(&models.Employee{}).
		Select("employees.name, employees.lifetime_points").
		Joins("JOIN departments d ON employees.department_id = d.id").
		Where("d.company_id = ? AND employees.status = ?", companyID, models.EmployeeStatusActive).
		Order("employees.lifetime_points DESC").
		Limit(5).
		Scan(&ranking).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ranking!", nil)
	}

	if ranking == nil {
		ranking = []rankedEmployee{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ranking fetched successfully!", ranking)
}

// GetWalletPoints returns an employee's spendable balance, 0 when unknown
func GetWalletPoints(c *fiber.Ctx) error {
	employeeID := c.QueryInt("id_funcionario")
	if employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_funcionario is required!", nil)
	}

	var employee models.Employee
	if err := database.Database.Db.Where("id = ?", employeeID).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Points fetched!", fiber.Map{"pontos": 0})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Points fetched!", fiber.Map{
		"pontos": employee.WalletPoints,
	})
}

// GetCompanyStatistics builds the per-training rollups for a company:
// participants, completions, average score and completion percentage, plus
// company-wide totals. Everything is recomputed from the ledger on each
// request.
func GetCompanyStatistics(c *fiber.Ctx) error {
	companyID := c.QueryInt("id_empresa")
	if companyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id_empresa is required!", nil)
	}

	db := database.Database.Db

	var trainings []models.Training
	if err := db.Where("company_id = ?", companyID).Find(&trainings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	var totalEmployees int64
	err := db.Model(&models.Progress{}).
		Distinct("progresses.employee_id").
		Joins("JOIN trainings t ON t.id = progresses.training_id").
		Where("t.company_id = ?", companyID).
		Count(&totalEmployees).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	type trainingSummary struct {
		Title        string `json:"titulo"`
		Participants int    `json:"participantes"`
		Completed    int    `json:"concluidos"`
		AverageScore int    `json:"media_pontuacao"`
		Completion   int    `json:"conclusao"`
	}

	totalPoints := 0
	totalCompletionPct := 0
	summaries := make([]trainingSummary, 0, len(trainings))

	for _, t := range trainings {
		var rows []models.Progress
		if err := db.Where("training_id = ?", t.ID).Find(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
		}

		participants := len(rows)
		completed := 0
		scoreSum := 0
		for _, p := range rows {
			if p.Status == models.ProgressStatusCompleted {
				completed++
			}
			if p.FinalScore != nil {
				scoreSum += *p.FinalScore
			}
		}

		averageScore := 0
		completionPct := 0
		if participants > 0 {
			averageScore = int(math.Round(float64(scoreSum) / float64(participants)))
			completionPct = int(math.Round(float64(completed) / float64(participants) * 100))
		}

		totalPoints += scoreSum
		totalCompletionPct += completionPct

		summaries = append(summaries, trainingSummary{
			Title:        t.Title,
			Participants: participants,
			Completed:    completed,
			AverageScore: averageScore,
			Completion:   completionPct,
		})
	}

	averageCompletion := 0
	if len(trainings) > 0 {
		averageCompletion = int(math.Round(float64(totalCompletionPct) / float64(len(trainings))))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
		"totalFuncionarios": totalEmployees,
		"totalTreinamentos": len(trainings),
		"totalPontos":       totalPoints,
		"mediaConclusao":    averageCompletion,
		"treinamentos":      summaries,
	})
}

// FillCompanyDashboard returns the company dashboard counters: active
// employees, trainings inside their validity window, certificates issued
// and overall completion rate.
func FillCompanyDashboard(c *fiber.Ctx) error {
	companyID := c.QueryInt("id")
	if companyID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	var activeEmployees int64
	err := db.Model(&models.Employee{}).
		Joins("JOIN departments d ON employees.department_id = d.id").
		Where("d.company_id = ? AND employees.status = ?", companyID, models.EmployeeStatusActive).
		Count(&activeEmployees).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	// Null window bounds mean always active
	var activeTrainings int64
	err = db.Model(&models.Training{}).
		Where("company_id = ?", companyID).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date > ?", now).
		Count(&activeTrainings).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var certificatesIssued int64
	err = db.Model(&models.Progress{}).
		Joins("JOIN trainings t ON t.id = progresses.training_id").
		Where("t.company_id = ? AND progresses.status = ? AND progresses.certificate_url IS NOT NULL",
			companyID, models.ProgressStatusCompleted).
		Count(&certificatesIssued).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var totalProgress, completedProgress int64
	err = db.Model(&models.Progress{}).
		Joins("JOIN trainings t ON t.id = progresses.training_id").
		Where("t.company_id = ?", companyID).
		Count(&totalProgress).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}
	err = db.Model(&models.Progress{}).
		Joins("JOIN trainings t ON t.id = progresses.training_id").
		Where("t.company_id = ? AND progresses.status = ?", companyID, models.ProgressStatusCompleted).
		Count(&completedProgress).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	completionRate := 0.0
	if totalProgress > 0 {
		completionRate = math.Round(float64(completedProgress)/float64(totalProgress)*10000) / 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"funcionarios_ativos":   activeEmployees,
		"treinamentos_ativos":   activeTrainings,
		"certificados_emitidos": certificatesIssued,
		"taxa_conclusao":        completionRate,
	})
}

// FillEmployeeDashboard returns an employee's own dashboard counters
func FillEmployeeDashboard(c *fiber.Ctx) error {
	employeeID := c.QueryInt("id")
	if employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ?", employeeID).First(&models.Employee{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	var rows []models.Progress
	if err := db.Where("employee_id = ?", employeeID).Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	completed := 0
	certificates := 0
	scoreSum := 0
	for _, p := range rows {
		if p.Status == models.ProgressStatusCompleted {
			completed++
		}
		if p.CertificateURL != nil && *p.CertificateURL != "" {
			certificates++
		}
		if p.FinalScore != nil {
			scoreSum += *p.FinalScore
		}
	}

	completionRate := 0.0
	if len(rows) > 0 {
		completionRate = math.Round(float64(completed)/float64(len(rows))*10000) / 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"id_funcionario":            employeeID,
		"treinamentos_concluidos":   completed,
		"certificados_emitidos":     certificates,
		"pontos_acumulados":         scoreSum,
		"taxa_conclusao_percentual": completionRate,
	})
}

// FillProfile returns profile data for an employee (with company and
// department names) or a company
func FillProfile(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	userType := c.Query("tipo")
	if id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	db := database.Database.Db

	switch userType {
	case middleware.UserTypeEmployee:
		type employeeProfile struct {
			Name       string `json:"nome"`
			Company    string `json:"empresa"`
			Email      string `json:"email"`
			Department string `json:"funcao"`
		}
		var profile employeeProfile
		result := db.Model(&models.Employee{}).
			Select("employees.name, e.trade_name AS company, employees.email, d.name AS department").
			Joins("INNER JOIN departments d ON employees.department_id = d.id").
			Joins("INNER JOIN companies e ON d.company_id = e.id").
			Where("employees.id = ?", id).
			Scan(&profile)
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)

	case middleware.UserTypeCompany:
		var company models.Company
		if err := db.Where("id = ?", id).First(&company).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		company.Password = ""
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", company)

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user type!", nil)
	}
}

// GetCourses lists an employee's trainings joined with their progress, or a
// company's trainings
func GetCourses(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	userType := c.Query("tipo")
	if id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	db := database.Database.Db

	switch userType {
	case middleware.UserTypeEmployee:
		type employeeCourse struct {
			ID          uint   `json:"id"`
			Title       string `json:"titulo"`
			Description string `json:"descricao"`
			ProgressID  uint   `json:"progresso"`
			Status      string `json:"status"`
		}
		var courses []employeeCourse
		err := db.Model(&models.Training{}).
			Select("trainings.id, trainings.title, trainings.description, p.id AS progress_id, p.status").
			Joins("INNER JOIN progresses p ON trainings.id = p.training_id").
			Where("p.employee_id = ?", id).
			Scan(&courses).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
		}
		if len(courses) == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No trainings found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully!", courses)

	case middleware.UserTypeCompany:
		var trainings []models.Training
		if err := db.Where("company_id = ?", id).Find(&trainings).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
		}
		if len(trainings) == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No trainings found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully!", trainings)

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user type!", nil)
	}
}

// GetCoursesStatistics summarizes an employee's points, completions and
// certificates, or a company's training and certificate counts
func GetCoursesStatistics(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	userType := c.Query("tipo")
	if id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	db := database.Database.Db

	switch userType {
	case middleware.UserTypeEmployee:
		var employee models.Employee
		if err := db.Where("id = ?", id).First(&employee).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
		}

		var completed int64
		if err := db.Model(&models.Progress{}).Where("employee_id = ? AND status = ?", id, models.ProgressStatusCompleted).Count(&completed).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
		}

		var certificates int64
		if err := db.Model(&models.Progress{}).Where("employee_id = ? AND certificate_url IS NOT NULL", id).Count(&certificates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
			"pontos":               employee.LifetimePoints,
			"cursos_concluidos":    completed,
			"certificados_obtidos": certificates,
		})

	case middleware.UserTypeCompany:
		var trainings int64
		if err := db.Model(&models.Training{}).Where("company_id = ?", id).Count(&trainings).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
		}

		var certificates int64
		err := db.Model(&models.Progress{}).
			Joins("JOIN trainings t ON t.id = progresses.training_id").
			Where("t.company_id = ? AND progresses.certificate_url IS NOT NULL", id).
			Count(&certificates).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
			"treinamentos":         trainings,
			"certificados_obtidos": certificates,
		})

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user type!", nil)
	}
}

// GetCompanyData returns a company's display name
func GetCompanyData(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	if id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ?", id).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully!", fiber.Map{
		"nome": company.TradeName,
	})
}

// CountTrainings returns how many trainings a company has published
func CountTrainings(c *fiber.Ctx) error {
	id := c.QueryInt("id")
	if id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "id is required!", nil)
	}

	var count int64
	if err := database.Database.Db.Model(&models.Training{}).Where("company_id = ?", id).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count trainings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings counted successfully!", fiber.Map{
		"treinamentos": count,
	})
}

// ListCertificates lists an employee's completed trainings with their
// certificate URLs
func ListCertificates(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id_funcionario")
	if err != nil || employeeID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid employee id!", nil)
	}

	type certificateRow struct {
		TrainingTitle  string  `json:"nomeTreinamento"`
		TrainingID     uint    `json:"idTreinamento"`
		CertificateURL *string `json:"imagem"`
	}

	var certificates []certificateRow
	err = database.Database.Db.Model(&models.Progress{}).
		Select("t.title AS training_title, progresses.training_id, progresses.certificate_url").
		Joins("JOIN trainings t ON progresses.training_id = t.id").
		Where("progresses.employee_id = ? AND progresses.status = ?", employeeID, models.ProgressStatusCompleted).
		Scan(&certificates).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	if certificates == nil {
		certificates = []certificateRow{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}
