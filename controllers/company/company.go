package companyController

import (
	"log"
	"traineasy/config"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"
	"traineasy/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterCompany creates a new company pending approval
func RegisterCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		LegalName string `json:"razao_social"`
		TradeName string `json:"nome_fantasia"`
		Email     string `json:"email"`
		TaxID     string `json:"cnpj"`
		Password  string `json:"senha"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.Company{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	company := models.Company{
		LegalName: reqData.LegalName,
		TradeName: reqData.TradeName,
		Email:     reqData.Email,
		TaxID:     reqData.TaxID,
		Password:  string(hashedPassword),
		Status:    models.CompanyStatusPendingApproval,
	}

	if err := db.Create(&company).Error; err != nil {
		log.Printf("Error saving company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register company!", nil)
	}

	go utils.SendCompanyPendingEmail(company.Email, company.TradeName)

	company.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company registered successfully!", company)
}

// ListCompanies lists companies with optional name / status filters
func ListCompanies(c *fiber.Ctx) error {
	reqData := new(struct {
		Name   string `json:"nome"`
		Status int    `json:"status"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db.Model(&models.Company{})

	if reqData.Name != "" {
		like := "%" + reqData.Name + "%"
		db = db.Where("trade_name LIKE ? OR legal_name LIKE ?", like, like)
	}
	if reqData.Status != 0 {
		db = db.Where("status = ?", reqData.Status)
	}

	var companies []models.Company
	if err := db.Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	for i := range companies {
		companies[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", companies)
}

// UpdateCompany edits a company's registration data
func UpdateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompanyUpdate").(*struct {
		ID        uint   `json:"id"`
		LegalName string `json:"razao_social"`
		TradeName string `json:"nome_fantasia"`
		Email     string `json:"email"`
		TaxID     string `json:"cnpj"`
		Status    int    `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ?", reqData.ID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	company.LegalName = reqData.LegalName
	company.TradeName = reqData.TradeName
	company.Email = reqData.Email
	company.TaxID = reqData.TaxID
	if reqData.Status != 0 {
		company.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	company.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}
