package departmentController

import (
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"

	"github.com/gofiber/fiber/v2"
)

// CreateDepartment adds a department to a company
func CreateDepartment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDepartment").(*struct {
		CompanyID   uint   `json:"id_empresa"`
		Name        string `json:"nome"`
		Description string `json:"descritivo"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("id = ?", reqData.CompanyID).First(&models.Company{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	department := models.Department{
		CompanyID:   reqData.CompanyID,
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&department).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create department!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Department created successfully!", department)
}

// ListDepartments lists departments, optionally scoped to one company
func ListDepartments(c *fiber.Ctx) error {
	reqData := new(struct {
		CompanyID uint `json:"id_empresa"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db.Model(&models.Department{})
	if reqData.CompanyID != 0 {
		db = db.Where("company_id = ?", reqData.CompanyID)
	}

	var departments []models.Department
	if err := db.Find(&departments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch departments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Departments fetched successfully!", departments)
}

// UpdateDepartment edits a department's name and description
func UpdateDepartment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDepartmentUpdate").(*struct {
		ID          uint   `json:"id"`
		Name        string `json:"nome"`
		Description string `json:"descritivo"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Department{}).
		Where("id = ?", reqData.ID).
		Updates(map[string]interface{}{
			"name":        reqData.Name,
			"description": reqData.Description,
		})

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update department!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Department updated successfully!", nil)
}
