package employeeController

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

// CreateEmployee registers an employee under a department
func CreateEmployee(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEmployee").(*struct {
		Email        string `json:"email"`
		Password     string `json:"senha"`
		DepartmentID uint   `json:"id_departamento"`
		Name         string `json:"nome"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ?", reqData.DepartmentID).First(&models.Department{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Department not found!", nil)
	}

	if err := db.Where("email = ?", reqData.Email).First(&models.Employee{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	employee := models.Employee{
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		DepartmentID: reqData.DepartmentID,
		Name:         reqData.Name,
		Status:       models.EmployeeStatusActive,
	}

	if err := db.Create(&employee).Error; err != nil {
		log.Printf("Error saving employee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register employee!", nil)
	}

	go utils.SendWelcomeEmail(employee.Email, employee.Name)

	employee.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Employee registered successfully!", employee)
}

// ListEmployees lists active employees, optionally scoped to one department
func ListEmployees(c *fiber.Ctx) error {
	reqData := new(struct {
		DepartmentID uint `json:"id"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db.Model(&models.Employee{})
	if reqData.DepartmentID != 0 {
		db = db.Where("department_id = ? AND status = ?", reqData.DepartmentID, models.EmployeeStatusActive)
	}

	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	for i := range employees {
		employees[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employees fetched successfully!", employees)
}

// UpdateEmployee edits an employee's name and email
func UpdateEmployee(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEmployeeUpdate").(*struct {
		ID    uint   `json:"id"`
		Name  string `json:"nome"`
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Employee{}).
		Where("id = ?", reqData.ID).
		Updates(map[string]interface{}{
			"name":  reqData.Name,
			"email": reqData.Email,
		})

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update employee!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee updated successfully!", nil)
}

// DeleteEmployee soft-deletes an employee by flipping its status. The row is
// never removed so progress and redemption history stay intact.
func DeleteEmployee(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.ID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result := database.Database.Db.Model(&models.Employee{}).
		Where("id = ?", reqData.ID).
		Update("status", models.EmployeeStatusDeleted)

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete employee!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee deleted successfully!", nil)
}
