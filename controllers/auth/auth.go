package authController

import (
	"errors"
	"log"
	"traineasy/database"
	"traineasy/middleware"
	"traineasy/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login verifies a credential against employees first, then companies, and
// returns the principal's identity with a signed token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var employee models.Employee
	err := db.Where("email = ? AND status = ?", reqData.Email, models.EmployeeStatusActive).First(&employee).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(reqData.Password)) != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect password!", nil)
		}

		token, err := middleware.GenerateJWT(employee.ID, middleware.UserTypeEmployee, employee.Name)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
			"tipo":  middleware.UserTypeEmployee,
			"id":    employee.ID,
			"nome":  employee.Name,
			"token": token,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error looking up employee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// No employee with that email, try companies
	var company models.Company
	err = db.Where("email = ?", reqData.Email).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if err != nil {
		log.Printf("Error looking up company: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(reqData.Password)) != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Incorrect password!", nil)
	}

	token, err := middleware.GenerateJWT(company.ID, middleware.UserTypeCompany, company.TradeName)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"tipo":    middleware.UserTypeCompany,
		"id":      company.ID,
		"usuario": company.TradeName,
		"token":   token,
	})
}
