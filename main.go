package main

import (
	"log"
	"traineasy/config"
	"traineasy/database"
	authRoutes "traineasy/routers/authRoutes"
	companyRoutes "traineasy/routers/companyRoutes"
	departmentRoutes "traineasy/routers/departmentRoutes"
	employeeRoutes "traineasy/routers/employeeRoutes"
	fileRoutes "traineasy/routers/fileRoutes"
	progressRoutes "traineasy/routers/progressRoutes"
	reportRoutes "traineasy/routers/reportRoutes"
	rewardRoutes "traineasy/routers/rewardRoutes"
	trainingRoutes "traineasy/routers/trainingRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded certificates are served directly by generated filename
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	departmentRoutes.SetupDepartmentRoutes(app)
	employeeRoutes.SetupEmployeeRoutes(app)
	trainingRoutes.SetupTrainingRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	rewardRoutes.SetupRewardRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	fileRoutes.SetupFileRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
