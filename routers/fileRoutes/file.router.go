package fileRoutes

import (
	fileController "traineasy/controllers/files"

	"github.com/gofiber/fiber/v2"
)

// SetupFileRoutes sets up the certificate download route
func SetupFileRoutes(app *fiber.App) {
	app.Get("/download/:filename", fileController.DownloadCertificate)
}
