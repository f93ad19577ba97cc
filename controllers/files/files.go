package fileController

import (
	"os"
	"path/filepath"
	"traineasy/config"
	"traineasy/middleware"

	"github.com/gofiber/fiber/v2"
)

// DownloadCertificate forces a download of a stored certificate file.
// filepath.Base strips any path components, so the handler can only ever
// serve files from the upload directory.
func DownloadCertificate(c *fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	if filename == "." || filename == "/" || filename == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid filename!", nil)
	}

	path := filepath.Join(config.AppConfig.UploadDir, filename)
	if _, err := os.Stat(path); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	return c.Download(path)
}
