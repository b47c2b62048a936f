package uploadRoutes

import (
	controllers "lms/controllers/upload"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up file upload routes
func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/upload")

	uploadGroup.Post("/", middleware.JWTMiddleware, controllers.UploadFile)
	uploadGroup.Get("/mine", middleware.JWTMiddleware, controllers.ListMyUploads)
}
