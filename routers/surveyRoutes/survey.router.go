package surveyRoutes

import (
	controllers "lms/controllers/survey"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/survey"

	"github.com/gofiber/fiber/v2"
)

// SetupSurveyRoutes sets up satisfaction survey routes
func SetupSurveyRoutes(app *fiber.App) {
	surveyGroup := app.Group("/survey")

	surveyGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CreateSurvey(), controllers.CreateSurvey)
	surveyGroup.Post("/:id/response", middleware.JWTMiddleware, validators.SurveyID(), validators.SubmitResponse(), controllers.SubmitResponse)
	surveyGroup.Get("/:id/results", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.SurveyID(), controllers.GetSurveyResults)
}
