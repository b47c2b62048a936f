package quizRoutes

import (
	controllers "lms/controllers/quiz"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz and workshop routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	quizGroup.Get("/list", middleware.JWTMiddleware, controllers.ListQuizzes)
	quizGroup.Get("/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.GetQuiz)

	// Quiz management (trainer/admin)
	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CreateQuiz(), controllers.CreateQuiz)
	quizGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.QuizID(), controllers.UpdateQuiz)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.QuizID(), controllers.DeleteQuiz)
	quizGroup.Post("/:id/question", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.QuizID(), validators.CreateQuestion(), controllers.AddQuizQuestion)

	// Student submission (single attempt) and own grade
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.QuizID(), validators.SubmitAnswers(), controllers.SubmitQuiz)
	quizGroup.Get("/:id/grade", middleware.JWTMiddleware, validators.QuizID(), controllers.GetMyQuizGrade)

	workshopGroup := app.Group("/workshop")

	workshopGroup.Get("/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.GetWorkshop)
	workshopGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CreateQuiz(), controllers.CreateWorkshop)
	workshopGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.QuizID(), controllers.DeleteWorkshop)
	workshopGroup.Post("/:id/question", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.QuizID(), validators.CreateQuestion(), controllers.AddWorkshopQuestion)

	workshopGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.QuizID(), validators.SubmitAnswers(), controllers.SubmitWorkshop)
	workshopGroup.Get("/:id/grade", middleware.JWTMiddleware, validators.QuizID(), controllers.GetMyWorkshopGrade)

	// Question editing (trainer/admin)
	questionGroup := app.Group("/question")
	questionGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.UpdateQuestion)
	questionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.DeleteQuestion)
}
