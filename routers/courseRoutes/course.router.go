package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Course management (trainer/admin)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CourseID(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), controllers.DeleteCourse)

	// Activities (trainer/admin)
	courseGroup.Post("/:id/activity", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.CourseID(), validators.CreateActivity(), controllers.CreateActivity)
	courseGroup.Put("/activity/:activity_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.UpdateActivity)
	courseGroup.Delete("/activity/:activity_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.DeleteActivity)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
