package gradeRoutes

import (
	controllers "lms/controllers/grades"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/grades"

	"github.com/gofiber/fiber/v2"
)

// SetupGradeRoutes sets up grade entry, audit and reconciliation routes
func SetupGradeRoutes(app *fiber.App) {
	gradeGroup := app.Group("/grades")

	// Instructor grade entry (multi-attempt path)
	gradeGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), validators.RecordAttempt(), controllers.RecordAttempt)
	gradeGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer, models.RoleAdmin), controllers.ListGrades)

	// Audit and reconciliation (admin)
	adminGroup := app.Group("/admin/grades")
	adminGroup.Get("/:id/audit", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.GradeID(), controllers.AuditGrade)
	adminGroup.Post("/reconcile", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.ReconcileGrades)
}
