package controllers

import (
	"errors"

	"lms/database"
	"lms/grading"
	"lms/middleware"
	"lms/models"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
)

// RecordAttempt is the instructor grade-entry path. Unlike the student
// submission route it permits repeat attempts, numbering them sequentially.
func RecordAttempt(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttempt").(*struct {
		UserID         uint                   `json:"user_id"`
		AssessmentType string                 `json:"assessment_type"`
		AssessmentID   uint                   `json:"assessment_id"`
		Earned         int                    `json:"earned"`
		MaxScore       int                    `json:"max_score"`
		Percentage     int                    `json:"percentage"`
		Answers        map[string]interface{} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Check the student exists
	var student models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var sub grading.Submission
	if reqData.Answers != nil {
		sub = grading.Submission(reqData.Answers)
	}

	svc := grading.NewService(database.Database.Db)
	grade, err := svc.RecordAttempt(reqData.UserID, reqData.AssessmentType, reqData.AssessmentID,
		reqData.Earned, reqData.MaxScore, reqData.Percentage, sub)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record grade!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Grade recorded successfully!", grade)
}

// ListGrades returns all grades for an assessment
func ListGrades(c *fiber.Ctx) error {
	assessmentType := c.Query("assessment_type")
	assessmentID := c.QueryInt("assessment_id", 0)

	if (assessmentType != quizModels.AssessmentQuiz && assessmentType != quizModels.AssessmentWorkshop) || assessmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assessment!", nil)
	}

	var grades []quizModels.Grade
	err := database.Database.Db.Where("assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
		assessmentType, assessmentID, false).
		Order("completed_at desc").
		Find(&grades).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch grades!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grades fetched successfully!", grades)
}

// AuditGrade recomputes a stored grade from its retained submission and
// reports any drift. Read-only; use ReconcileGrades to repair.
func AuditGrade(c *fiber.Ctx) error {
	gradeID := c.Locals("gradeID").(int)

	svc := grading.NewService(database.Database.Db)
	result, err := svc.Audit(uint(gradeID))
	if err != nil {
		if errors.Is(err, grading.ErrGradeNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Grade record not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to audit grade!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audit completed!", result)
}

// ReconcileGrades runs the batch reconciliation job and reports its counts
func ReconcileGrades(c *fiber.Ctx) error {
	svc := grading.NewService(database.Database.Db)
	report, err := svc.ReconcileAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Reconciliation failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reconciliation completed!", report)
}
