package controllers

import (
	"errors"

	"lms/database"
	"lms/grading"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz scores and records a student's quiz submission. One attempt only.
func SubmitQuiz(c *fiber.Ctx) error {
	return submitAssessment(c, quizModels.AssessmentQuiz)
}

// SubmitWorkshop scores and records a student's workshop answer sheet. One
// attempt only.
func SubmitWorkshop(c *fiber.Ctx) error {
	return submitAssessment(c, quizModels.AssessmentWorkshop)
}

func submitAssessment(c *fiber.Ctx, assessmentType string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	assessmentID := c.Locals("quizID").(int)

	// Check the assessment exists and is published
	var courseID uint
	var title string
	if assessmentType == quizModels.AssessmentQuiz {
		var quiz quizModels.Quiz
		if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", assessmentID, false, true).First(&quiz).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		courseID, title = quiz.CourseID, quiz.Title
	} else {
		var workshop quizModels.Workshop
		if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", assessmentID, false, true).First(&workshop).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
		}
		courseID, title = workshop.CourseID, workshop.Title
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	sub, ok := c.Locals("validatedSubmission").(grading.Submission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	svc := grading.NewService(database.Database.Db)

	questions, err := svc.QuestionsFor(assessmentType, uint(assessmentID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}

	grade, err := svc.SubmitOnce(userID, assessmentType, uint(assessmentID), questions, sub)
	if err != nil {
		switch {
		case errors.Is(err, grading.ErrAlreadySubmitted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already completed this assessment!", nil)
		case errors.Is(err, grading.ErrNoQuestions):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Assessment has no questions!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answers!", nil)
		}
	}

	// Notify the student of their result
	go utils.SendGradeEmail(user.Name, user.Email, title, grade.Earned, grade.MaxScore, grade.Percentage)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted!", fiber.Map{
		"grade":      grade,
		"earned":     grade.Earned,
		"max_score":  grade.MaxScore,
		"percentage": grade.Percentage,
	})
}

// GetMyQuizGrade returns the caller's grade for a quiz
func GetMyQuizGrade(c *fiber.Ctx) error {
	return getMyGrade(c, quizModels.AssessmentQuiz)
}

// GetMyWorkshopGrade returns the caller's grade for a workshop
func GetMyWorkshopGrade(c *fiber.Ctx) error {
	return getMyGrade(c, quizModels.AssessmentWorkshop)
}

func getMyGrade(c *fiber.Ctx, assessmentType string) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assessmentID := c.Locals("quizID").(int)

	var grade quizModels.Grade
	err := database.Database.Db.Where("user_id = ? AND assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
		userID, assessmentType, assessmentID, false).
		Order("attempt_number desc").
		First(&grade).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No grade recorded yet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grade fetched successfully!", grade)
}
