package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
)

func CreateWorkshop(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*struct {
		CourseID    uint   `json:"course_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Check course exists
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	workshop := quizModels.Workshop{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Workshop created successfully!", workshop)
}

// GetWorkshop returns a workshop with its answer-sheet questions, correct
// letters stripped
func GetWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("quizID").(int)

	var workshop quizModels.Workshop
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	var questions []quizModels.Question
	database.Database.Db.Where("assessment_type = ? AND assessment_id = ? AND is_deleted = ?",
		quizModels.AssessmentWorkshop, workshopID, false).
		Order("order_index asc").
		Find(&questions)

	questionList := make([]fiber.Map, len(questions))
	for i, q := range questions {
		questionList[i] = fiber.Map{
			"id":          q.ID,
			"prompt":      q.Prompt,
			"options":     q.Options,
			"points":      q.Points,
			"order_index": q.OrderIndex,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop fetched successfully!", fiber.Map{
		"workshop":  workshop,
		"questions": questionList,
	})
}

func DeleteWorkshop(c *fiber.Ctx) error {
	workshopID := c.Locals("quizID").(int)

	var workshop quizModels.Workshop
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	workshop.IsDeleted = true
	if err := database.Database.Db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop deleted successfully!", nil)
}
