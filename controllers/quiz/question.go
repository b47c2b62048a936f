package controllers

import (
	"encoding/json"

	"lms/database"
	"lms/grading"
	"lms/middleware"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
)

type questionRequest = struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        int      `json:"points"`
	OrderIndex    int      `json:"order_index"`
}

// AddQuizQuestion attaches a question to a quiz
func AddQuizQuestion(c *fiber.Ctx) error {
	return addQuestion(c, quizModels.AssessmentQuiz)
}

// AddWorkshopQuestion attaches a question to a workshop answer sheet
func AddWorkshopQuestion(c *fiber.Ctx) error {
	return addQuestion(c, quizModels.AssessmentWorkshop)
}

func addQuestion(c *fiber.Ctx, assessmentType string) error {
	assessmentID := c.Locals("quizID").(int)

	// Check the assessment exists
	var err error
	if assessmentType == quizModels.AssessmentQuiz {
		err = database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&quizModels.Quiz{}).Error
	} else {
		err = database.Database.Db.Where("id = ? AND is_deleted = ?", assessmentID, false).First(&quizModels.Workshop{}).Error
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*questionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := quizModels.Question{
		AssessmentType: assessmentType,
		AssessmentID:   uint(assessmentID),
		Prompt:         reqData.Prompt,
		Options:        options,
		CorrectAnswer:  reqData.CorrectAnswer,
		Points:         reqData.Points,
		OrderIndex:     reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion edits a question in place. Editing the correct answer of an
// already-graded question makes stored grades stale; the audit endpoint and
// the reconciliation job exist to detect and repair exactly that.
func UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
	}

	var question quizModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData := new(struct {
		Prompt        *string   `json:"prompt"`
		Options       *[]string `json:"options"`
		CorrectAnswer *string   `json:"correct_answer"`
		Points        *int      `json:"points"`
		OrderIndex    *int      `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Prompt != nil {
		question.Prompt = *reqData.Prompt
	}
	if reqData.Options != nil {
		options, err := json.Marshal(*reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = options
	}
	if reqData.CorrectAnswer != nil {
		if grading.CoerceAnswer(*reqData.CorrectAnswer) < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"correct_answer": "Correct answer must be a letter (A-D) or an option index!",
			})
		}
		question.CorrectAnswer = *reqData.CorrectAnswer
	}
	if reqData.Points != nil && *reqData.Points > 0 {
		question.Points = *reqData.Points
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
	}

	var question quizModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
