package gradesValidator

import (
	"lms/middleware"
	quizModels "lms/models/quiz"

	"github.com/gofiber/fiber/v2"
)

// RecordAttempt validates the instructor grade-entry payload
func RecordAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID         uint                   `json:"user_id"`
			AssessmentType string                 `json:"assessment_type"`
			AssessmentID   uint                   `json:"assessment_id"`
			Earned         int                    `json:"earned"`
			MaxScore       int                    `json:"max_score"`
			Percentage     int                    `json:"percentage"`
			Answers        map[string]interface{} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if reqData.AssessmentType != quizModels.AssessmentQuiz && reqData.AssessmentType != quizModels.AssessmentWorkshop {
			errors["assessment_type"] = "Assessment type must be QUIZ or WORKSHOP!"
		}
		if reqData.AssessmentID == 0 {
			errors["assessment_id"] = "Assessment ID is required!"
		}
		if reqData.MaxScore < 0 || reqData.Earned < 0 || reqData.Earned > reqData.MaxScore {
			errors["earned"] = "Earned score must be between 0 and the maximum score!"
		}
		if reqData.Percentage < 0 || reqData.Percentage > 100 {
			errors["percentage"] = "Percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// GradeID validates the :id route parameter
func GradeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid grade ID!", nil)
		}
		c.Locals("gradeID", id)
		return c.Next()
	}
}
