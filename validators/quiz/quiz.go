package quizValidator

import (
	"strings"

	"lms/grading"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    uint   `json:"course_id"`
			Title       string `json:"title"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Prompt        string   `json:"prompt"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
			Points        int      `json:"points"`
			OrderIndex    int      `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Prompt) == "" {
			errors["prompt"] = "Prompt is required!"
		}
		if reqData.Points < 1 {
			errors["points"] = "Points must be a positive integer!"
		}
		// The correct answer must coerce to a valid designator (letter or index)
		if grading.CoerceAnswer(reqData.CorrectAnswer) < 0 {
			errors["correct_answer"] = "Correct answer must be a letter (A-D) or an option index!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// SubmitAnswers validates a learner answer submission. The body must be a
// JSON object mapping question IDs to answers; anything else is rejected
// before computation.
func SubmitAnswers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]interface{}
		if err := c.BodyParser(&raw); err != nil || raw == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Submission must be an object of question ID to answer!", nil)
		}

		sub, err := grading.ParseSubmission(raw)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Submission must be an object of question ID to answer!", nil)
		}

		c.Locals("validatedSubmission", sub)
		return c.Next()
	}
}
