package surveyValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateSurvey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint   `json:"course_id"`
			Title    string `json:"title"`
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

		c.Locals("validatedSurvey", reqData)
		return c.Next()
	}
}

func SubmitResponse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ContentRating int    `json:"content_rating"`
			TrainerRating int    `json:"trainer_rating"`
			OverallRating int    `json:"overall_rating"`
			Comment       string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for field, rating := range map[string]int{
			"content_rating": reqData.ContentRating,
			"trainer_rating": reqData.TrainerRating,
			"overall_rating": reqData.OverallRating,
		} {
			if rating < 1 || rating > 5 {
				errors[field] = "Rating must be between 1 and 5!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResponse", reqData)
		return c.Next()
	}
}

func SurveyID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid survey ID!", nil)
		}
		c.Locals("surveyID", id)
		return c.Next()
	}
}
