package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	surveyModels "lms/models/survey"

	"github.com/gofiber/fiber/v2"
)

func CreateSurvey(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSurvey").(*struct {
		CourseID uint   `json:"course_id"`
		Title    string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	survey := surveyModels.Survey{
		CourseID: reqData.CourseID,
		Title:    reqData.Title,
	}

	if err := database.Database.Db.Create(&survey).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create survey!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Survey created successfully!", survey)
}

func SubmitResponse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	surveyID := c.Locals("surveyID").(int)

	var survey surveyModels.Survey
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_open = ?", surveyID, false, true).First(&survey).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Survey not found or closed!", nil)
	}

	// One response per user
	var existing surveyModels.SurveyResponse
	if err := database.Database.Db.Where("survey_id = ? AND user_id = ? AND is_deleted = ?", surveyID, userID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already responded to this survey!", nil)
	}

	reqData, ok := c.Locals("validatedResponse").(*struct {
		ContentRating int    `json:"content_rating"`
		TrainerRating int    `json:"trainer_rating"`
		OverallRating int    `json:"overall_rating"`
		Comment       string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	response := surveyModels.SurveyResponse{
		SurveyID:      uint(surveyID),
		UserID:        userID,
		ContentRating: reqData.ContentRating,
		TrainerRating: reqData.TrainerRating,
		OverallRating: reqData.OverallRating,
		Comment:       reqData.Comment,
	}

	if err := database.Database.Db.Create(&response).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit response!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Response submitted successfully!", response)
}

// GetSurveyResults aggregates satisfaction ratings for a survey
func GetSurveyResults(c *fiber.Ctx) error {
	surveyID := c.Locals("surveyID").(int)

	var survey surveyModels.Survey
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", surveyID, false).First(&survey).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Survey not found!", nil)
	}

	type surveyStats struct {
		Responses     int64   `json:"responses"`
		AvgContent    float64 `json:"avg_content"`
		AvgTrainer    float64 `json:"avg_trainer"`
		AvgOverall    float64 `json:"avg_overall"`
	}

	var stats surveyStats
	err := database.Database.Db.Model(&surveyModels.SurveyResponse{}).
		Where("survey_id = ? AND is_deleted = ?", surveyID, false).
		Select("COUNT(*) as responses, COALESCE(AVG(content_rating), 0) as avg_content, COALESCE(AVG(trainer_rating), 0) as avg_trainer, COALESCE(AVG(overall_rating), 0) as avg_overall").
		Scan(&stats).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to aggregate results!", nil)
	}

	var comments []surveyModels.SurveyResponse
	database.Database.Db.Where("survey_id = ? AND is_deleted = ? AND comment != ''", surveyID, false).
		Select("id, comment, overall_rating").
		Find(&comments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Survey results fetched successfully!", fiber.Map{
		"survey":   survey,
		"stats":    stats,
		"comments": comments,
	})
}
