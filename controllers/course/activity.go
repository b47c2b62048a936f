package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

func CreateActivity(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedActivity").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ActivityType string `json:"activity_type"`
		TextContent  string `json:"text_content"`
		VideoURL     string `json:"video_url"`
		FileURL      string `json:"file_url"`
		OrderIndex   int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	activityType := reqData.ActivityType
	if activityType == "" {
		activityType = "TEXT"
	}

	activity := courseModels.Activity{
		CourseID:     uint(courseID),
		Title:        reqData.Title,
		Description:  reqData.Description,
		ActivityType: activityType,
		TextContent:  reqData.TextContent,
		VideoURL:     reqData.VideoURL,
		FileURL:      reqData.FileURL,
		OrderIndex:   reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Activity created successfully!", activity)
}

func UpdateActivity(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("activity_id")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	var activity courseModels.Activity
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", activityID, false).First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		TextContent *string `json:"text_content"`
		VideoURL    *string `json:"video_url"`
		FileURL     *string `json:"file_url"`
		OrderIndex  *int    `json:"order_index"`
		IsPublished *bool   `json:"is_published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		activity.Title = *reqData.Title
	}
	if reqData.Description != nil {
		activity.Description = *reqData.Description
	}
	if reqData.TextContent != nil {
		activity.TextContent = *reqData.TextContent
	}
	if reqData.VideoURL != nil {
		activity.VideoURL = *reqData.VideoURL
	}
	if reqData.FileURL != nil {
		activity.FileURL = *reqData.FileURL
	}
	if reqData.OrderIndex != nil {
		activity.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		activity.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity updated successfully!", activity)
}

func DeleteActivity(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("activity_id")
	if err != nil || activityID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity ID!", nil)
	}

	var activity courseModels.Activity
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", activityID, false).First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	activity.IsDeleted = true
	if err := database.Database.Db.Save(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity deleted successfully!", nil)
}
