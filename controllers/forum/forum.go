package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	forumModels "lms/models/forum"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedThread").(*struct {
		CourseID uint   `json:"course_id"`
		Title    string `json:"title"`
		Body     string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	thread := forumModels.Thread{
		CourseID: reqData.CourseID,
		AuthorID: userID,
		Title:    reqData.Title,
		Body:     reqData.Body,
	}

	if err := database.Database.Db.Create(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create thread!", nil)
	}

	go utils.NotifyForum(utils.ForumNotification{
		ThreadID:    thread.ID,
		AuthorID:    userID,
		ThreadTitle: thread.Title,
		Event:       "THREAD_CREATED",
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thread created successfully!", thread)
}

func ListThreads(c *fiber.Ctx) error {
	courseID := c.QueryInt("course_id", 0)

	query := database.Database.Db.Where("is_deleted = ?", false)
	if courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}

	var threads []forumModels.Thread
	if err := query.Order("created_at desc").Find(&threads).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch threads!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Threads fetched successfully!", threads)
}

func GetThread(c *fiber.Ctx) error {
	threadID := c.Locals("threadID").(int)

	var thread forumModels.Thread
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	var posts []forumModels.Post
	database.Database.Db.Where("thread_id = ? AND is_deleted = ?", threadID, false).
		Order("created_at asc").
		Find(&posts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread fetched successfully!", fiber.Map{
		"thread": thread,
		"posts":  posts,
	})
}

func CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	threadID := c.Locals("threadID").(int)

	var thread forumModels.Thread
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	if thread.IsLocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Thread is locked!", nil)
	}

	reqData, ok := c.Locals("validatedPost").(*struct {
		Body string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	post := forumModels.Post{
		ThreadID: uint(threadID),
		AuthorID: userID,
		Body:     reqData.Body,
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create post!", nil)
	}

	go utils.NotifyForum(utils.ForumNotification{
		ThreadID:    thread.ID,
		PostID:      post.ID,
		AuthorID:    userID,
		ThreadTitle: thread.Title,
		Event:       "POST_CREATED",
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

func DeleteThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	threadID := c.Locals("threadID").(int)

	var thread forumModels.Thread
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	// Only the author or an admin may delete a thread
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	if thread.AuthorID != userID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own threads!", nil)
	}

	thread.IsDeleted = true
	if err := database.Database.Db.Save(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread deleted successfully!", nil)
}
