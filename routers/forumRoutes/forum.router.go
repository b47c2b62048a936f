package forumRoutes

import (
	controllers "lms/controllers/forum"
	"lms/middleware"
	validators "lms/validators/forum"

	"github.com/gofiber/fiber/v2"
)

// SetupForumRoutes sets up discussion forum routes
func SetupForumRoutes(app *fiber.App) {
	forumGroup := app.Group("/forum")

	forumGroup.Get("/threads", middleware.JWTMiddleware, controllers.ListThreads)
	forumGroup.Post("/threads", middleware.JWTMiddleware, validators.CreateThread(), controllers.CreateThread)
	forumGroup.Get("/threads/:id", middleware.JWTMiddleware, validators.ThreadID(), controllers.GetThread)
	forumGroup.Post("/threads/:id/posts", middleware.JWTMiddleware, validators.ThreadID(), validators.CreatePost(), controllers.CreatePost)
	forumGroup.Delete("/threads/:id", middleware.JWTMiddleware, validators.ThreadID(), controllers.DeleteThread)
}
