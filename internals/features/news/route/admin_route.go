package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/news/controller"
)

func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsAdminController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.GetAllPosts)
	news.Post("/", ctrl.CreatePost)
	news.Put("/:id", ctrl.UpdatePost)
	news.Delete("/:id", ctrl.DeletePost)
	news.Post("/:id/image", ctrl.UploadPostImage)

	categories := api.Group("/news-categories")
	categories.Post("/", ctrl.CreateCategory)
	categories.Delete("/:id", ctrl.DeleteCategory)
}
