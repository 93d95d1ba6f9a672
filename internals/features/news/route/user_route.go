package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/news/controller"
)

func NewsUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsUserController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.ListPosts)
	news.Get("/:slug", ctrl.GetPostBySlug)
}
