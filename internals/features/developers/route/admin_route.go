package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/developers/controller"
)

func DeveloperAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDeveloperAdminController(db)

	developers := api.Group("/developers")
	developers.Get("/", ctrl.GetAllDevelopers)
	developers.Post("/", ctrl.CreateDeveloper)
	developers.Put("/:id", ctrl.UpdateDeveloper)
	developers.Delete("/:id", ctrl.DeleteDeveloper)
	developers.Post("/:id/images", ctrl.UploadDeveloperImage)

	categories := api.Group("/developer-categories")
	categories.Post("/", ctrl.CreateCategory)
	categories.Delete("/:id", ctrl.DeleteCategory)

	reviews := api.Group("/reviews")
	reviews.Get("/", ctrl.GetAllReviews)
	reviews.Post("/:id/approve", ctrl.ApproveReview)
	reviews.Delete("/:id", ctrl.DeleteReview)

	videos := api.Group("/videos")
	videos.Post("/", ctrl.CreateVideo)
	videos.Delete("/:id", ctrl.DeleteVideo)
}
