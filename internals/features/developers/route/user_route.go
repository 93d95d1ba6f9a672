package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/developers/controller"
)

func DeveloperUserRoutes(api fiber.Router, db *gorm.DB) {
	developerCtrl := controller.NewDeveloperUserController(db)
	videoCtrl := controller.NewVideoUserController(db)

	developers := api.Group("/developers")
	developers.Get("/", developerCtrl.ListDevelopers)
	developers.Get("/:slug", developerCtrl.GetDeveloperBySlug)
	developers.Post("/reviews", developerCtrl.SubmitReview)

	videos := api.Group("/videos")
	videos.Get("/", videoCtrl.ListVideos)
	videos.Post("/:id/view", videoCtrl.RegisterView)
}
