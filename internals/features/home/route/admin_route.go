package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/home/controller"
)

func HomeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeAdminController(db)

	settings := api.Group("/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", ctrl.UpdateSettings)

	leads := api.Group("/leads")
	leads.Get("/", ctrl.GetAllLeads)
	leads.Post("/:id/process", ctrl.MarkLeadProcessed)

	faqs := api.Group("/faqs")
	faqs.Post("/", ctrl.CreateFAQ)
	faqs.Put("/:id", ctrl.UpdateFAQ)
	faqs.Delete("/:id", ctrl.DeleteFAQ)

	snippets := api.Group("/code-snippets")
	snippets.Post("/", ctrl.CreateSnippet)
	snippets.Delete("/:id", ctrl.DeleteSnippet)

	popups := api.Group("/popups")
	popups.Post("/", ctrl.CreatePopup)
	popups.Delete("/:id", ctrl.DeletePopup)

	buttons := api.Group("/header-buttons")
	buttons.Post("/", ctrl.CreateHeaderButton)
	buttons.Delete("/:id", ctrl.DeleteHeaderButton)

	reviews := api.Group("/site-reviews")
	reviews.Post("/", ctrl.CreateSiteReview)
	reviews.Post("/:id/approve", ctrl.ApproveSiteReview)
	reviews.Delete("/:id", ctrl.DeleteSiteReview)

	videoReviews := api.Group("/video-reviews")
	videoReviews.Post("/", ctrl.CreateVideoReview)
	videoReviews.Delete("/:id", ctrl.DeleteVideoReview)
}
