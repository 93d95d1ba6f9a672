package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/home/controller"
	"baliestate_backend/internals/middlewares"
)

func HomeUserRoutes(api fiber.Router, db *gorm.DB) {
	homeCtrl := controller.NewHomeUserController(db)
	contactCtrl := controller.NewContactController(db)

	api.Get("/home", homeCtrl.GetHome)
	api.Post("/contact", middlewares.ContactRateLimiter(), contactCtrl.SubmitContact)
}
