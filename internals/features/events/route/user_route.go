package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/events/controller"
)

func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventUserController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.ListEvents)
	events.Get("/:slug", ctrl.GetEventBySlug)
}
