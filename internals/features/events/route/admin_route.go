package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/events/controller"
)

func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventAdminController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.GetAllEvents)
	events.Post("/", ctrl.CreateEvent)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Post("/:id/image", ctrl.UploadEventImage)
}
