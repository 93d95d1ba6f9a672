package route

import (
	"baliestate_backend/internals/features/properties/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PropertyUserRoutes(api fiber.Router, db *gorm.DB) {
	propertyCtrl := controller.NewPropertyUserController(db)

	// === USER ROUTES ===
	properties := api.Group("/properties")
	properties.Get("/", propertyCtrl.ListProperties)        // 📄 Filtered, paginated catalogue
	properties.Get("/:slug", propertyCtrl.GetPropertyBySlug) // 🔍 Detail + similar listings
}
