package route

import (
	"baliestate_backend/internals/features/properties/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PropertyAdminRoutes(api fiber.Router, db *gorm.DB) {
	propertyCtrl := controller.NewPropertyAdminController(db)

	// === ADMIN ROUTES ===
	properties := api.Group("/properties")
	properties.Get("/", propertyCtrl.GetAllProperties)              // 📄 All rows incl. inactive
	properties.Get("/:id", propertyCtrl.GetPropertyByID)            // 🔍 Detail by id
	properties.Post("/", propertyCtrl.CreateProperty)               // ➕ Create
	properties.Put("/:id", propertyCtrl.UpdateProperty)             // 🔄 Update (slug untouched)
	properties.Delete("/:id", propertyCtrl.DeleteProperty)          // 🗑️ Delete (gallery cascades)
	properties.Post("/:id/images", propertyCtrl.UploadPropertyImage) // 🖼️ Upload main/gallery image
	properties.Delete("/images/:imageId", propertyCtrl.DeletePropertyImage)

	classifierCtrl := controller.NewClassifierAdminController(db)

	locations := api.Group("/locations")
	locations.Post("/", classifierCtrl.CreateLocation)
	locations.Put("/:id", classifierCtrl.UpdateLocation)
	locations.Delete("/:id", classifierCtrl.DeleteLocation) // properties keep living, FK goes NULL

	types := api.Group("/property-types")
	types.Post("/", classifierCtrl.CreatePropertyType)
	types.Put("/:id", classifierCtrl.UpdatePropertyType)
	types.Delete("/:id", classifierCtrl.DeletePropertyType)
}
