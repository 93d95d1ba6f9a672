package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	developerRoute "baliestate_backend/internals/features/developers/route"
	eventRoute "baliestate_backend/internals/features/events/route"
	homeRoute "baliestate_backend/internals/features/home/route"
	newsRoute "baliestate_backend/internals/features/news/route"
	propertyRoute "baliestate_backend/internals/features/properties/route"
	userRoute "baliestate_backend/internals/features/users/route"
	"baliestate_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public API, the auth endpoints and the
// staff-guarded admin group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	userRoute.AuthRoutes(api, db)

	homeRoute.HomeUserRoutes(api, db)
	propertyRoute.PropertyUserRoutes(api, db)
	developerRoute.DeveloperUserRoutes(api, db)
	newsRoute.NewsUserRoutes(api, db)
	eventRoute.EventUserRoutes(api, db)

	admin := api.Group("/a", auth.AuthStaff(db))

	homeRoute.HomeAdminRoutes(admin, db)
	propertyRoute.PropertyAdminRoutes(admin, db)
	developerRoute.DeveloperAdminRoutes(admin, db)
	newsRoute.NewsAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
}
