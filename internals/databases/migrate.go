package database

import (
	"log"

	"gorm.io/gorm"

	developerModel "baliestate_backend/internals/features/developers/model"
	eventModel "baliestate_backend/internals/features/events/model"
	homeModel "baliestate_backend/internals/features/home/model"
	newsModel "baliestate_backend/internals/features/news/model"
	propertyModel "baliestate_backend/internals/features/properties/model"
	userModel "baliestate_backend/internals/features/users/model"
)

// MigrateModels keeps the schema in sync. Parents first so FK
// constraints resolve.
func MigrateModels(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UserModel{},

		&propertyModel.LocationModel{},
		&propertyModel.PropertyTypeModel{},
		&developerModel.DeveloperCategoryModel{},
		&developerModel.DeveloperModel{},
		&developerModel.DeveloperHighlightModel{},
		&developerModel.DeveloperReviewModel{},
		&developerModel.VideoModel{},
		&propertyModel.PropertyModel{},
		&propertyModel.PropertyImageModel{},

		&newsModel.NewsCategoryModel{},
		&newsModel.NewsPostModel{},
		&eventModel.EventModel{},

		&homeModel.SiteSettingModel{},
		&homeModel.FAQModel{},
		&homeModel.CodeSnippetModel{},
		&homeModel.PopupModel{},
		&homeModel.HeaderButtonModel{},
		&homeModel.ContactRequestModel{},
		&homeModel.ReviewModel{},
		&homeModel.VideoReviewModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
