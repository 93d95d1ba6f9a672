package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/developers/dto"
	"baliestate_backend/internals/features/developers/model"
	propertyDTO "baliestate_backend/internals/features/properties/dto"
	propertyModel "baliestate_backend/internals/features/properties/model"
	helper "baliestate_backend/internals/helpers"
)

var validateDeveloperUser = validator.New()

type DeveloperUserController struct {
	DB *gorm.DB
}

func NewDeveloperUserController(db *gorm.DB) *DeveloperUserController {
	return &DeveloperUserController{DB: db}
}

// =============================
// 📄 Developer directory
// =============================
func (ctrl *DeveloperUserController) ListDevelopers(c *fiber.Ctx) error {
	categorySlug := strings.TrimSpace(c.Query("category"))

	tx := ctrl.DB.Model(&model.DeveloperModel{}).Scopes(model.ScopeActiveDevelopers)
	if categorySlug != "" {
		tx = tx.Joins("JOIN developer_categories ON developer_categories.developer_category_id = developers.developer_category_id").
			Where("developer_categories.developer_category_slug = ?", categorySlug)
	}

	var developers []model.DeveloperModel
	if err := tx.
		Preload("DeveloperCategory").
		Order("developer_rating DESC, developer_name, developer_id").
		Find(&developers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve developers")
	}

	items := make([]dto.DeveloperLiteDTO, 0, len(developers))
	for _, d := range developers {
		items = append(items, dto.ToDeveloperLiteDTO(d))
	}

	var categories []model.DeveloperCategoryModel
	if err := ctrl.DB.Order("developer_category_order").Find(&categories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve categories")
	}
	categoryDTOs := make([]dto.DeveloperCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		categoryDTOs = append(categoryDTOs, dto.ToDeveloperCategoryDTO(cat))
	}

	return helper.Success(c, "OK", fiber.Map{
		"developers":       items,
		"categories":       categoryDTOs,
		"current_category": categorySlug,
	})
}

// =============================
// 🔍 Developer detail by slug
// =============================
func (ctrl *DeveloperUserController) GetDeveloperBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var developer model.DeveloperModel
	err := ctrl.DB.
		Scopes(model.ScopeActiveDevelopers).
		Preload("DeveloperCategory").
		Preload("DeveloperHighlights", func(db *gorm.DB) *gorm.DB {
			return db.Order("developer_highlight_order")
		}).
		First(&developer, "developer_slug = ?", slug).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Developer not found")
	}

	// the developer's listings
	var properties []propertyModel.PropertyModel
	if err := ctrl.DB.
		Scopes(propertyModel.ScopeActiveProperties).
		Preload("PropertyType").
		Preload("PropertyLocation").
		Where("property_developer_id = ?", developer.DeveloperID).
		Order("property_is_featured DESC, property_created_at DESC, property_id").
		Limit(6).
		Find(&properties).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve properties")
	}
	propertyDTOs := make([]propertyDTO.PropertyLiteDTO, 0, len(properties))
	for _, p := range properties {
		propertyDTOs = append(propertyDTOs, propertyDTO.ToPropertyLiteDTO(p))
	}

	// portfolio stats from the actual listings, not the manual counters
	var completed, inProgress, total int64
	ctrl.DB.Model(&propertyModel.PropertyModel{}).
		Where("property_developer_id = ? AND property_construction_status = ?", developer.DeveloperID, propertyModel.ConstructionCompleted).
		Count(&completed)
	ctrl.DB.Model(&propertyModel.PropertyModel{}).
		Where("property_developer_id = ? AND property_construction_status = ?", developer.DeveloperID, propertyModel.ConstructionInProgress).
		Count(&inProgress)
	ctrl.DB.Model(&propertyModel.PropertyModel{}).
		Where("property_developer_id = ?", developer.DeveloperID).
		Count(&total)

	// approved reviews only
	var reviews []model.DeveloperReviewModel
	if err := ctrl.DB.
		Scopes(model.ScopeApprovedReviews).
		Where("developer_review_developer_id = ?", developer.DeveloperID).
		Order("developer_review_created_at DESC, developer_review_id").
		Limit(10).
		Find(&reviews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reviews")
	}
	reviewDTOs := make([]dto.DeveloperReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		reviewDTOs = append(reviewDTOs, dto.ToDeveloperReviewDTO(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"developer":         dto.ToDeveloperDTO(developer),
		"properties":        propertyDTOs,
		"reviews":           reviewDTOs,
		"completed_count":   completed,
		"in_progress_count": inProgress,
		"total_count":       total,
	})
}

// =============================
// ✍️ Submit a review (moderated)
// =============================
func (ctrl *DeveloperUserController) SubmitReview(c *fiber.Ctx) error {
	var body dto.SubmitReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDeveloperUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var developer model.DeveloperModel
	if err := ctrl.DB.
		Scopes(model.ScopeActiveDevelopers).
		First(&developer, "developer_slug = ?", body.DeveloperSlug).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Developer not found")
	}

	review := model.DeveloperReviewModel{
		DeveloperReviewDeveloperID:  developer.DeveloperID,
		DeveloperReviewUserName:     body.UserName,
		DeveloperReviewAvatarExtURL: body.AvatarExtURL,
		DeveloperReviewRating:       body.Rating,
		DeveloperReviewText:         body.Text,
		DeveloperReviewIsApproved:   false, // goes public after moderation
	}
	if err := ctrl.DB.Create(&review).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit review")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Review submitted for moderation", dto.ToDeveloperReviewDTO(review))
}
