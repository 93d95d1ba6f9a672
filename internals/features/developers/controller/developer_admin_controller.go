package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/developers/dto"
	"baliestate_backend/internals/features/developers/model"
	helper "baliestate_backend/internals/helpers"
	ossHelper "baliestate_backend/internals/helpers/oss"
)

var validateDeveloper = validator.New()

type DeveloperAdminController struct {
	DB *gorm.DB
}

func NewDeveloperAdminController(db *gorm.DB) *DeveloperAdminController {
	return &DeveloperAdminController{DB: db}
}

// =============================
// ➕ Create developer
// =============================
func (ctrl *DeveloperAdminController) CreateDeveloper(c *fiber.Ctx) error {
	var body dto.CreateDeveloperRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDeveloper.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	developer := model.DeveloperModel{
		DeveloperName:             body.DeveloperName,
		DeveloperLogoExtURL:       body.DeveloperLogoExtURL,
		DeveloperCoverExtURL:      body.DeveloperCoverExtURL,
		DeveloperTagline:          body.DeveloperTagline,
		DeveloperShortDescription: body.DeveloperShortDescription,
		DeveloperDescription:      body.DeveloperDescription,
		DeveloperInnovations:      body.DeveloperInnovations,
		DeveloperServices:         body.DeveloperServices,
		DeveloperFoundedYear:      body.DeveloperFoundedYear,
		DeveloperCompletedCount:   body.DeveloperCompletedCount,
		DeveloperInProgressCount:  body.DeveloperInProgressCount,
		DeveloperRating:           5.0,
		DeveloperRatingDeadline:   80,
		DeveloperRatingPremium:    80,
		DeveloperRatingSupport:    80,
		DeveloperRatingQuality:    80,
		DeveloperWebsite:          body.DeveloperWebsite,
		DeveloperTelegram:         body.DeveloperTelegram,
		DeveloperWhatsapp:         body.DeveloperWhatsapp,
		DeveloperInstagram:        body.DeveloperInstagram,
		DeveloperIsVerified:       body.DeveloperIsVerified,
		DeveloperIsActive:         true,
	}
	if body.DeveloperRating != nil {
		developer.DeveloperRating = *body.DeveloperRating
	}
	if body.DeveloperRatingDeadline != nil {
		developer.DeveloperRatingDeadline = *body.DeveloperRatingDeadline
	}
	if body.DeveloperRatingPremium != nil {
		developer.DeveloperRatingPremium = *body.DeveloperRatingPremium
	}
	if body.DeveloperRatingSupport != nil {
		developer.DeveloperRatingSupport = *body.DeveloperRatingSupport
	}
	if body.DeveloperRatingQuality != nil {
		developer.DeveloperRatingQuality = *body.DeveloperRatingQuality
	}
	if body.DeveloperIsActive != nil {
		developer.DeveloperIsActive = *body.DeveloperIsActive
	}
	if body.DeveloperCategoryID != nil {
		id, err := uuid.Parse(*body.DeveloperCategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
		}
		developer.DeveloperCategoryID = &id
	}

	if err := ctrl.DB.Create(&developer).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			developer.DeveloperID = uuid.Nil
			developer.DeveloperSlug = ""
			if err := ctrl.DB.Create(&developer).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create developer")
			}
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create developer")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToDeveloperDTO(developer))
}

// =============================
// 🔄 Update developer
// =============================
func (ctrl *DeveloperAdminController) UpdateDeveloper(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateDeveloperRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDeveloper.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var developer model.DeveloperModel
	if err := ctrl.DB.First(&developer, "developer_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Developer not found")
	}

	developer.DeveloperName = body.DeveloperName
	developer.DeveloperLogoExtURL = body.DeveloperLogoExtURL
	developer.DeveloperCoverExtURL = body.DeveloperCoverExtURL
	developer.DeveloperTagline = body.DeveloperTagline
	developer.DeveloperShortDescription = body.DeveloperShortDescription
	developer.DeveloperDescription = body.DeveloperDescription
	developer.DeveloperInnovations = body.DeveloperInnovations
	developer.DeveloperServices = body.DeveloperServices
	developer.DeveloperFoundedYear = body.DeveloperFoundedYear
	developer.DeveloperCompletedCount = body.DeveloperCompletedCount
	developer.DeveloperInProgressCount = body.DeveloperInProgressCount
	developer.DeveloperWebsite = body.DeveloperWebsite
	developer.DeveloperTelegram = body.DeveloperTelegram
	developer.DeveloperWhatsapp = body.DeveloperWhatsapp
	developer.DeveloperInstagram = body.DeveloperInstagram
	developer.DeveloperIsVerified = body.DeveloperIsVerified
	if body.DeveloperRating != nil {
		developer.DeveloperRating = *body.DeveloperRating
	}
	if body.DeveloperRatingDeadline != nil {
		developer.DeveloperRatingDeadline = *body.DeveloperRatingDeadline
	}
	if body.DeveloperRatingPremium != nil {
		developer.DeveloperRatingPremium = *body.DeveloperRatingPremium
	}
	if body.DeveloperRatingSupport != nil {
		developer.DeveloperRatingSupport = *body.DeveloperRatingSupport
	}
	if body.DeveloperRatingQuality != nil {
		developer.DeveloperRatingQuality = *body.DeveloperRatingQuality
	}
	if body.DeveloperIsActive != nil {
		developer.DeveloperIsActive = *body.DeveloperIsActive
	}
	if body.DeveloperCategoryID != nil {
		catID, err := uuid.Parse(*body.DeveloperCategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
		}
		developer.DeveloperCategoryID = &catID
	} else {
		developer.DeveloperCategoryID = nil
	}

	if err := ctrl.DB.Save(&developer).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update developer")
	}

	return c.JSON(dto.ToDeveloperDTO(developer))
}

// =============================
// 🗑️ Delete developer
// =============================
func (ctrl *DeveloperAdminController) DeleteDeveloper(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.DeveloperModel{}, "developer_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete developer")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Admin list (includes inactive)
// =============================
func (ctrl *DeveloperAdminController) GetAllDevelopers(c *fiber.Ctx) error {
	var developers []model.DeveloperModel
	if err := ctrl.DB.
		Preload("DeveloperCategory").
		Order("developer_rating DESC, developer_name, developer_id").
		Find(&developers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve developers")
	}

	items := make([]dto.DeveloperDTO, 0, len(developers))
	for _, d := range developers {
		items = append(items, dto.ToDeveloperDTO(d))
	}

	return c.JSON(items)
}

// =============================
// 🖼️ Upload logo / cover
// =============================
func (ctrl *DeveloperAdminController) UploadDeveloperImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var developer model.DeveloperModel
	if err := ctrl.DB.First(&developer, "developer_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Developer not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	url, err := ossHelper.UploadImage("developers", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Image upload failed")
	}

	switch c.FormValue("target") {
	case "cover":
		developer.DeveloperCoverURL = url
	default:
		developer.DeveloperLogoURL = url
	}

	if err := ctrl.DB.Save(&developer).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save developer image")
	}

	return helper.Success(c, "Image updated", fiber.Map{"url": url})
}

/* =========================
   Categories
   ========================= */

type upsertCategoryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	IconURL string `json:"icon_url" validate:"omitempty,url"`
	Order   int    `json:"order"`
}

func (ctrl *DeveloperAdminController) CreateCategory(c *fiber.Ctx) error {
	var body upsertCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDeveloper.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	category := model.DeveloperCategoryModel{
		DeveloperCategoryName:    body.Name,
		DeveloperCategoryIconURL: body.IconURL,
		DeveloperCategoryOrder:   body.Order,
	}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToDeveloperCategoryDTO(category))
}

func (ctrl *DeveloperAdminController) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	// developers referencing it get a NULL category (ON DELETE SET NULL)
	if err := ctrl.DB.Delete(&model.DeveloperCategoryModel{}, "developer_category_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   Review moderation
   ========================= */

func (ctrl *DeveloperAdminController) GetAllReviews(c *fiber.Ctx) error {
	var reviews []model.DeveloperReviewModel
	if err := ctrl.DB.
		Order("developer_review_created_at DESC, developer_review_id").
		Find(&reviews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reviews")
	}

	items := make([]dto.DeveloperReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, dto.ToDeveloperReviewDTO(r))
	}

	return c.JSON(items)
}

func (ctrl *DeveloperAdminController) ApproveReview(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.DeveloperReviewModel{}).
		Where("developer_review_id = ?", id).
		UpdateColumn("developer_review_is_approved", true)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve review")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Review not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *DeveloperAdminController) DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.DeveloperReviewModel{}, "developer_review_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete review")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   Videos
   ========================= */

func (ctrl *DeveloperAdminController) CreateVideo(c *fiber.Ctx) error {
	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDeveloper.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	video := model.VideoModel{
		VideoTitle:        body.VideoTitle,
		VideoYoutubeURL:   body.VideoYoutubeURL,
		VideoPosterExtURL: body.VideoPosterExtURL,
		VideoIsActive:     true,
	}
	if body.VideoIsActive != nil {
		video.VideoIsActive = *body.VideoIsActive
	}
	if body.VideoDeveloperID != nil {
		devID, err := uuid.Parse(*body.VideoDeveloperID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid developer id")
		}
		video.VideoDeveloperID = &devID
	}

	if err := ctrl.DB.Create(&video).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create video")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToVideoDTO(video))
}

func (ctrl *DeveloperAdminController) DeleteVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.VideoModel{}, "video_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete video")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
