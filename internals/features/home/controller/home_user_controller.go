package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	developerDTO "baliestate_backend/internals/features/developers/dto"
	developerModel "baliestate_backend/internals/features/developers/model"
	eventDTO "baliestate_backend/internals/features/events/dto"
	eventModel "baliestate_backend/internals/features/events/model"
	"baliestate_backend/internals/features/home/dto"
	"baliestate_backend/internals/features/home/model"
	newsDTO "baliestate_backend/internals/features/news/dto"
	newsModel "baliestate_backend/internals/features/news/model"
	propertyDTO "baliestate_backend/internals/features/properties/dto"
	propertyModel "baliestate_backend/internals/features/properties/model"
	helper "baliestate_backend/internals/helpers"
)

type HomeUserController struct {
	DB *gorm.DB
}

func NewHomeUserController(db *gorm.DB) *HomeUserController {
	return &HomeUserController{DB: db}
}

// =============================
// 🏠 Home page aggregation
// =============================
func (ctrl *HomeUserController) GetHome(c *fiber.Ctx) error {
	settings, err := model.GetSiteSettings(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load site settings")
	}

	// categories with their active developers attached
	var categories []developerModel.DeveloperCategoryModel
	if err := ctrl.DB.Order("developer_category_order").Find(&categories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load categories")
	}
	type categoryBlock struct {
		Category   developerDTO.DeveloperCategoryDTO  `json:"category"`
		Developers []developerDTO.DeveloperLiteDTO    `json:"developers"`
	}
	categoryBlocks := make([]categoryBlock, 0, len(categories))
	for _, cat := range categories {
		var devs []developerModel.DeveloperModel
		if err := ctrl.DB.
			Scopes(developerModel.ScopeActiveDevelopers).
			Where("developer_category_id = ?", cat.DeveloperCategoryID).
			Order("developer_rating DESC, developer_name, developer_id").
			Find(&devs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load developers")
		}
		devDTOs := make([]developerDTO.DeveloperLiteDTO, 0, len(devs))
		for _, d := range devs {
			devDTOs = append(devDTOs, developerDTO.ToDeveloperLiteDTO(d))
		}
		categoryBlocks = append(categoryBlocks, categoryBlock{
			Category:   developerDTO.ToDeveloperCategoryDTO(cat),
			Developers: devDTOs,
		})
	}

	// the overall leaderboard
	var topDevelopers []developerModel.DeveloperModel
	if err := ctrl.DB.
		Scopes(developerModel.ScopeActiveDevelopers).
		Preload("DeveloperCategory").
		Order("developer_rating DESC, developer_name, developer_id").
		Limit(10).
		Find(&topDevelopers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load developers")
	}
	topDeveloperDTOs := make([]developerDTO.DeveloperLiteDTO, 0, len(topDevelopers))
	for _, d := range topDevelopers {
		topDeveloperDTOs = append(topDeveloperDTOs, developerDTO.ToDeveloperLiteDTO(d))
	}

	var featured []propertyModel.PropertyModel
	if err := ctrl.DB.
		Scopes(propertyModel.ScopeActiveProperties).
		Preload("PropertyType").
		Preload("PropertyLocation").
		Where("property_is_featured = ?", true).
		Order("property_created_at DESC, property_id").
		Limit(6).
		Find(&featured).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load properties")
	}
	featuredDTOs := make([]propertyDTO.PropertyLiteDTO, 0, len(featured))
	for _, p := range featured {
		featuredDTOs = append(featuredDTOs, propertyDTO.ToPropertyLiteDTO(p))
	}

	var upcoming []eventModel.EventModel
	if err := ctrl.DB.
		Scopes(eventModel.ScopeActiveEvents).
		Where("event_date >= ?", time.Now()).
		Order("event_date ASC, event_id").
		Limit(2).
		Find(&upcoming).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load events")
	}
	upcomingDTOs := make([]eventDTO.EventLiteDTO, 0, len(upcoming))
	for _, e := range upcoming {
		upcomingDTOs = append(upcomingDTOs, eventDTO.ToEventLiteDTO(e))
	}

	var latestNews []newsModel.NewsPostModel
	if err := ctrl.DB.
		Scopes(newsModel.ScopePublishedPosts).
		Preload("NewsPostCategory").
		Order("news_post_published_at DESC, news_post_id").
		Limit(3).
		Find(&latestNews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load news")
	}
	newsDTOs := make([]newsDTO.NewsPostLiteDTO, 0, len(latestNews))
	for _, p := range latestNews {
		newsDTOs = append(newsDTOs, newsDTO.ToNewsPostLiteDTO(p))
	}

	var videos []developerModel.VideoModel
	if err := ctrl.DB.
		Where("video_is_active = ?", true).
		Preload("Developer").
		Order("video_created_at DESC, video_id").
		Limit(10).
		Find(&videos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load videos")
	}
	videoDTOs := make([]developerDTO.VideoDTO, 0, len(videos))
	for _, v := range videos {
		videoDTOs = append(videoDTOs, developerDTO.ToVideoDTO(v))
	}

	var reviews []model.ReviewModel
	if err := ctrl.DB.
		Scopes(model.ScopeApprovedSiteReviews).
		Order("review_created_at DESC, review_id").
		Limit(6).
		Find(&reviews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load reviews")
	}
	reviewDTOs := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		reviewDTOs = append(reviewDTOs, dto.ToReviewDTO(r))
	}

	var videoReviews []model.VideoReviewModel
	if err := ctrl.DB.
		Where("video_review_is_active = ?", true).
		Order("video_review_order, video_review_created_at DESC").
		Find(&videoReviews).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load video reviews")
	}
	videoReviewDTOs := make([]dto.VideoReviewDTO, 0, len(videoReviews))
	for _, v := range videoReviews {
		videoReviewDTOs = append(videoReviewDTOs, dto.ToVideoReviewDTO(v))
	}

	var faqs []model.FAQModel
	if err := ctrl.DB.
		Where("faq_is_active = ?", true).
		Order("faq_order").
		Find(&faqs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load FAQs")
	}
	faqDTOs := make([]dto.FAQDTO, 0, len(faqs))
	for _, f := range faqs {
		faqDTOs = append(faqDTOs, dto.ToFAQDTO(f))
	}

	var snippets []model.CodeSnippetModel
	if err := ctrl.DB.
		Where("code_snippet_is_active = ?", true).
		Order("code_snippet_order").
		Find(&snippets).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load snippets")
	}
	snippetDTOs := make([]dto.CodeSnippetDTO, 0, len(snippets))
	for _, s := range snippets {
		snippetDTOs = append(snippetDTOs, dto.ToCodeSnippetDTO(s))
	}

	var buttons []model.HeaderButtonModel
	if err := ctrl.DB.
		Where("header_button_is_active = ?", true).
		Preload("Popup", "popup_is_active = ?", true).
		Order("header_button_order").
		Find(&buttons).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load header buttons")
	}
	buttonDTOs := make([]dto.HeaderButtonDTO, 0, len(buttons))
	for _, b := range buttons {
		buttonDTOs = append(buttonDTOs, dto.ToHeaderButtonDTO(b))
	}

	return helper.Success(c, "OK", fiber.Map{
		"settings":            dto.ToSiteSettingDTO(settings),
		"category_blocks":     categoryBlocks,
		"top_developers":      topDeveloperDTOs,
		"featured_properties": featuredDTOs,
		"upcoming_events":     upcomingDTOs,
		"latest_news":         newsDTOs,
		"videos":              videoDTOs,
		"reviews":             reviewDTOs,
		"video_reviews":       videoReviewDTOs,
		"faqs":                faqDTOs,
		"code_snippets":       snippetDTOs,
		"header_buttons":      buttonDTOs,
	})
}
