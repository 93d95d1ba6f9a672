package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/home/dto"
	"baliestate_backend/internals/features/home/model"
	helper "baliestate_backend/internals/helpers"
)

var validateHome = validator.New()

type HomeAdminController struct {
	DB *gorm.DB
}

func NewHomeAdminController(db *gorm.DB) *HomeAdminController {
	return &HomeAdminController{DB: db}
}

/* =========================
   Site settings
   ========================= */

func (ctrl *HomeAdminController) GetSettings(c *fiber.Ctx) error {
	settings, err := model.GetSiteSettings(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load site settings")
	}
	return c.JSON(settings)
}

func (ctrl *HomeAdminController) UpdateSettings(c *fiber.Ctx) error {
	var body dto.UpdateSiteSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	settings, err := model.GetSiteSettings(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load site settings")
	}

	if body.SiteName != nil {
		settings.SiteSettingSiteName = *body.SiteName
	}
	if body.Tagline != nil {
		settings.SiteSettingTagline = *body.Tagline
	}
	if body.About != nil {
		settings.SiteSettingAbout = *body.About
	}
	if body.LogoExtURL != nil {
		settings.SiteSettingLogoExtURL = *body.LogoExtURL
	}
	if body.Phone != nil {
		settings.SiteSettingPhone = *body.Phone
	}
	if body.Email != nil {
		settings.SiteSettingEmail = *body.Email
	}
	if body.Address != nil {
		settings.SiteSettingAddress = *body.Address
	}
	if body.Telegram != nil {
		settings.SiteSettingTelegram = *body.Telegram
	}
	if body.Whatsapp != nil {
		settings.SiteSettingWhatsapp = *body.Whatsapp
	}
	if body.Instagram != nil {
		settings.SiteSettingInstagram = *body.Instagram
	}
	if body.Youtube != nil {
		settings.SiteSettingYoutube = *body.Youtube
	}
	if body.MetaTitle != nil {
		settings.SiteSettingMetaTitle = *body.MetaTitle
	}
	if body.MetaDescription != nil {
		settings.SiteSettingMetaDescription = *body.MetaDescription
	}
	if body.FooterText != nil {
		settings.SiteSettingFooterText = *body.FooterText
	}

	if err := ctrl.DB.Save(&settings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update site settings")
	}
	return c.JSON(settings)
}

/* =========================
   Leads
   ========================= */

func (ctrl *HomeAdminController) GetAllLeads(c *fiber.Ctx) error {
	tx := ctrl.DB.Model(&model.ContactRequestModel{})
	if c.Query("processed") == "false" {
		tx = tx.Where("contact_request_is_processed = ?", false)
	}

	var leads []model.ContactRequestModel
	if err := tx.
		Order("contact_request_created_at DESC, contact_request_id").
		Find(&leads).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve leads")
	}

	items := make([]dto.ContactRequestDTO, 0, len(leads))
	for _, l := range leads {
		items = append(items, dto.ToContactRequestDTO(l))
	}
	return c.JSON(items)
}

func (ctrl *HomeAdminController) MarkLeadProcessed(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.ContactRequestModel{}).
		Where("contact_request_id = ?", id).
		UpdateColumn("contact_request_is_processed", true)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update lead")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Lead not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   FAQs
   ========================= */

func (ctrl *HomeAdminController) CreateFAQ(c *fiber.Ctx) error {
	var body dto.UpsertFAQRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	faq := model.FAQModel{
		FAQQuestion: body.Question,
		FAQAnswer:   body.Answer,
		FAQOrder:    body.Order,
		FAQIsActive: true,
	}
	if body.IsActive != nil {
		faq.FAQIsActive = *body.IsActive
	}
	if err := ctrl.DB.Create(&faq).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create FAQ")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToFAQDTO(faq))
}

func (ctrl *HomeAdminController) UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpsertFAQRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var faq model.FAQModel
	if err := ctrl.DB.First(&faq, "faq_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "FAQ not found")
	}

	faq.FAQQuestion = body.Question
	faq.FAQAnswer = body.Answer
	faq.FAQOrder = body.Order
	if body.IsActive != nil {
		faq.FAQIsActive = *body.IsActive
	}
	if err := ctrl.DB.Save(&faq).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update FAQ")
	}
	return c.JSON(dto.ToFAQDTO(faq))
}

func (ctrl *HomeAdminController) DeleteFAQ(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.FAQModel{}, "faq_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete FAQ")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   Code snippets
   ========================= */

func (ctrl *HomeAdminController) CreateSnippet(c *fiber.Ctx) error {
	var body dto.UpsertCodeSnippetRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	snippet := model.CodeSnippetModel{
		CodeSnippetName:     body.Name,
		CodeSnippetLocation: body.Location,
		CodeSnippetCode:     body.Code,
		CodeSnippetOrder:    body.Order,
		CodeSnippetIsActive: true,
	}
	if body.IsActive != nil {
		snippet.CodeSnippetIsActive = *body.IsActive
	}
	if err := ctrl.DB.Create(&snippet).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create snippet")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCodeSnippetDTO(snippet))
}

func (ctrl *HomeAdminController) DeleteSnippet(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.CodeSnippetModel{}, "code_snippet_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete snippet")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   Popups & header buttons
   ========================= */

func (ctrl *HomeAdminController) CreatePopup(c *fiber.Ctx) error {
	var body dto.UpsertPopupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	popup := model.PopupModel{
		PopupName:             body.Name,
		PopupLogoExtURL:       body.LogoExtURL,
		PopupBadgeText:        body.BadgeText,
		PopupTitle:            body.Title,
		PopupBackgroundExtURL: body.BackgroundExtURL,
		PopupFormHeading:      body.FormHeading,
		PopupFormButtonText:   body.FormButtonText,
		PopupThankYouText:     body.ThankYouText,
		PopupNotifyEmail:      body.NotifyEmail,
		PopupNotifyTelegram:   body.NotifyTelegram,
		PopupIsActive:         true,
	}
	if body.IsActive != nil {
		popup.PopupIsActive = *body.IsActive
	}
	if err := ctrl.DB.Create(&popup).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create popup")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPopupDTO(popup))
}

func (ctrl *HomeAdminController) DeletePopup(c *fiber.Ctx) error {
	id := c.Params("id")

	// buttons pointing at it keep working as plain links (FK goes NULL)
	if err := ctrl.DB.Delete(&model.PopupModel{}, "popup_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete popup")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *HomeAdminController) CreateHeaderButton(c *fiber.Ctx) error {
	var body dto.UpsertHeaderButtonRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	button := model.HeaderButtonModel{
		HeaderButtonText:     body.Text,
		HeaderButtonURL:      body.URL,
		HeaderButtonStyle:    body.Style,
		HeaderButtonOrder:    body.Order,
		HeaderButtonIsActive: true,
	}
	if body.IsActive != nil {
		button.HeaderButtonIsActive = *body.IsActive
	}
	if body.PopupID != nil {
		popupID, err := uuid.Parse(*body.PopupID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid popup id")
		}
		button.HeaderButtonPopupID = &popupID
	}
	if err := ctrl.DB.Create(&button).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create header button")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToHeaderButtonDTO(button))
}

func (ctrl *HomeAdminController) DeleteHeaderButton(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.HeaderButtonModel{}, "header_button_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete header button")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================
   Site testimonials
   ========================= */

func (ctrl *HomeAdminController) CreateSiteReview(c *fiber.Ctx) error {
	var body dto.UpsertReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	review := model.ReviewModel{
		ReviewUserName:     body.UserName,
		ReviewUserRole:     body.UserRole,
		ReviewAvatarExtURL: body.AvatarExtURL,
		ReviewRating:       body.Rating,
		ReviewText:         body.Text,
	}
	if body.IsApproved != nil {
		review.ReviewIsApproved = *body.IsApproved
	}
	if err := ctrl.DB.Create(&review).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create review")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToReviewDTO(review))
}

func (ctrl *HomeAdminController) ApproveSiteReview(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.ReviewModel{}).
		Where("review_id = ?", id).
		UpdateColumn("review_is_approved", true)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve review")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Review not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *HomeAdminController) DeleteSiteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.ReviewModel{}, "review_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete review")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *HomeAdminController) CreateVideoReview(c *fiber.Ctx) error {
	var body dto.UpsertVideoReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHome.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	review := model.VideoReviewModel{
		VideoReviewUserName:     body.UserName,
		VideoReviewYoutubeURL:   body.YoutubeURL,
		VideoReviewPosterExtURL: body.PosterExtURL,
		VideoReviewPageTag:      body.PageTag,
		VideoReviewOrder:        body.Order,
		VideoReviewIsActive:     true,
	}
	if body.IsActive != nil {
		review.VideoReviewIsActive = *body.IsActive
	}
	if err := ctrl.DB.Create(&review).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create video review")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToVideoReviewDTO(review))
}

func (ctrl *HomeAdminController) DeleteVideoReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.VideoReviewModel{}, "video_review_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete video review")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
