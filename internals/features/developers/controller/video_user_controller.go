package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/developers/dto"
	"baliestate_backend/internals/features/developers/model"
	helper "baliestate_backend/internals/helpers"
)

const videoPageSize = 8

type VideoUserController struct {
	DB *gorm.DB
}

func NewVideoUserController(db *gorm.DB) *VideoUserController {
	return &VideoUserController{DB: db}
}

// =============================
// 🎬 Video list (paginated, optional developer filter)
// =============================
func (ctrl *VideoUserController) ListVideos(c *fiber.Ctx) error {
	developerSlug := strings.TrimSpace(c.Query("developer"))

	tx := ctrl.DB.Model(&model.VideoModel{}).Where("video_is_active = ?", true)
	if developerSlug != "" {
		tx = tx.Joins("JOIN developers ON developers.developer_id = videos.video_developer_id").
			Where("developers.developer_slug = ?", developerSlug)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count videos")
	}

	params := helper.ParsePage(c, videoPageSize)
	params.ClampToTotal(total)

	var videos []model.VideoModel
	if err := tx.
		Preload("Developer").
		Order("video_created_at DESC, video_id").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&videos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve videos")
	}

	items := make([]dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		items = append(items, dto.ToVideoDTO(v))
	}

	// most-watched teaser for the sidebar
	var popular []model.VideoModel
	if err := ctrl.DB.
		Where("video_is_active = ?", true).
		Order("video_views DESC, video_id").
		Limit(3).
		Find(&popular).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve popular videos")
	}
	popularDTOs := make([]dto.VideoDTO, 0, len(popular))
	for _, v := range popular {
		popularDTOs = append(popularDTOs, dto.ToVideoDTO(v))
	}

	return helper.Success(c, "OK", fiber.Map{
		"videos":            items,
		"pagination":        helper.BuildMeta(total, params),
		"popular_videos":    popularDTOs,
		"current_developer": developerSlug,
	})
}

// =============================
// 👁️ Count a view
// =============================
func (ctrl *VideoUserController) RegisterView(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.VideoModel{}).
		Where("video_id = ?", id).
		UpdateColumn("video_views", gorm.Expr("video_views + 1"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register view")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Video not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
