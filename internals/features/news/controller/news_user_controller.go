package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/news/dto"
	"baliestate_backend/internals/features/news/model"
	helper "baliestate_backend/internals/helpers"
)

const newsPageSize = 9

type NewsUserController struct {
	DB *gorm.DB
}

func NewNewsUserController(db *gorm.DB) *NewsUserController {
	return &NewsUserController{DB: db}
}

// =============================
// 📰 Published posts (paginated, optional category filter)
// =============================
func (ctrl *NewsUserController) ListPosts(c *fiber.Ctx) error {
	categorySlug := strings.TrimSpace(c.Query("category"))

	tx := ctrl.DB.Model(&model.NewsPostModel{}).Scopes(model.ScopePublishedPosts)
	if categorySlug != "" {
		tx = tx.Joins("JOIN news_categories ON news_categories.news_category_id = news_posts.news_post_category_id").
			Where("news_categories.news_category_slug = ?", categorySlug)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count posts")
	}

	params := helper.ParsePage(c, newsPageSize)
	params.ClampToTotal(total)

	var posts []model.NewsPostModel
	if err := tx.
		Preload("NewsPostCategory").
		Order("news_post_published_at DESC, news_post_id").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&posts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	items := make([]dto.NewsPostLiteDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.ToNewsPostLiteDTO(p))
	}

	var categories []model.NewsCategoryModel
	if err := ctrl.DB.Order("news_category_name").Find(&categories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve categories")
	}
	categoryDTOs := make([]dto.NewsCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		categoryDTOs = append(categoryDTOs, dto.ToNewsCategoryDTO(cat))
	}

	return helper.Success(c, "OK", fiber.Map{
		"posts":            items,
		"pagination":       helper.BuildMeta(total, params),
		"categories":       categoryDTOs,
		"current_category": categorySlug,
	})
}

// =============================
// 🔍 Post detail by slug
// =============================
func (ctrl *NewsUserController) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.NewsPostModel
	err := ctrl.DB.
		Scopes(model.ScopePublishedPosts).
		Preload("NewsPostCategory").
		First(&post, "news_post_slug = ?", slug).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}

	// latest posts for the sidebar, excluding the one on screen
	var recent []model.NewsPostModel
	if err := ctrl.DB.
		Scopes(model.ScopePublishedPosts).
		Where("news_post_id <> ?", post.NewsPostID).
		Order("news_post_published_at DESC, news_post_id").
		Limit(3).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve recent posts")
	}
	recentDTOs := make([]dto.NewsPostLiteDTO, 0, len(recent))
	for _, p := range recent {
		recentDTOs = append(recentDTOs, dto.ToNewsPostLiteDTO(p))
	}

	// same-category picks
	var related []model.NewsPostModel
	if post.NewsPostCategoryID != nil {
		if err := ctrl.DB.
			Scopes(model.ScopePublishedPosts).
			Where("news_post_category_id = ? AND news_post_id <> ?", post.NewsPostCategoryID, post.NewsPostID).
			Order("news_post_published_at DESC, news_post_id").
			Limit(3).
			Find(&related).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve related posts")
		}
	}
	relatedDTOs := make([]dto.NewsPostLiteDTO, 0, len(related))
	for _, p := range related {
		relatedDTOs = append(relatedDTOs, dto.ToNewsPostLiteDTO(p))
	}

	// chronological neighbours by publish time
	var prev, next model.NewsPostModel
	var prevDTO, nextDTO *dto.NewsPostLiteDTO
	if post.NewsPostPublishedAt != nil {
		if err := ctrl.DB.
			Scopes(model.ScopePublishedPosts).
			Where("news_post_published_at < ?", post.NewsPostPublishedAt).
			Order("news_post_published_at DESC, news_post_id").
			First(&prev).Error; err == nil {
			d := dto.ToNewsPostLiteDTO(prev)
			prevDTO = &d
		}
		if err := ctrl.DB.
			Scopes(model.ScopePublishedPosts).
			Where("news_post_published_at > ?", post.NewsPostPublishedAt).
			Order("news_post_published_at ASC, news_post_id").
			First(&next).Error; err == nil {
			d := dto.ToNewsPostLiteDTO(next)
			nextDTO = &d
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"post":          dto.ToNewsPostDTO(post),
		"recent_posts":  recentDTOs,
		"related_posts": relatedDTOs,
		"previous_post": prevDTO,
		"next_post":     nextDTO,
	})
}
