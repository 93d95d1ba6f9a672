package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"baliestate_backend/internals/features/news/dto"
	"baliestate_backend/internals/features/news/model"
	helper "baliestate_backend/internals/helpers"
	ossHelper "baliestate_backend/internals/helpers/oss"
)

var validateNews = validator.New()

type NewsAdminController struct {
	DB *gorm.DB
}

func NewNewsAdminController(db *gorm.DB) *NewsAdminController {
	return &NewsAdminController{DB: db}
}

// =============================
// ➕ Create post
// =============================
func (ctrl *NewsAdminController) CreatePost(c *fiber.Ctx) error {
	var body dto.CreateNewsPostRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	post := model.NewsPostModel{
		NewsPostTitle:           body.NewsPostTitle,
		NewsPostExcerpt:         body.NewsPostExcerpt,
		NewsPostContent:         body.NewsPostContent,
		NewsPostImageExtURL:     body.NewsPostImageExtURL,
		NewsPostTags:            body.NewsPostTags,
		NewsPostMetaTitle:       body.NewsPostMetaTitle,
		NewsPostMetaDescription: body.NewsPostMetaDescription,
		NewsPostStatus:          model.NewsStatusDraft,
	}
	if body.NewsPostStatus != "" {
		post.NewsPostStatus = body.NewsPostStatus
	}
	if post.NewsPostStatus == model.NewsStatusPublished {
		now := time.Now()
		post.NewsPostPublishedAt = &now
	}
	if body.NewsPostCategoryID != nil {
		catID, err := uuid.Parse(*body.NewsPostCategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
		}
		post.NewsPostCategoryID = &catID
	}

	if err := ctrl.DB.Create(&post).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			post.NewsPostID = uuid.Nil
			post.NewsPostSlug = ""
			if err := ctrl.DB.Create(&post).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create post")
			}
		} else {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create post")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToNewsPostDTO(post))
}

// =============================
// 🔄 Update post (slug never regenerated)
// =============================
func (ctrl *NewsAdminController) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateNewsPostRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.NewsPostModel
	if err := ctrl.DB.First(&post, "news_post_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}

	if body.NewsPostTitle != nil {
		post.NewsPostTitle = *body.NewsPostTitle
	}
	if body.NewsPostExcerpt != nil {
		post.NewsPostExcerpt = *body.NewsPostExcerpt
	}
	if body.NewsPostContent != nil {
		post.NewsPostContent = *body.NewsPostContent
	}
	if body.NewsPostImageExtURL != nil {
		post.NewsPostImageExtURL = *body.NewsPostImageExtURL
	}
	if body.NewsPostTags != nil {
		post.NewsPostTags = *body.NewsPostTags
	}
	if body.NewsPostMetaTitle != nil {
		post.NewsPostMetaTitle = *body.NewsPostMetaTitle
	}
	if body.NewsPostMetaDescription != nil {
		post.NewsPostMetaDescription = *body.NewsPostMetaDescription
	}
	if body.NewsPostStatus != nil {
		post.NewsPostStatus = *body.NewsPostStatus
		if post.NewsPostStatus == model.NewsStatusPublished && post.NewsPostPublishedAt == nil {
			now := time.Now()
			post.NewsPostPublishedAt = &now
		}
	}
	if body.NewsPostCategoryID != nil {
		catID, err := uuid.Parse(*body.NewsPostCategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
		}
		post.NewsPostCategoryID = &catID
	}

	if err := ctrl.DB.Save(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update post")
	}

	return c.JSON(dto.ToNewsPostDTO(post))
}

// =============================
// 🗑️ Delete post
// =============================
func (ctrl *NewsAdminController) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.NewsPostModel{}, "news_post_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete post")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// =============================
// 📄 Admin list (drafts included)
// =============================
func (ctrl *NewsAdminController) GetAllPosts(c *fiber.Ctx) error {
	var posts []model.NewsPostModel
	if err := ctrl.DB.
		Preload("NewsPostCategory").
		Order("news_post_created_at DESC, news_post_id").
		Find(&posts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	items := make([]dto.NewsPostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.ToNewsPostDTO(p))
	}

	return c.JSON(items)
}

// =============================
// 🖼️ Featured image upload
// =============================
func (ctrl *NewsAdminController) UploadPostImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.NewsPostModel
	if err := ctrl.DB.First(&post, "news_post_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image file")
	}

	url, err := ossHelper.UploadImage("news", fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Image upload failed")
	}

	post.NewsPostImageURL = url
	if err := ctrl.DB.Save(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save post image")
	}

	return helper.Success(c, "Image updated", fiber.Map{"url": url})
}

/* =========================
   Categories
   ========================= */

type upsertNewsCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (ctrl *NewsAdminController) CreateCategory(c *fiber.Ctx) error {
	var body upsertNewsCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	category := model.NewsCategoryModel{NewsCategoryName: body.Name}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToNewsCategoryDTO(category))
}

func (ctrl *NewsAdminController) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	// posts referencing it keep publishing with a NULL category
	if err := ctrl.DB.Delete(&model.NewsCategoryModel{}, "news_category_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
