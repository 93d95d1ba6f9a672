package dto

import (
	"time"

	"baliestate_backend/internals/features/news/model"
	helper "baliestate_backend/internals/helpers"
)

/* ============================
   Response DTO
   ============================ */

type NewsCategoryDTO struct {
	NewsCategoryID   string `json:"news_category_id"`
	NewsCategoryName string `json:"news_category_name"`
	NewsCategorySlug string `json:"news_category_slug"`
}

type NewsPostLiteDTO struct {
	NewsPostID          string     `json:"news_post_id"`
	NewsPostTitle       string     `json:"news_post_title"`
	NewsPostSlug        string     `json:"news_post_slug"`
	NewsPostExcerpt     string     `json:"news_post_excerpt,omitempty"`
	NewsPostImage       string     `json:"news_post_image"` // resolved URL
	NewsPostTags        []string   `json:"news_post_tags,omitempty"`
	NewsPostPublishedAt *time.Time `json:"news_post_published_at,omitempty"`
	NewsPostCategory    *NewsCategoryDTO `json:"news_post_category,omitempty"`
}

type NewsPostDTO struct {
	NewsPostLiteDTO

	NewsPostContent         string `json:"news_post_content,omitempty"`
	NewsPostMetaTitle       string `json:"news_post_meta_title,omitempty"`
	NewsPostMetaDescription string `json:"news_post_meta_description,omitempty"`
	NewsPostStatus          string `json:"news_post_status"`

	NewsPostCreatedAt time.Time `json:"news_post_created_at"`
	NewsPostUpdatedAt time.Time `json:"news_post_updated_at"`
}

/* ============================
   Create & Update Request DTO
   ============================ */

type CreateNewsPostRequest struct {
	NewsPostTitle      string  `json:"news_post_title" validate:"required,min=3,max=255"`
	NewsPostCategoryID *string `json:"news_post_category_id" validate:"omitempty,uuid"`

	NewsPostExcerpt     string `json:"news_post_excerpt" validate:"max=500"`
	NewsPostContent     string `json:"news_post_content"`
	NewsPostImageExtURL string `json:"news_post_image_ext_url" validate:"omitempty,url"`
	NewsPostTags        string `json:"news_post_tags" validate:"max=500"`

	NewsPostMetaTitle       string `json:"news_post_meta_title" validate:"max=255"`
	NewsPostMetaDescription string `json:"news_post_meta_description" validate:"max=500"`

	NewsPostStatus string `json:"news_post_status" validate:"omitempty,oneof=draft published"`
}

type UpdateNewsPostRequest struct {
	NewsPostTitle      *string `json:"news_post_title" validate:"omitempty,min=3,max=255"`
	NewsPostCategoryID *string `json:"news_post_category_id" validate:"omitempty,uuid"`

	NewsPostExcerpt     *string `json:"news_post_excerpt" validate:"omitempty,max=500"`
	NewsPostContent     *string `json:"news_post_content"`
	NewsPostImageExtURL *string `json:"news_post_image_ext_url" validate:"omitempty,url"`
	NewsPostTags        *string `json:"news_post_tags" validate:"omitempty,max=500"`

	NewsPostMetaTitle       *string `json:"news_post_meta_title" validate:"omitempty,max=255"`
	NewsPostMetaDescription *string `json:"news_post_meta_description" validate:"omitempty,max=500"`

	NewsPostStatus *string `json:"news_post_status" validate:"omitempty,oneof=draft published"`
}

/* ============================
   Converters
   ============================ */

func ToNewsCategoryDTO(m model.NewsCategoryModel) NewsCategoryDTO {
	return NewsCategoryDTO{
		NewsCategoryID:   m.NewsCategoryID.String(),
		NewsCategoryName: m.NewsCategoryName,
		NewsCategorySlug: m.NewsCategorySlug,
	}
}

func ToNewsPostLiteDTO(m model.NewsPostModel) NewsPostLiteDTO {
	out := NewsPostLiteDTO{
		NewsPostID:          m.NewsPostID.String(),
		NewsPostTitle:       m.NewsPostTitle,
		NewsPostSlug:        m.NewsPostSlug,
		NewsPostExcerpt:     m.NewsPostExcerpt,
		NewsPostImage:       helper.ResolveMedia(m.NewsPostImageURL, m.NewsPostImageExtURL),
		NewsPostTags:        m.TagsList(),
		NewsPostPublishedAt: m.NewsPostPublishedAt,
	}
	if m.NewsPostCategory != nil {
		cat := ToNewsCategoryDTO(*m.NewsPostCategory)
		out.NewsPostCategory = &cat
	}
	return out
}

func ToNewsPostDTO(m model.NewsPostModel) NewsPostDTO {
	return NewsPostDTO{
		NewsPostLiteDTO:         ToNewsPostLiteDTO(m),
		NewsPostContent:         m.NewsPostContent,
		NewsPostMetaTitle:       m.NewsPostMetaTitle,
		NewsPostMetaDescription: m.NewsPostMetaDescription,
		NewsPostStatus:          m.NewsPostStatus,
		NewsPostCreatedAt:       m.NewsPostCreatedAt,
		NewsPostUpdatedAt:       m.NewsPostUpdatedAt,
	}
}
