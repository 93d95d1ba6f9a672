package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "baliestate_backend/internals/helpers"
)

const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
)

/* =========================
   Model: news_categories
   ========================= */

type NewsCategoryModel struct {
	NewsCategoryID   uuid.UUID `json:"news_category_id" gorm:"column:news_category_id;type:uuid;primaryKey"`
	NewsCategoryName string    `json:"news_category_name" gorm:"column:news_category_name;type:varchar(100);not null"`
	NewsCategorySlug string    `json:"news_category_slug" gorm:"column:news_category_slug;type:varchar(100);uniqueIndex;not null"`
}

func (NewsCategoryModel) TableName() string { return "news_categories" }

func (nc *NewsCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if nc.NewsCategoryID == uuid.Nil {
		nc.NewsCategoryID = uuid.New()
	}
	if nc.NewsCategorySlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "news_categories",
			SlugColumn:  "news_category_slug",
			DefaultBase: "category",
		}, nc.NewsCategoryName)
		if err != nil {
			return err
		}
		nc.NewsCategorySlug = slug
	}
	return nil
}

/* =========================
   Model: news_posts
   ========================= */

type NewsPostModel struct {
	NewsPostID    uuid.UUID `json:"news_post_id" gorm:"column:news_post_id;type:uuid;primaryKey"`
	NewsPostTitle string    `json:"news_post_title" gorm:"column:news_post_title;type:varchar(255);not null"`
	NewsPostSlug  string    `json:"news_post_slug" gorm:"column:news_post_slug;type:varchar(160);uniqueIndex;not null"`

	NewsPostCategoryID *uuid.UUID         `json:"news_post_category_id,omitempty" gorm:"column:news_post_category_id;type:uuid"`
	NewsPostCategory   *NewsCategoryModel `json:"news_post_category,omitempty" gorm:"foreignKey:NewsPostCategoryID;references:NewsCategoryID;constraint:OnDelete:SET NULL"`

	NewsPostExcerpt string `json:"news_post_excerpt" gorm:"column:news_post_excerpt;type:varchar(500)"`
	NewsPostContent string `json:"news_post_content" gorm:"column:news_post_content;type:text"` // HTML

	NewsPostImageURL    string `json:"news_post_image_url" gorm:"column:news_post_image_url;type:text"`
	NewsPostImageExtURL string `json:"news_post_image_ext_url" gorm:"column:news_post_image_ext_url;type:text"`

	// comma-separated, e.g. "bali,investment,villas"
	NewsPostTags string `json:"news_post_tags" gorm:"column:news_post_tags;type:varchar(500)"`

	NewsPostMetaTitle       string `json:"news_post_meta_title" gorm:"column:news_post_meta_title;type:varchar(255)"`
	NewsPostMetaDescription string `json:"news_post_meta_description" gorm:"column:news_post_meta_description;type:varchar(500)"`

	NewsPostStatus      string     `json:"news_post_status" gorm:"column:news_post_status;type:varchar(20);not null;default:'draft'"`
	NewsPostPublishedAt *time.Time `json:"news_post_published_at,omitempty" gorm:"column:news_post_published_at"`

	NewsPostCreatedAt time.Time `json:"news_post_created_at" gorm:"column:news_post_created_at;autoCreateTime"`
	NewsPostUpdatedAt time.Time `json:"news_post_updated_at" gorm:"column:news_post_updated_at;autoUpdateTime"`
}

func (NewsPostModel) TableName() string { return "news_posts" }

func (n *NewsPostModel) BeforeCreate(tx *gorm.DB) error {
	if n.NewsPostID == uuid.Nil {
		n.NewsPostID = uuid.New()
	}
	if n.NewsPostSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "news_posts",
			SlugColumn:  "news_post_slug",
			DefaultBase: "post",
		}, n.NewsPostTitle)
		if err != nil {
			return err
		}
		n.NewsPostSlug = slug
	}
	return nil
}

func (n *NewsPostModel) TagsList() []string {
	if strings.TrimSpace(n.NewsPostTags) == "" {
		return nil
	}
	parts := strings.Split(n.NewsPostTags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func ScopePublishedPosts(db *gorm.DB) *gorm.DB {
	return db.Where("news_post_status = ?", NewsStatusPublished)
}
