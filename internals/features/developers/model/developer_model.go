package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "baliestate_backend/internals/helpers"
)

/* =========================
   Model: developer_categories
   ========================= */

// Categories like Premium, Business+, Mid-range.
type DeveloperCategoryModel struct {
	DeveloperCategoryID      uuid.UUID `json:"developer_category_id" gorm:"column:developer_category_id;type:uuid;primaryKey"`
	DeveloperCategoryName    string    `json:"developer_category_name" gorm:"column:developer_category_name;type:varchar(100);not null"`
	DeveloperCategorySlug    string    `json:"developer_category_slug" gorm:"column:developer_category_slug;type:varchar(100);uniqueIndex;not null"`
	DeveloperCategoryIconURL string    `json:"developer_category_icon_url" gorm:"column:developer_category_icon_url;type:varchar(500)"`
	DeveloperCategoryOrder   int       `json:"developer_category_order" gorm:"column:developer_category_order;not null;default:0"`
}

func (DeveloperCategoryModel) TableName() string { return "developer_categories" }

func (dc *DeveloperCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if dc.DeveloperCategoryID == uuid.Nil {
		dc.DeveloperCategoryID = uuid.New()
	}
	if dc.DeveloperCategorySlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "developer_categories",
			SlugColumn:  "developer_category_slug",
			DefaultBase: "category",
		}, dc.DeveloperCategoryName)
		if err != nil {
			return err
		}
		dc.DeveloperCategorySlug = slug
	}
	return nil
}

/* =========================
   Model: developers
   ========================= */

type DeveloperModel struct {
	DeveloperID   uuid.UUID `json:"developer_id" gorm:"column:developer_id;type:uuid;primaryKey"`
	DeveloperName string    `json:"developer_name" gorm:"column:developer_name;type:varchar(255);not null"`
	DeveloperSlug string    `json:"developer_slug" gorm:"column:developer_slug;type:varchar(160);uniqueIndex;not null"`

	DeveloperCategoryID *uuid.UUID              `json:"developer_category_id,omitempty" gorm:"column:developer_category_id;type:uuid"`
	DeveloperCategory   *DeveloperCategoryModel `json:"developer_category,omitempty" gorm:"foreignKey:DeveloperCategoryID;references:DeveloperCategoryID;constraint:OnDelete:SET NULL"`

	DeveloperLogoURL     string `json:"developer_logo_url" gorm:"column:developer_logo_url;type:text"`
	DeveloperLogoExtURL  string `json:"developer_logo_ext_url" gorm:"column:developer_logo_ext_url;type:text"`
	DeveloperCoverURL    string `json:"developer_cover_url" gorm:"column:developer_cover_url;type:text"`
	DeveloperCoverExtURL string `json:"developer_cover_ext_url" gorm:"column:developer_cover_ext_url;type:text"`

	DeveloperTagline          string `json:"developer_tagline" gorm:"column:developer_tagline;type:varchar(255)"`
	DeveloperShortDescription string `json:"developer_short_description" gorm:"column:developer_short_description;type:text"`
	DeveloperDescription      string `json:"developer_description" gorm:"column:developer_description;type:text"` // HTML
	DeveloperInnovations      string `json:"developer_innovations" gorm:"column:developer_innovations;type:text"`
	DeveloperServices         string `json:"developer_services" gorm:"column:developer_services;type:text"`
	DeveloperFoundedYear      *int   `json:"developer_founded_year,omitempty" gorm:"column:developer_founded_year;type:int"`

	DeveloperCompletedCount  int `json:"developer_completed_count" gorm:"column:developer_completed_count;not null;default:0"`
	DeveloperInProgressCount int `json:"developer_in_progress_count" gorm:"column:developer_in_progress_count;not null;default:0"`

	// overall 1.0–5.0 plus percent sub-ratings for the progress bars
	DeveloperRating         float64 `json:"developer_rating" gorm:"column:developer_rating;type:numeric(2,1);not null;default:5.0"`
	DeveloperRatingDeadline int     `json:"developer_rating_deadline" gorm:"column:developer_rating_deadline;not null;default:80"`
	DeveloperRatingPremium  int     `json:"developer_rating_premium" gorm:"column:developer_rating_premium;not null;default:80"`
	DeveloperRatingSupport  int     `json:"developer_rating_support" gorm:"column:developer_rating_support;not null;default:80"`
	DeveloperRatingQuality  int     `json:"developer_rating_quality" gorm:"column:developer_rating_quality;not null;default:80"`

	DeveloperWebsite   string `json:"developer_website" gorm:"column:developer_website;type:varchar(500)"`
	DeveloperTelegram  string `json:"developer_telegram" gorm:"column:developer_telegram;type:varchar(100)"`
	DeveloperWhatsapp  string `json:"developer_whatsapp" gorm:"column:developer_whatsapp;type:varchar(50)"`
	DeveloperInstagram string `json:"developer_instagram" gorm:"column:developer_instagram;type:varchar(100)"`

	DeveloperIsVerified bool `json:"developer_is_verified" gorm:"column:developer_is_verified;not null;default:false"`
	DeveloperIsActive   bool `json:"developer_is_active" gorm:"column:developer_is_active;not null;default:true"`

	DeveloperCreatedAt time.Time `json:"developer_created_at" gorm:"column:developer_created_at;autoCreateTime"`
	DeveloperUpdatedAt time.Time `json:"developer_updated_at" gorm:"column:developer_updated_at;autoUpdateTime"`

	DeveloperHighlights []DeveloperHighlightModel `json:"developer_highlights,omitempty" gorm:"foreignKey:DeveloperHighlightDeveloperID;references:DeveloperID;constraint:OnDelete:CASCADE"`
}

func (DeveloperModel) TableName() string { return "developers" }

func (d *DeveloperModel) BeforeCreate(tx *gorm.DB) error {
	if d.DeveloperID == uuid.Nil {
		d.DeveloperID = uuid.New()
	}
	if d.DeveloperSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "developers",
			SlugColumn:  "developer_slug",
			DefaultBase: "developer",
		}, d.DeveloperName)
		if err != nil {
			return err
		}
		d.DeveloperSlug = slug
	}
	return nil
}

func (d *DeveloperModel) TotalObjects() int {
	return d.DeveloperCompletedCount + d.DeveloperInProgressCount
}

func ScopeActiveDevelopers(db *gorm.DB) *gorm.DB {
	return db.Where("developer_is_active = ?", true)
}

/* =========================
   Model: developer_highlights
   ========================= */

// Bullet points on the developer detail page.
type DeveloperHighlightModel struct {
	DeveloperHighlightID          uuid.UUID `json:"developer_highlight_id" gorm:"column:developer_highlight_id;type:uuid;primaryKey"`
	DeveloperHighlightDeveloperID uuid.UUID `json:"developer_highlight_developer_id" gorm:"column:developer_highlight_developer_id;type:uuid;not null"`
	DeveloperHighlightText        string    `json:"developer_highlight_text" gorm:"column:developer_highlight_text;type:varchar(500);not null"`
	DeveloperHighlightOrder       int       `json:"developer_highlight_order" gorm:"column:developer_highlight_order;not null;default:0"`
}

func (DeveloperHighlightModel) TableName() string { return "developer_highlights" }

func (h *DeveloperHighlightModel) BeforeCreate(tx *gorm.DB) error {
	if h.DeveloperHighlightID == uuid.Nil {
		h.DeveloperHighlightID = uuid.New()
	}
	return nil
}

/* =========================
   Model: developer_reviews
   ========================= */

// A review belongs to exactly one developer and is public only after
// moderation.
type DeveloperReviewModel struct {
	DeveloperReviewID          uuid.UUID `json:"developer_review_id" gorm:"column:developer_review_id;type:uuid;primaryKey"`
	DeveloperReviewDeveloperID uuid.UUID `json:"developer_review_developer_id" gorm:"column:developer_review_developer_id;type:uuid;not null"`

	Developer *DeveloperModel `json:"developer,omitempty" gorm:"foreignKey:DeveloperReviewDeveloperID;references:DeveloperID;constraint:OnDelete:CASCADE"`

	DeveloperReviewUserName     string `json:"developer_review_user_name" gorm:"column:developer_review_user_name;type:varchar(100);not null"`
	DeveloperReviewAvatarURL    string `json:"developer_review_avatar_url" gorm:"column:developer_review_avatar_url;type:text"`
	DeveloperReviewAvatarExtURL string `json:"developer_review_avatar_ext_url" gorm:"column:developer_review_avatar_ext_url;type:text"`

	DeveloperReviewRating int    `json:"developer_review_rating" gorm:"column:developer_review_rating;not null"` // 1..5
	DeveloperReviewText   string `json:"developer_review_text" gorm:"column:developer_review_text;type:text;not null"`

	DeveloperReviewIsApproved bool      `json:"developer_review_is_approved" gorm:"column:developer_review_is_approved;not null;default:false"`
	DeveloperReviewCreatedAt  time.Time `json:"developer_review_created_at" gorm:"column:developer_review_created_at;autoCreateTime"`
}

func (DeveloperReviewModel) TableName() string { return "developer_reviews" }

func (r *DeveloperReviewModel) BeforeCreate(tx *gorm.DB) error {
	if r.DeveloperReviewID == uuid.Nil {
		r.DeveloperReviewID = uuid.New()
	}
	return nil
}

func ScopeApprovedReviews(db *gorm.DB) *gorm.DB {
	return db.Where("developer_review_is_approved = ?", true)
}

/* =========================
   Model: videos
   ========================= */

// Developer videos. Poster falls back to the YouTube thumbnail when
// nothing was uploaded.
type VideoModel struct {
	VideoID    uuid.UUID `json:"video_id" gorm:"column:video_id;type:uuid;primaryKey"`
	VideoTitle string    `json:"video_title" gorm:"column:video_title;type:varchar(255);not null"`

	VideoDeveloperID *uuid.UUID      `json:"video_developer_id,omitempty" gorm:"column:video_developer_id;type:uuid"`
	Developer        *DeveloperModel `json:"developer,omitempty" gorm:"foreignKey:VideoDeveloperID;references:DeveloperID;constraint:OnDelete:SET NULL"`

	VideoYoutubeURL   string `json:"video_youtube_url" gorm:"column:video_youtube_url;type:varchar(500);not null"`
	VideoPosterURL    string `json:"video_poster_url" gorm:"column:video_poster_url;type:text"`
	VideoPosterExtURL string `json:"video_poster_ext_url" gorm:"column:video_poster_ext_url;type:text"`

	VideoViews    int64 `json:"video_views" gorm:"column:video_views;not null;default:0"`
	VideoIsActive bool  `json:"video_is_active" gorm:"column:video_is_active;not null;default:true"`

	VideoCreatedAt time.Time `json:"video_created_at" gorm:"column:video_created_at;autoCreateTime"`
}

func (VideoModel) TableName() string { return "videos" }

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.VideoID == uuid.Nil {
		v.VideoID = uuid.New()
	}
	return nil
}
