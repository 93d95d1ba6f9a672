package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: reviews
   ========================= */

// Site-wide testimonials shown on the home page, separate from the
// per-developer reviews.
type ReviewModel struct {
	ReviewID       uuid.UUID `json:"review_id" gorm:"column:review_id;type:uuid;primaryKey"`
	ReviewUserName string    `json:"review_user_name" gorm:"column:review_user_name;type:varchar(100);not null"`
	ReviewUserRole string    `json:"review_user_role" gorm:"column:review_user_role;type:varchar(100)"`

	ReviewAvatarURL    string `json:"review_avatar_url" gorm:"column:review_avatar_url;type:text"`
	ReviewAvatarExtURL string `json:"review_avatar_ext_url" gorm:"column:review_avatar_ext_url;type:text"`

	ReviewRating int    `json:"review_rating" gorm:"column:review_rating;not null;default:5"` // 1..5
	ReviewText   string `json:"review_text" gorm:"column:review_text;type:text;not null"`

	ReviewIsApproved bool      `json:"review_is_approved" gorm:"column:review_is_approved;not null;default:false"`
	ReviewCreatedAt  time.Time `json:"review_created_at" gorm:"column:review_created_at;autoCreateTime"`
}

func (ReviewModel) TableName() string { return "reviews" }

func (r *ReviewModel) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}

func ScopeApprovedSiteReviews(db *gorm.DB) *gorm.DB {
	return db.Where("review_is_approved = ?", true)
}

/* =========================
   Model: video_reviews
   ========================= */

// Video testimonials. Poster falls back to the YouTube thumbnail.
type VideoReviewModel struct {
	VideoReviewID       uuid.UUID `json:"video_review_id" gorm:"column:video_review_id;type:uuid;primaryKey"`
	VideoReviewUserName string    `json:"video_review_user_name" gorm:"column:video_review_user_name;type:varchar(100);not null"`

	VideoReviewYoutubeURL   string `json:"video_review_youtube_url" gorm:"column:video_review_youtube_url;type:varchar(500);not null"`
	VideoReviewPosterURL    string `json:"video_review_poster_url" gorm:"column:video_review_poster_url;type:text"`
	VideoReviewPosterExtURL string `json:"video_review_poster_ext_url" gorm:"column:video_review_poster_ext_url;type:text"`

	// which page section the testimonial belongs to
	VideoReviewPageTag string `json:"video_review_page_tag" gorm:"column:video_review_page_tag;type:varchar(100)"`

	VideoReviewOrder    int       `json:"video_review_order" gorm:"column:video_review_order;not null;default:0"`
	VideoReviewIsActive bool      `json:"video_review_is_active" gorm:"column:video_review_is_active;not null;default:true"`
	VideoReviewCreatedAt time.Time `json:"video_review_created_at" gorm:"column:video_review_created_at;autoCreateTime"`
}

func (VideoReviewModel) TableName() string { return "video_reviews" }

func (v *VideoReviewModel) BeforeCreate(tx *gorm.DB) error {
	if v.VideoReviewID == uuid.Nil {
		v.VideoReviewID = uuid.New()
	}
	return nil
}
