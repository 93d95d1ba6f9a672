package dto

import (
	"fmt"
	"time"

	"baliestate_backend/internals/features/developers/model"
	helper "baliestate_backend/internals/helpers"
)

/* ============================
   Response DTO
   ============================ */

type DeveloperCategoryDTO struct {
	DeveloperCategoryID      string `json:"developer_category_id"`
	DeveloperCategoryName    string `json:"developer_category_name"`
	DeveloperCategorySlug    string `json:"developer_category_slug"`
	DeveloperCategoryIconURL string `json:"developer_category_icon_url,omitempty"`
	DeveloperCategoryOrder   int    `json:"developer_category_order"`
}

type DeveloperHighlightDTO struct {
	DeveloperHighlightID string `json:"developer_highlight_id"`
	Text                 string `json:"text"`
	Order                int    `json:"order"`
}

type DeveloperLiteDTO struct {
	DeveloperID         string                `json:"developer_id"`
	DeveloperName       string                `json:"developer_name"`
	DeveloperSlug       string                `json:"developer_slug"`
	DeveloperLogo       string                `json:"developer_logo"`  // resolved URL
	DeveloperCover      string                `json:"developer_cover"` // resolved URL
	DeveloperTagline    string                `json:"developer_tagline,omitempty"`
	DeveloperRating     float64               `json:"developer_rating"`
	DeveloperIsVerified bool                  `json:"developer_is_verified"`
	DeveloperCategory   *DeveloperCategoryDTO `json:"developer_category,omitempty"`
}

type DeveloperDTO struct {
	DeveloperLiteDTO

	DeveloperShortDescription string `json:"developer_short_description,omitempty"`
	DeveloperDescription      string `json:"developer_description,omitempty"`
	DeveloperInnovations      string `json:"developer_innovations,omitempty"`
	DeveloperServices         string `json:"developer_services,omitempty"`
	DeveloperFoundedYear      *int   `json:"developer_founded_year,omitempty"`

	DeveloperCompletedCount  int `json:"developer_completed_count"`
	DeveloperInProgressCount int `json:"developer_in_progress_count"`
	DeveloperTotalObjects    int `json:"developer_total_objects"`

	// percent sub-ratings plus the "4/5" style display labels
	DeveloperRatingDeadline        int    `json:"developer_rating_deadline"`
	DeveloperRatingPremium         int    `json:"developer_rating_premium"`
	DeveloperRatingSupport         int    `json:"developer_rating_support"`
	DeveloperRatingQuality         int    `json:"developer_rating_quality"`
	DeveloperRatingDeadlineDisplay string `json:"developer_rating_deadline_display"`
	DeveloperRatingPremiumDisplay  string `json:"developer_rating_premium_display"`
	DeveloperRatingSupportDisplay  string `json:"developer_rating_support_display"`
	DeveloperRatingQualityDisplay  string `json:"developer_rating_quality_display"`

	DeveloperWebsite   string `json:"developer_website,omitempty"`
	DeveloperTelegram  string `json:"developer_telegram,omitempty"`
	DeveloperWhatsapp  string `json:"developer_whatsapp,omitempty"`
	DeveloperInstagram string `json:"developer_instagram,omitempty"`

	DeveloperIsActive   bool                    `json:"developer_is_active"`
	DeveloperCreatedAt  time.Time               `json:"developer_created_at"`
	DeveloperHighlights []DeveloperHighlightDTO `json:"developer_highlights,omitempty"`
}

type DeveloperReviewDTO struct {
	DeveloperReviewID string    `json:"developer_review_id"`
	DeveloperID       string    `json:"developer_id"`
	UserName          string    `json:"user_name"`
	Avatar            string    `json:"avatar"` // resolved URL
	Rating            int       `json:"rating"`
	Text              string    `json:"text"`
	IsApproved        bool      `json:"is_approved"`
	CreatedAt         time.Time `json:"created_at"`
}

type VideoDTO struct {
	VideoID         string    `json:"video_id"`
	VideoTitle      string    `json:"video_title"`
	VideoYoutubeURL string    `json:"video_youtube_url"`
	VideoPoster     string    `json:"video_poster"` // resolved, YouTube thumb fallback
	VideoViews      int64     `json:"video_views"`
	VideoCreatedAt  time.Time `json:"video_created_at"`
	DeveloperName   string    `json:"developer_name,omitempty"`
	DeveloperSlug   string    `json:"developer_slug,omitempty"`
}

/* ============================
   Create & Update Request DTO
   ============================ */

type CreateDeveloperRequest struct {
	DeveloperName       string  `json:"developer_name" validate:"required,min=2"`
	DeveloperCategoryID *string `json:"developer_category_id" validate:"omitempty,uuid"`

	DeveloperLogoExtURL  string `json:"developer_logo_ext_url" validate:"omitempty,url"`
	DeveloperCoverExtURL string `json:"developer_cover_ext_url" validate:"omitempty,url"`

	DeveloperTagline          string `json:"developer_tagline" validate:"max=255"`
	DeveloperShortDescription string `json:"developer_short_description" validate:"max=500"`
	DeveloperDescription      string `json:"developer_description"`
	DeveloperInnovations      string `json:"developer_innovations"`
	DeveloperServices         string `json:"developer_services"`
	DeveloperFoundedYear      *int   `json:"developer_founded_year" validate:"omitempty,gte=1900,lte=2100"`

	DeveloperCompletedCount  int `json:"developer_completed_count" validate:"gte=0"`
	DeveloperInProgressCount int `json:"developer_in_progress_count" validate:"gte=0"`

	DeveloperRating         *float64 `json:"developer_rating" validate:"omitempty,gte=1,lte=5"`
	DeveloperRatingDeadline *int     `json:"developer_rating_deadline" validate:"omitempty,gte=0,lte=100"`
	DeveloperRatingPremium  *int     `json:"developer_rating_premium" validate:"omitempty,gte=0,lte=100"`
	DeveloperRatingSupport  *int     `json:"developer_rating_support" validate:"omitempty,gte=0,lte=100"`
	DeveloperRatingQuality  *int     `json:"developer_rating_quality" validate:"omitempty,gte=0,lte=100"`

	DeveloperWebsite   string `json:"developer_website" validate:"omitempty,url"`
	DeveloperTelegram  string `json:"developer_telegram" validate:"max=100"`
	DeveloperWhatsapp  string `json:"developer_whatsapp" validate:"max=50"`
	DeveloperInstagram string `json:"developer_instagram" validate:"max=100"`

	DeveloperIsVerified bool  `json:"developer_is_verified"`
	DeveloperIsActive   *bool `json:"developer_is_active"`
}

type SubmitReviewRequest struct {
	DeveloperSlug string `json:"developer_slug" validate:"required"`
	UserName      string `json:"user_name" validate:"required,min=2,max=100"`
	AvatarExtURL  string `json:"avatar_ext_url" validate:"omitempty,url"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text          string `json:"text" validate:"required,min=10"`
}

type CreateVideoRequest struct {
	VideoTitle       string  `json:"video_title" validate:"required,min=3"`
	VideoDeveloperID *string `json:"video_developer_id" validate:"omitempty,uuid"`
	VideoYoutubeURL  string  `json:"video_youtube_url" validate:"required,url"`
	VideoPosterExtURL string `json:"video_poster_ext_url" validate:"omitempty,url"`
	VideoIsActive    *bool   `json:"video_is_active"`
}

/* ============================
   Converters
   ============================ */

func ToDeveloperCategoryDTO(m model.DeveloperCategoryModel) DeveloperCategoryDTO {
	return DeveloperCategoryDTO{
		DeveloperCategoryID:      m.DeveloperCategoryID.String(),
		DeveloperCategoryName:    m.DeveloperCategoryName,
		DeveloperCategorySlug:    m.DeveloperCategorySlug,
		DeveloperCategoryIconURL: m.DeveloperCategoryIconURL,
		DeveloperCategoryOrder:   m.DeveloperCategoryOrder,
	}
}

func ToDeveloperLiteDTO(m model.DeveloperModel) DeveloperLiteDTO {
	out := DeveloperLiteDTO{
		DeveloperID:         m.DeveloperID.String(),
		DeveloperName:       m.DeveloperName,
		DeveloperSlug:       m.DeveloperSlug,
		DeveloperLogo:       helper.ResolveMedia(m.DeveloperLogoURL, m.DeveloperLogoExtURL),
		DeveloperCover:      helper.ResolveMedia(m.DeveloperCoverURL, m.DeveloperCoverExtURL),
		DeveloperTagline:    m.DeveloperTagline,
		DeveloperRating:     m.DeveloperRating,
		DeveloperIsVerified: m.DeveloperIsVerified,
	}
	if m.DeveloperCategory != nil {
		cat := ToDeveloperCategoryDTO(*m.DeveloperCategory)
		out.DeveloperCategory = &cat
	}
	return out
}

// ratingDisplay maps a 0-100 percent bar onto the "N/5" label.
func ratingDisplay(percent int) string {
	return fmt.Sprintf("%d/5", percent/20)
}

func ToDeveloperDTO(m model.DeveloperModel) DeveloperDTO {
	out := DeveloperDTO{
		DeveloperLiteDTO:          ToDeveloperLiteDTO(m),
		DeveloperShortDescription: m.DeveloperShortDescription,
		DeveloperDescription:      m.DeveloperDescription,
		DeveloperInnovations:      m.DeveloperInnovations,
		DeveloperServices:         m.DeveloperServices,
		DeveloperFoundedYear:      m.DeveloperFoundedYear,
		DeveloperCompletedCount:   m.DeveloperCompletedCount,
		DeveloperInProgressCount:  m.DeveloperInProgressCount,
		DeveloperTotalObjects:     m.TotalObjects(),

		DeveloperRatingDeadline:        m.DeveloperRatingDeadline,
		DeveloperRatingPremium:         m.DeveloperRatingPremium,
		DeveloperRatingSupport:         m.DeveloperRatingSupport,
		DeveloperRatingQuality:         m.DeveloperRatingQuality,
		DeveloperRatingDeadlineDisplay: ratingDisplay(m.DeveloperRatingDeadline),
		DeveloperRatingPremiumDisplay:  ratingDisplay(m.DeveloperRatingPremium),
		DeveloperRatingSupportDisplay:  ratingDisplay(m.DeveloperRatingSupport),
		DeveloperRatingQualityDisplay:  ratingDisplay(m.DeveloperRatingQuality),

		DeveloperWebsite:   m.DeveloperWebsite,
		DeveloperTelegram:  m.DeveloperTelegram,
		DeveloperWhatsapp:  m.DeveloperWhatsapp,
		DeveloperInstagram: m.DeveloperInstagram,
		DeveloperIsActive:  m.DeveloperIsActive,
		DeveloperCreatedAt: m.DeveloperCreatedAt,
	}
	for _, h := range m.DeveloperHighlights {
		out.DeveloperHighlights = append(out.DeveloperHighlights, DeveloperHighlightDTO{
			DeveloperHighlightID: h.DeveloperHighlightID.String(),
			Text:                 h.DeveloperHighlightText,
			Order:                h.DeveloperHighlightOrder,
		})
	}
	return out
}

func ToDeveloperReviewDTO(m model.DeveloperReviewModel) DeveloperReviewDTO {
	return DeveloperReviewDTO{
		DeveloperReviewID: m.DeveloperReviewID.String(),
		DeveloperID:       m.DeveloperReviewDeveloperID.String(),
		UserName:          m.DeveloperReviewUserName,
		Avatar:            helper.ResolveMedia(m.DeveloperReviewAvatarURL, m.DeveloperReviewAvatarExtURL),
		Rating:            m.DeveloperReviewRating,
		Text:              m.DeveloperReviewText,
		IsApproved:        m.DeveloperReviewIsApproved,
		CreatedAt:         m.DeveloperReviewCreatedAt,
	}
}

func ToVideoDTO(m model.VideoModel) VideoDTO {
	out := VideoDTO{
		VideoID:         m.VideoID.String(),
		VideoTitle:      m.VideoTitle,
		VideoYoutubeURL: m.VideoYoutubeURL,
		VideoPoster: helper.ResolveMedia(m.VideoPosterURL, m.VideoPosterExtURL, func() string {
			return helper.YouTubeThumbnail(m.VideoYoutubeURL)
		}),
		VideoViews:     m.VideoViews,
		VideoCreatedAt: m.VideoCreatedAt,
	}
	if m.Developer != nil {
		out.DeveloperName = m.Developer.DeveloperName
		out.DeveloperSlug = m.Developer.DeveloperSlug
	}
	return out
}
