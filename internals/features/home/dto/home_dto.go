package dto

import (
	"time"

	"baliestate_backend/internals/features/home/model"
	helper "baliestate_backend/internals/helpers"
)

/* ============================
   Response DTO
   ============================ */

type SiteSettingDTO struct {
	SiteName string `json:"site_name"`
	Tagline  string `json:"tagline,omitempty"`
	About    string `json:"about,omitempty"`
	Logo     string `json:"logo"` // resolved URL

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`

	Telegram  string `json:"telegram,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	FooterText      string `json:"footer_text,omitempty"`
}

type FAQDTO struct {
	FAQID    string `json:"faq_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

type CodeSnippetDTO struct {
	CodeSnippetID string `json:"code_snippet_id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Code          string `json:"code"`
	Order         int    `json:"order"`
}

type PopupDTO struct {
	PopupID        string `json:"popup_id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Logo           string `json:"logo"`       // resolved URL
	Background     string `json:"background"` // resolved URL
	BadgeText      string `json:"badge_text,omitempty"`
	Title          string `json:"title"`
	FormHeading    string `json:"form_heading,omitempty"`
	FormButtonText string `json:"form_button_text,omitempty"`
	ThankYouText   string `json:"thank_you_text,omitempty"`
}

type HeaderButtonDTO struct {
	HeaderButtonID string    `json:"header_button_id"`
	Text           string    `json:"text"`
	URL            string    `json:"url,omitempty"`
	Style          string    `json:"style,omitempty"`
	Order          int       `json:"order"`
	Popup          *PopupDTO `json:"popup,omitempty"`
}

type ContactRequestDTO struct {
	ContactRequestID string    `json:"contact_request_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Telegram         string    `json:"telegram,omitempty"`
	Message          string    `json:"message,omitempty"`
	Source           string    `json:"source,omitempty"`
	IsProcessed      bool      `json:"is_processed"`
	CreatedAt        time.Time `json:"created_at"`
}

type ReviewDTO struct {
	ReviewID  string    `json:"review_id"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role,omitempty"`
	Avatar    string    `json:"avatar"` // resolved URL
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type VideoReviewDTO struct {
	VideoReviewID string `json:"video_review_id"`
	UserName      string `json:"user_name"`
	YoutubeURL    string `json:"youtube_url"`
	Poster        string `json:"poster"` // resolved, YouTube thumb fallback
	PageTag       string `json:"page_tag,omitempty"`
	Order         int    `json:"order"`
}

/* ============================
   Request DTO
   ============================ */

type UpdateSiteSettingsRequest struct {
	SiteName *string `json:"site_name" validate:"omitempty,min=2,max=100"`
	Tagline  *string `json:"tagline" validate:"omitempty,max=255"`
	About    *string `json:"about"`

	LogoExtURL *string `json:"logo_ext_url" validate:"omitempty,url"`

	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=500"`

	Telegram  *string `json:"telegram" validate:"omitempty,max=100"`
	Whatsapp  *string `json:"whatsapp" validate:"omitempty,max=50"`
	Instagram *string `json:"instagram" validate:"omitempty,max=100"`
	Youtube   *string `json:"youtube" validate:"omitempty,max=255"`

	MetaTitle       *string `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=500"`
	FooterText      *string `json:"footer_text" validate:"omitempty,max=500"`
}

type UpsertFAQRequest struct {
	Question string `json:"question" validate:"required,min=5,max=500"`
	Answer   string `json:"answer" validate:"required,min=5"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

type UpsertCodeSnippetRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Location string `json:"location" validate:"required,oneof=head body_start body_end"`
	Code     string `json:"code" validate:"required"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

type UpsertPopupRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	LogoExtURL     string `json:"logo_ext_url" validate:"omitempty,url"`
	BadgeText      string `json:"badge_text" validate:"max=100"`
	Title          string `json:"title" validate:"required,max=255"`
	BackgroundExtURL string `json:"background_ext_url" validate:"omitempty,url"`
	FormHeading    string `json:"form_heading" validate:"max=255"`
	FormButtonText string `json:"form_button_text" validate:"max=100"`
	ThankYouText   string `json:"thank_you_text" validate:"max=500"`
	NotifyEmail    string `json:"notify_email" validate:"omitempty,email"`
	NotifyTelegram string `json:"notify_telegram" validate:"max=100"`
	IsActive       *bool  `json:"is_active"`
}

type UpsertHeaderButtonRequest struct {
	Text    string  `json:"text" validate:"required,min=1,max=100"`
	URL     string  `json:"url" validate:"omitempty,url"`
	Style   string  `json:"style" validate:"max=50"`
	PopupID *string `json:"popup_id" validate:"omitempty,uuid"`
	Order   int     `json:"order"`
	IsActive *bool  `json:"is_active"`
}

type UpsertReviewRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	UserRole     string `json:"user_role" validate:"max=100"`
	AvatarExtURL string `json:"avatar_ext_url" validate:"omitempty,url"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text         string `json:"text" validate:"required,min=10"`
	IsApproved   *bool  `json:"is_approved"`
}

type UpsertVideoReviewRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	YoutubeURL   string `json:"youtube_url" validate:"required,url"`
	PosterExtURL string `json:"poster_ext_url" validate:"omitempty,url"`
	PageTag      string `json:"page_tag" validate:"max=100"`
	Order        int    `json:"order"`
	IsActive     *bool  `json:"is_active"`
}

/* ============================
   Converters
   ============================ */

func ToSiteSettingDTO(m model.SiteSettingModel) SiteSettingDTO {
	return SiteSettingDTO{
		SiteName:        m.SiteSettingSiteName,
		Tagline:         m.SiteSettingTagline,
		About:           m.SiteSettingAbout,
		Logo:            helper.ResolveMedia(m.SiteSettingLogoURL, m.SiteSettingLogoExtURL),
		Phone:           m.SiteSettingPhone,
		Email:           m.SiteSettingEmail,
		Address:         m.SiteSettingAddress,
		Telegram:        m.SiteSettingTelegram,
		Whatsapp:        m.SiteSettingWhatsapp,
		Instagram:       m.SiteSettingInstagram,
		Youtube:         m.SiteSettingYoutube,
		MetaTitle:       m.SiteSettingMetaTitle,
		MetaDescription: m.SiteSettingMetaDescription,
		FooterText:      m.SiteSettingFooterText,
	}
}

func ToFAQDTO(m model.FAQModel) FAQDTO {
	return FAQDTO{
		FAQID:    m.FAQID.String(),
		Question: m.FAQQuestion,
		Answer:   m.FAQAnswer,
		Order:    m.FAQOrder,
	}
}

func ToCodeSnippetDTO(m model.CodeSnippetModel) CodeSnippetDTO {
	return CodeSnippetDTO{
		CodeSnippetID: m.CodeSnippetID.String(),
		Name:          m.CodeSnippetName,
		Location:      m.CodeSnippetLocation,
		Code:          m.CodeSnippetCode,
		Order:         m.CodeSnippetOrder,
	}
}

func ToPopupDTO(m model.PopupModel) PopupDTO {
	return PopupDTO{
		PopupID:        m.PopupID.String(),
		Name:           m.PopupName,
		Slug:           m.PopupSlug,
		Logo:           helper.ResolveMedia(m.PopupLogoURL, m.PopupLogoExtURL),
		Background:     helper.ResolveMedia(m.PopupBackgroundURL, m.PopupBackgroundExtURL),
		BadgeText:      m.PopupBadgeText,
		Title:          m.PopupTitle,
		FormHeading:    m.PopupFormHeading,
		FormButtonText: m.PopupFormButtonText,
		ThankYouText:   m.PopupThankYouText,
	}
}

func ToHeaderButtonDTO(m model.HeaderButtonModel) HeaderButtonDTO {
	out := HeaderButtonDTO{
		HeaderButtonID: m.HeaderButtonID.String(),
		Text:           m.HeaderButtonText,
		URL:            m.HeaderButtonURL,
		Style:          m.HeaderButtonStyle,
		Order:          m.HeaderButtonOrder,
	}
	if m.Popup != nil {
		p := ToPopupDTO(*m.Popup)
		out.Popup = &p
	}
	return out
}

func ToContactRequestDTO(m model.ContactRequestModel) ContactRequestDTO {
	return ContactRequestDTO{
		ContactRequestID: m.ContactRequestID.String(),
		Name:             m.ContactRequestName,
		Phone:            m.ContactRequestPhone,
		Email:            m.ContactRequestEmail,
		Telegram:         m.ContactRequestTelegram,
		Message:          m.ContactRequestMessage,
		Source:           m.ContactRequestSource,
		IsProcessed:      m.ContactRequestIsProcessed,
		CreatedAt:        m.ContactRequestCreatedAt,
	}
}

func ToReviewDTO(m model.ReviewModel) ReviewDTO {
	return ReviewDTO{
		ReviewID:  m.ReviewID.String(),
		UserName:  m.ReviewUserName,
		UserRole:  m.ReviewUserRole,
		Avatar:    helper.ResolveMedia(m.ReviewAvatarURL, m.ReviewAvatarExtURL),
		Rating:    m.ReviewRating,
		Text:      m.ReviewText,
		CreatedAt: m.ReviewCreatedAt,
	}
}

func ToVideoReviewDTO(m model.VideoReviewModel) VideoReviewDTO {
	return VideoReviewDTO{
		VideoReviewID: m.VideoReviewID.String(),
		UserName:      m.VideoReviewUserName,
		YoutubeURL:    m.VideoReviewYoutubeURL,
		Poster: helper.ResolveMedia(m.VideoReviewPosterURL, m.VideoReviewPosterExtURL, func() string {
			return helper.YouTubeThumbnail(m.VideoReviewYoutubeURL)
		}),
		PageTag: m.VideoReviewPageTag,
		Order:   m.VideoReviewOrder,
	}
}
