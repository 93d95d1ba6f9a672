package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "baliestate_backend/internals/helpers"
)

/* =========================
   Model: faqs
   ========================= */

type FAQModel struct {
	FAQID       uuid.UUID `json:"faq_id" gorm:"column:faq_id;type:uuid;primaryKey"`
	FAQQuestion string    `json:"faq_question" gorm:"column:faq_question;type:varchar(500);not null"`
	FAQAnswer   string    `json:"faq_answer" gorm:"column:faq_answer;type:text;not null"`
	FAQOrder    int       `json:"faq_order" gorm:"column:faq_order;not null;default:0"`
	FAQIsActive bool      `json:"faq_is_active" gorm:"column:faq_is_active;not null;default:true"`
}

func (FAQModel) TableName() string { return "faqs" }

func (f *FAQModel) BeforeCreate(tx *gorm.DB) error {
	if f.FAQID == uuid.Nil {
		f.FAQID = uuid.New()
	}
	return nil
}

/* =========================
   Model: code_snippets
   ========================= */

const (
	SnippetLocationHead      = "head"
	SnippetLocationBodyStart = "body_start"
	SnippetLocationBodyEnd   = "body_end"
)

// Analytics pixels and similar markup injected into the rendered pages.
type CodeSnippetModel struct {
	CodeSnippetID       uuid.UUID `json:"code_snippet_id" gorm:"column:code_snippet_id;type:uuid;primaryKey"`
	CodeSnippetName     string    `json:"code_snippet_name" gorm:"column:code_snippet_name;type:varchar(100);not null"`
	CodeSnippetLocation string    `json:"code_snippet_location" gorm:"column:code_snippet_location;type:varchar(20);not null;default:'head'"`
	CodeSnippetCode     string    `json:"code_snippet_code" gorm:"column:code_snippet_code;type:text;not null"`
	CodeSnippetOrder    int       `json:"code_snippet_order" gorm:"column:code_snippet_order;not null;default:0"`
	CodeSnippetIsActive bool      `json:"code_snippet_is_active" gorm:"column:code_snippet_is_active;not null;default:true"`
}

func (CodeSnippetModel) TableName() string { return "code_snippets" }

func (s *CodeSnippetModel) BeforeCreate(tx *gorm.DB) error {
	if s.CodeSnippetID == uuid.Nil {
		s.CodeSnippetID = uuid.New()
	}
	return nil
}

/* =========================
   Model: popups
   ========================= */

// Lead-capture popups opened by header buttons.
type PopupModel struct {
	PopupID   uuid.UUID `json:"popup_id" gorm:"column:popup_id;type:uuid;primaryKey"`
	PopupName string    `json:"popup_name" gorm:"column:popup_name;type:varchar(100);not null"`
	PopupSlug string    `json:"popup_slug" gorm:"column:popup_slug;type:varchar(100);uniqueIndex;not null"`

	PopupLogoURL          string `json:"popup_logo_url" gorm:"column:popup_logo_url;type:text"`
	PopupLogoExtURL       string `json:"popup_logo_ext_url" gorm:"column:popup_logo_ext_url;type:text"`
	PopupBadgeText        string `json:"popup_badge_text" gorm:"column:popup_badge_text;type:varchar(100)"`
	PopupTitle            string `json:"popup_title" gorm:"column:popup_title;type:varchar(255);not null"`
	PopupBackgroundURL    string `json:"popup_background_url" gorm:"column:popup_background_url;type:text"`
	PopupBackgroundExtURL string `json:"popup_background_ext_url" gorm:"column:popup_background_ext_url;type:text"`

	PopupFormHeading    string `json:"popup_form_heading" gorm:"column:popup_form_heading;type:varchar(255)"`
	PopupFormButtonText string `json:"popup_form_button_text" gorm:"column:popup_form_button_text;type:varchar(100)"`
	PopupThankYouText   string `json:"popup_thank_you_text" gorm:"column:popup_thank_you_text;type:varchar(500)"`

	// where lead notifications go
	PopupNotifyEmail    string `json:"popup_notify_email" gorm:"column:popup_notify_email;type:varchar(255)"`
	PopupNotifyTelegram string `json:"popup_notify_telegram" gorm:"column:popup_notify_telegram;type:varchar(100)"`

	PopupIsActive bool `json:"popup_is_active" gorm:"column:popup_is_active;not null;default:true"`
}

func (PopupModel) TableName() string { return "popups" }

func (p *PopupModel) BeforeCreate(tx *gorm.DB) error {
	if p.PopupID == uuid.Nil {
		p.PopupID = uuid.New()
	}
	if p.PopupSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "popups",
			SlugColumn:  "popup_slug",
			DefaultBase: "popup",
		}, p.PopupName)
		if err != nil {
			return err
		}
		p.PopupSlug = slug
	}
	return nil
}

/* =========================
   Model: header_buttons
   ========================= */

type HeaderButtonModel struct {
	HeaderButtonID    uuid.UUID `json:"header_button_id" gorm:"column:header_button_id;type:uuid;primaryKey"`
	HeaderButtonText  string    `json:"header_button_text" gorm:"column:header_button_text;type:varchar(100);not null"`
	HeaderButtonURL   string    `json:"header_button_url" gorm:"column:header_button_url;type:varchar(500)"`
	HeaderButtonStyle string    `json:"header_button_style" gorm:"column:header_button_style;type:varchar(50)"`

	// a button either links out or opens a popup
	HeaderButtonPopupID *uuid.UUID  `json:"header_button_popup_id,omitempty" gorm:"column:header_button_popup_id;type:uuid"`
	Popup               *PopupModel `json:"popup,omitempty" gorm:"foreignKey:HeaderButtonPopupID;references:PopupID;constraint:OnDelete:SET NULL"`

	HeaderButtonOrder    int  `json:"header_button_order" gorm:"column:header_button_order;not null;default:0"`
	HeaderButtonIsActive bool `json:"header_button_is_active" gorm:"column:header_button_is_active;not null;default:true"`
}

func (HeaderButtonModel) TableName() string { return "header_buttons" }

func (b *HeaderButtonModel) BeforeCreate(tx *gorm.DB) error {
	if b.HeaderButtonID == uuid.Nil {
		b.HeaderButtonID = uuid.New()
	}
	return nil
}

/* =========================
   Model: contact_requests
   ========================= */

// A lead from the contact form or a popup. Rows never change after
// intake except for the processed flag.
type ContactRequestModel struct {
	ContactRequestID       uuid.UUID `json:"contact_request_id" gorm:"column:contact_request_id;type:uuid;primaryKey"`
	ContactRequestName     string    `json:"contact_request_name" gorm:"column:contact_request_name;type:varchar(255);not null"`
	ContactRequestPhone    string    `json:"contact_request_phone" gorm:"column:contact_request_phone;type:varchar(50)"`
	ContactRequestEmail    string    `json:"contact_request_email" gorm:"column:contact_request_email;type:varchar(255)"`
	ContactRequestTelegram string    `json:"contact_request_telegram" gorm:"column:contact_request_telegram;type:varchar(100)"`
	ContactRequestMessage  string    `json:"contact_request_message" gorm:"column:contact_request_message;type:text"`
	ContactRequestSource   string    `json:"contact_request_source" gorm:"column:contact_request_source;type:varchar(255)"`

	ContactRequestIsProcessed bool      `json:"contact_request_is_processed" gorm:"column:contact_request_is_processed;not null;default:false"`
	ContactRequestCreatedAt   time.Time `json:"contact_request_created_at" gorm:"column:contact_request_created_at;autoCreateTime"`
}

func (ContactRequestModel) TableName() string { return "contact_requests" }

func (r *ContactRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ContactRequestID == uuid.Nil {
		r.ContactRequestID = uuid.New()
	}
	return nil
}
