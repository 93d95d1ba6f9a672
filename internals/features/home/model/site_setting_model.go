package model

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =========================
   Model: site_settings
   ========================= */

const siteSettingPK = 1

// One row, ever. The pk is pinned so concurrent first reads race on the
// same insert and the conflict clause lets the loser fall through.
type SiteSettingModel struct {
	SiteSettingID int `json:"site_setting_id" gorm:"column:site_setting_id;primaryKey"`

	SiteSettingSiteName string `json:"site_setting_site_name" gorm:"column:site_setting_site_name;type:varchar(100);not null;default:'Baliestate'"`
	SiteSettingTagline  string `json:"site_setting_tagline" gorm:"column:site_setting_tagline;type:varchar(255)"`
	SiteSettingAbout    string `json:"site_setting_about" gorm:"column:site_setting_about;type:text"`

	SiteSettingLogoURL    string `json:"site_setting_logo_url" gorm:"column:site_setting_logo_url;type:text"`
	SiteSettingLogoExtURL string `json:"site_setting_logo_ext_url" gorm:"column:site_setting_logo_ext_url;type:text"`

	SiteSettingPhone   string `json:"site_setting_phone" gorm:"column:site_setting_phone;type:varchar(50)"`
	SiteSettingEmail   string `json:"site_setting_email" gorm:"column:site_setting_email;type:varchar(255)"`
	SiteSettingAddress string `json:"site_setting_address" gorm:"column:site_setting_address;type:varchar(500)"`

	SiteSettingTelegram  string `json:"site_setting_telegram" gorm:"column:site_setting_telegram;type:varchar(100)"`
	SiteSettingWhatsapp  string `json:"site_setting_whatsapp" gorm:"column:site_setting_whatsapp;type:varchar(50)"`
	SiteSettingInstagram string `json:"site_setting_instagram" gorm:"column:site_setting_instagram;type:varchar(100)"`
	SiteSettingYoutube   string `json:"site_setting_youtube" gorm:"column:site_setting_youtube;type:varchar(255)"`

	SiteSettingMetaTitle       string `json:"site_setting_meta_title" gorm:"column:site_setting_meta_title;type:varchar(255)"`
	SiteSettingMetaDescription string `json:"site_setting_meta_description" gorm:"column:site_setting_meta_description;type:varchar(500)"`
	SiteSettingFooterText      string `json:"site_setting_footer_text" gorm:"column:site_setting_footer_text;type:varchar(500)"`

	SiteSettingUpdatedAt time.Time `json:"site_setting_updated_at" gorm:"column:site_setting_updated_at;autoUpdateTime"`
}

func (SiteSettingModel) TableName() string { return "site_settings" }

// BeforeSave pins the pk so no second row can appear through any write path.
func (s *SiteSettingModel) BeforeSave(tx *gorm.DB) error {
	s.SiteSettingID = siteSettingPK
	return nil
}

// GetSiteSettings returns the settings row, creating it with defaults on
// first access. Insert-or-ignore then read, so concurrent callers all
// land on the same row.
func GetSiteSettings(db *gorm.DB) (SiteSettingModel, error) {
	seed := SiteSettingModel{
		SiteSettingID:       siteSettingPK,
		SiteSettingSiteName: "Baliestate",
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return SiteSettingModel{}, err
	}

	var settings SiteSettingModel
	if err := db.First(&settings, "site_setting_id = ?", siteSettingPK).Error; err != nil {
		return SiteSettingModel{}, err
	}
	return settings, nil
}
