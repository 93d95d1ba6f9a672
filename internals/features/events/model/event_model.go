package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "baliestate_backend/internals/helpers"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

/* =========================
   Model: events
   ========================= */

type EventModel struct {
	EventID    uuid.UUID `json:"event_id" gorm:"column:event_id;type:uuid;primaryKey"`
	EventTitle string    `json:"event_title" gorm:"column:event_title;type:varchar(255);not null"`
	EventSlug  string    `json:"event_slug" gorm:"column:event_slug;type:varchar(160);uniqueIndex;not null"`

	EventImageURL    string `json:"event_image_url" gorm:"column:event_image_url;type:text"`
	EventImageExtURL string `json:"event_image_ext_url" gorm:"column:event_image_ext_url;type:text"`

	EventShortDescription string `json:"event_short_description" gorm:"column:event_short_description;type:varchar(500)"`
	EventDescription      string `json:"event_description" gorm:"column:event_description;type:text"` // HTML

	EventDate    time.Time  `json:"event_date" gorm:"column:event_date;not null"`
	EventEndDate *time.Time `json:"event_end_date,omitempty" gorm:"column:event_end_date"`

	EventVenue     string   `json:"event_venue" gorm:"column:event_venue;type:varchar(255)"`
	EventAddress   string   `json:"event_address" gorm:"column:event_address;type:varchar(500)"`
	EventLatitude  *float64 `json:"event_latitude,omitempty" gorm:"column:event_latitude;type:numeric(9,6)"`
	EventLongitude *float64 `json:"event_longitude,omitempty" gorm:"column:event_longitude;type:numeric(9,6)"`

	EventRegistrationURL string `json:"event_registration_url" gorm:"column:event_registration_url;type:varchar(500)"`

	EventStatus     string `json:"event_status" gorm:"column:event_status;type:varchar(20);not null;default:'upcoming'"`
	EventIsFeatured bool   `json:"event_is_featured" gorm:"column:event_is_featured;not null;default:false"`
	EventIsActive   bool   `json:"event_is_active" gorm:"column:event_is_active;not null;default:true"`

	EventCreatedAt time.Time `json:"event_created_at" gorm:"column:event_created_at;autoCreateTime"`
	EventUpdatedAt time.Time `json:"event_updated_at" gorm:"column:event_updated_at;autoUpdateTime"`
}

func (EventModel) TableName() string { return "events" }

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	if e.EventSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "events",
			SlugColumn:  "event_slug",
			DefaultBase: "event",
		}, e.EventTitle)
		if err != nil {
			return err
		}
		e.EventSlug = slug
	}
	return nil
}

// IsPast reports whether the event has already finished.
func (e *EventModel) IsPast(now time.Time) bool {
	if e.EventEndDate != nil {
		return e.EventEndDate.Before(now)
	}
	return e.EventDate.Before(now)
}

func ScopeActiveEvents(db *gorm.DB) *gorm.DB {
	return db.Where("event_is_active = ?", true)
}
