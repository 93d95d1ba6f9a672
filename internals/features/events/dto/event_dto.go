package dto

import (
	"time"

	"baliestate_backend/internals/features/events/model"
	helper "baliestate_backend/internals/helpers"
)

/* ============================
   Response DTO
   ============================ */

type EventLiteDTO struct {
	EventID               string     `json:"event_id"`
	EventTitle            string     `json:"event_title"`
	EventSlug             string     `json:"event_slug"`
	EventImage            string     `json:"event_image"` // resolved URL
	EventShortDescription string     `json:"event_short_description,omitempty"`
	EventDate             time.Time  `json:"event_date"`
	EventEndDate          *time.Time `json:"event_end_date,omitempty"`
	EventVenue            string     `json:"event_venue,omitempty"`
	EventStatus           string     `json:"event_status"`
	EventIsFeatured       bool       `json:"event_is_featured"`
}

type EventDTO struct {
	EventLiteDTO

	EventDescription     string   `json:"event_description,omitempty"`
	EventAddress         string   `json:"event_address,omitempty"`
	EventLatitude        *float64 `json:"event_latitude,omitempty"`
	EventLongitude       *float64 `json:"event_longitude,omitempty"`
	EventRegistrationURL string   `json:"event_registration_url,omitempty"`

	EventIsActive  bool      `json:"event_is_active"`
	EventCreatedAt time.Time `json:"event_created_at"`
}

/* ============================
   Create & Update Request DTO
   ============================ */

type CreateEventRequest struct {
	EventTitle            string `json:"event_title" validate:"required,min=3,max=255"`
	EventImageExtURL      string `json:"event_image_ext_url" validate:"omitempty,url"`
	EventShortDescription string `json:"event_short_description" validate:"max=500"`
	EventDescription      string `json:"event_description"`

	EventDate    time.Time  `json:"event_date" validate:"required"`
	EventEndDate *time.Time `json:"event_end_date"`

	EventVenue     string   `json:"event_venue" validate:"max=255"`
	EventAddress   string   `json:"event_address" validate:"max=500"`
	EventLatitude  *float64 `json:"event_latitude" validate:"omitempty,gte=-90,lte=90"`
	EventLongitude *float64 `json:"event_longitude" validate:"omitempty,gte=-180,lte=180"`

	EventRegistrationURL string `json:"event_registration_url" validate:"omitempty,url"`
	EventStatus          string `json:"event_status" validate:"omitempty,oneof=upcoming ongoing completed"`
	EventIsFeatured      bool   `json:"event_is_featured"`
	EventIsActive        *bool  `json:"event_is_active"`
}

type UpdateEventRequest struct {
	EventTitle            *string `json:"event_title" validate:"omitempty,min=3,max=255"`
	EventImageExtURL      *string `json:"event_image_ext_url" validate:"omitempty,url"`
	EventShortDescription *string `json:"event_short_description" validate:"omitempty,max=500"`
	EventDescription      *string `json:"event_description"`

	EventDate    *time.Time `json:"event_date"`
	EventEndDate *time.Time `json:"event_end_date"`

	EventVenue     *string  `json:"event_venue" validate:"omitempty,max=255"`
	EventAddress   *string  `json:"event_address" validate:"omitempty,max=500"`
	EventLatitude  *float64 `json:"event_latitude" validate:"omitempty,gte=-90,lte=90"`
	EventLongitude *float64 `json:"event_longitude" validate:"omitempty,gte=-180,lte=180"`

	EventRegistrationURL *string `json:"event_registration_url" validate:"omitempty,url"`
	EventStatus          *string `json:"event_status" validate:"omitempty,oneof=upcoming ongoing completed"`
	EventIsFeatured      *bool   `json:"event_is_featured"`
	EventIsActive        *bool   `json:"event_is_active"`
}

/* ============================
   Converters
   ============================ */

func ToEventLiteDTO(m model.EventModel) EventLiteDTO {
	return EventLiteDTO{
		EventID:               m.EventID.String(),
		EventTitle:            m.EventTitle,
		EventSlug:             m.EventSlug,
		EventImage:            helper.ResolveMedia(m.EventImageURL, m.EventImageExtURL),
		EventShortDescription: m.EventShortDescription,
		EventDate:             m.EventDate,
		EventEndDate:          m.EventEndDate,
		EventVenue:            m.EventVenue,
		EventStatus:           m.EventStatus,
		EventIsFeatured:       m.EventIsFeatured,
	}
}

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		EventLiteDTO:         ToEventLiteDTO(m),
		EventDescription:     m.EventDescription,
		EventAddress:         m.EventAddress,
		EventLatitude:        m.EventLatitude,
		EventLongitude:       m.EventLongitude,
		EventRegistrationURL: m.EventRegistrationURL,
		EventIsActive:        m.EventIsActive,
		EventCreatedAt:       m.EventCreatedAt,
	}
}
