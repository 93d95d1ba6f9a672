package dto

import (
	"time"

	"baliestate_backend/internals/features/properties/model"
	helper "baliestate_backend/internals/helpers"
)

/* ============================
   Response DTO
   ============================ */

type PropertyTypeDTO struct {
	PropertyTypeID   string `json:"property_type_id"`
	PropertyTypeName string `json:"property_type_name"`
	PropertyTypeSlug string `json:"property_type_slug"`
}

type LocationDTO struct {
	LocationID          string `json:"location_id"`
	LocationName        string `json:"location_name"`
	LocationSlug        string `json:"location_slug"`
	LocationDescription string `json:"location_description,omitempty"`
}

type PropertyImageDTO struct {
	PropertyImageID string `json:"property_image_id"`
	Image           string `json:"image"` // resolved URL
	Order           int    `json:"order"`
}

// PropertyLiteDTO is the card shape used on list pages and the home page.
type PropertyLiteDTO struct {
	PropertyID               string           `json:"property_id"`
	PropertyName             string           `json:"property_name"`
	PropertySlug             string           `json:"property_slug"`
	PropertyMainImage        string           `json:"property_main_image"` // resolved URL
	PropertyPriceFrom        *int64           `json:"property_price_from,omitempty"`
	PropertyArea             *int             `json:"property_area,omitempty"`
	PropertyRooms            *int             `json:"property_rooms,omitempty"`
	PropertyStatus           string           `json:"property_status"`
	PropertyCompletionStatus string           `json:"property_completion_status"`
	PropertyIsFeatured       bool             `json:"property_is_featured"`
	PropertyType             *PropertyTypeDTO `json:"property_type,omitempty"`
	PropertyLocation         *LocationDTO     `json:"property_location,omitempty"`
}

// PropertyDTO is the full detail-page shape.
type PropertyDTO struct {
	PropertyLiteDTO

	PropertyDeveloperID        string             `json:"property_developer_id"`
	PropertyConstructionStatus string             `json:"property_construction_status"`
	PropertyCompletionDate     string             `json:"property_completion_date,omitempty"`
	PropertyShortDescription   string             `json:"property_short_description,omitempty"`
	PropertyDescription        string             `json:"property_description,omitempty"`
	PropertyROI                *float64           `json:"property_roi,omitempty"`
	PropertyHasGarage          bool               `json:"property_has_garage"`
	PropertyOceanDistance      string             `json:"property_ocean_distance,omitempty"`
	PropertyAddress            string             `json:"property_address,omitempty"`
	PropertyLatitude           *float64           `json:"property_latitude,omitempty"`
	PropertyLongitude          *float64           `json:"property_longitude,omitempty"`
	PropertyDistances          map[string]any     `json:"property_distances,omitempty"`
	PropertyImages             []PropertyImageDTO `json:"property_images,omitempty"`
	PropertyIsActive           bool               `json:"property_is_active"`
	PropertyCreatedAt          time.Time          `json:"property_created_at"`
	PropertyUpdatedAt          time.Time          `json:"property_updated_at"`
}

/* ============================
   Create & Update Request DTO
   ============================ */

type CreatePropertyRequest struct {
	PropertyName        string  `json:"property_name" validate:"required,min=3"`
	PropertyDeveloperID string  `json:"property_developer_id" validate:"required,uuid"`
	PropertyTypeID      *string `json:"property_type_id" validate:"omitempty,uuid"`
	PropertyLocationID  *string `json:"property_location_id" validate:"omitempty,uuid"`

	PropertyMainImageExtURL string `json:"property_main_image_ext_url" validate:"omitempty,url"`

	PropertyPriceFrom *int64   `json:"property_price_from" validate:"omitempty,gte=0"`
	PropertyArea      *int     `json:"property_area" validate:"omitempty,gte=0"`
	PropertyRooms     *int     `json:"property_rooms" validate:"omitempty,gte=0"`
	PropertyROI       *float64 `json:"property_roi" validate:"omitempty,gte=0"`

	PropertyStatus             string `json:"property_status" validate:"omitempty,oneof=sale presale sold"`
	PropertyConstructionStatus string `json:"property_construction_status" validate:"omitempty,oneof=completed in_progress planned"`
	PropertyCompletionDate     string `json:"property_completion_date"`

	PropertyShortDescription string `json:"property_short_description" validate:"max=500"`
	PropertyDescription      string `json:"property_description"`

	PropertyHasGarage     bool   `json:"property_has_garage"`
	PropertyOceanDistance string `json:"property_ocean_distance"`

	PropertyAddress   string         `json:"property_address" validate:"max=500"`
	PropertyLatitude  *float64       `json:"property_latitude"`
	PropertyLongitude *float64       `json:"property_longitude"`
	PropertyDistances map[string]any `json:"property_distances"`

	PropertyIsFeatured bool  `json:"property_is_featured"`
	PropertyIsActive   *bool `json:"property_is_active"`
}

// UpdatePropertyRequest: pointer fields are "absent means keep".
// The slug is deliberately not updatable.
type UpdatePropertyRequest struct {
	PropertyName        *string `json:"property_name" validate:"omitempty,min=3"`
	PropertyDeveloperID *string `json:"property_developer_id" validate:"omitempty,uuid"`
	PropertyTypeID      *string `json:"property_type_id" validate:"omitempty,uuid"`
	PropertyLocationID  *string `json:"property_location_id" validate:"omitempty,uuid"`

	PropertyMainImageExtURL *string `json:"property_main_image_ext_url" validate:"omitempty,url"`

	PropertyPriceFrom *int64   `json:"property_price_from" validate:"omitempty,gte=0"`
	PropertyArea      *int     `json:"property_area" validate:"omitempty,gte=0"`
	PropertyRooms     *int     `json:"property_rooms" validate:"omitempty,gte=0"`
	PropertyROI       *float64 `json:"property_roi" validate:"omitempty,gte=0"`

	PropertyStatus             *string `json:"property_status" validate:"omitempty,oneof=sale presale sold"`
	PropertyConstructionStatus *string `json:"property_construction_status" validate:"omitempty,oneof=completed in_progress planned"`
	PropertyCompletionDate     *string `json:"property_completion_date"`

	PropertyShortDescription *string `json:"property_short_description" validate:"omitempty,max=500"`
	PropertyDescription      *string `json:"property_description"`

	PropertyHasGarage     *bool   `json:"property_has_garage"`
	PropertyOceanDistance *string `json:"property_ocean_distance"`

	PropertyAddress   *string        `json:"property_address" validate:"omitempty,max=500"`
	PropertyLatitude  *float64       `json:"property_latitude"`
	PropertyLongitude *float64       `json:"property_longitude"`
	PropertyDistances map[string]any `json:"property_distances"`

	PropertyIsFeatured *bool `json:"property_is_featured"`
	PropertyIsActive   *bool `json:"property_is_active"`
}

/* ============================
   Filter echo for list pages
   ============================ */

type PropertyFilters struct {
	Q        string `json:"q,omitempty"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
	Rooms    string `json:"rooms,omitempty"`
}

/* ============================
   Converters
   ============================ */

func ToPropertyTypeDTO(m model.PropertyTypeModel) PropertyTypeDTO {
	return PropertyTypeDTO{
		PropertyTypeID:   m.PropertyTypeID.String(),
		PropertyTypeName: m.PropertyTypeName,
		PropertyTypeSlug: m.PropertyTypeSlug,
	}
}

func ToLocationDTO(m model.LocationModel) LocationDTO {
	return LocationDTO{
		LocationID:          m.LocationID.String(),
		LocationName:        m.LocationName,
		LocationSlug:        m.LocationSlug,
		LocationDescription: m.LocationDescription,
	}
}

func ToPropertyImageDTO(m model.PropertyImageModel) PropertyImageDTO {
	return PropertyImageDTO{
		PropertyImageID: m.PropertyImageID.String(),
		Image:           helper.ResolveMedia(m.PropertyImageURL, m.PropertyImageExtURL),
		Order:           m.PropertyImageOrder,
	}
}

func ToPropertyLiteDTO(m model.PropertyModel) PropertyLiteDTO {
	out := PropertyLiteDTO{
		PropertyID:               m.PropertyID.String(),
		PropertyName:             m.PropertyName,
		PropertySlug:             m.PropertySlug,
		PropertyMainImage:        helper.ResolveMedia(m.PropertyMainImageURL, m.PropertyMainImageExtURL),
		PropertyPriceFrom:        m.PropertyPriceFrom,
		PropertyArea:             m.PropertyArea,
		PropertyRooms:            m.PropertyRooms,
		PropertyStatus:           m.PropertyStatus,
		PropertyCompletionStatus: m.CompletionStatus(),
		PropertyIsFeatured:       m.PropertyIsFeatured,
	}
	if m.PropertyType != nil {
		t := ToPropertyTypeDTO(*m.PropertyType)
		out.PropertyType = &t
	}
	if m.PropertyLocation != nil {
		l := ToLocationDTO(*m.PropertyLocation)
		out.PropertyLocation = &l
	}
	return out
}

func ToPropertyDTO(m model.PropertyModel) PropertyDTO {
	out := PropertyDTO{
		PropertyLiteDTO:            ToPropertyLiteDTO(m),
		PropertyDeveloperID:        m.PropertyDeveloperID.String(),
		PropertyConstructionStatus: m.PropertyConstructionStatus,
		PropertyCompletionDate:     m.PropertyCompletionDate,
		PropertyShortDescription:   m.PropertyShortDescription,
		PropertyDescription:        m.PropertyDescription,
		PropertyROI:                m.PropertyROI,
		PropertyHasGarage:          m.PropertyHasGarage,
		PropertyOceanDistance:      m.PropertyOceanDistance,
		PropertyAddress:            m.PropertyAddress,
		PropertyLatitude:           m.PropertyLatitude,
		PropertyLongitude:          m.PropertyLongitude,
		PropertyDistances:          m.PropertyDistances,
		PropertyIsActive:           m.PropertyIsActive,
		PropertyCreatedAt:          m.PropertyCreatedAt,
		PropertyUpdatedAt:          m.PropertyUpdatedAt,
	}
	for _, img := range m.PropertyImages {
		out.PropertyImages = append(out.PropertyImages, ToPropertyImageDTO(img))
	}
	return out
}
