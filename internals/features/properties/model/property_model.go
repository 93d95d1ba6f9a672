package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "baliestate_backend/internals/helpers"
)

/* =========================
   Sale / construction status
   ========================= */

const (
	PropertyStatusSale    = "sale"
	PropertyStatusPresale = "presale"
	PropertyStatusSold    = "sold"

	ConstructionCompleted  = "completed"
	ConstructionInProgress = "in_progress"
	ConstructionPlanned    = "planned"
)

/* =========================
   Model: properties
   ========================= */

type PropertyModel struct {
	PropertyID   uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey"`
	PropertyName string    `json:"property_name" gorm:"column:property_name;type:varchar(255);not null"`
	PropertySlug string    `json:"property_slug" gorm:"column:property_slug;type:varchar(160);uniqueIndex;not null"`

	// owner (ON DELETE CASCADE), classifiers (nullable, ON DELETE SET NULL)
	PropertyDeveloperID uuid.UUID  `json:"property_developer_id" gorm:"column:property_developer_id;type:uuid;not null"`
	PropertyTypeID      *uuid.UUID `json:"property_type_id,omitempty" gorm:"column:property_type_id;type:uuid"`
	PropertyLocationID  *uuid.UUID `json:"property_location_id,omitempty" gorm:"column:property_location_id;type:uuid"`

	PropertyType     *PropertyTypeModel `json:"property_type,omitempty" gorm:"foreignKey:PropertyTypeID;references:PropertyTypeID;constraint:OnDelete:SET NULL"`
	PropertyLocation *LocationModel     `json:"property_location,omitempty" gorm:"foreignKey:PropertyLocationID;references:LocationID;constraint:OnDelete:SET NULL"`

	// media: uploaded file URL or external link, either may be empty
	PropertyMainImageURL    string `json:"property_main_image_url" gorm:"column:property_main_image_url;type:text"`
	PropertyMainImageExtURL string `json:"property_main_image_ext_url" gorm:"column:property_main_image_ext_url;type:text"`

	// numbers: nil means "unknown"
	PropertyPriceFrom *int64   `json:"property_price_from,omitempty" gorm:"column:property_price_from;type:bigint"`
	PropertyArea      *int     `json:"property_area,omitempty" gorm:"column:property_area;type:int"`
	PropertyRooms     *int     `json:"property_rooms,omitempty" gorm:"column:property_rooms;type:smallint"`
	PropertyROI       *float64 `json:"property_roi,omitempty" gorm:"column:property_roi;type:numeric(4,1)"`

	PropertyStatus             string `json:"property_status" gorm:"column:property_status;type:varchar(20);not null;default:'sale'"`
	PropertyConstructionStatus string `json:"property_construction_status" gorm:"column:property_construction_status;type:varchar(20);not null;default:'in_progress'"`
	PropertyCompletionDate     string `json:"property_completion_date" gorm:"column:property_completion_date;type:varchar(50)"` // e.g. "Q3 2025"

	PropertyShortDescription string `json:"property_short_description" gorm:"column:property_short_description;type:text"`
	PropertyDescription      string `json:"property_description" gorm:"column:property_description;type:text"` // HTML

	PropertyHasGarage     bool   `json:"property_has_garage" gorm:"column:property_has_garage;not null;default:false"`
	PropertyOceanDistance string `json:"property_ocean_distance" gorm:"column:property_ocean_distance;type:varchar(50)"`

	PropertyAddress   string   `json:"property_address" gorm:"column:property_address;type:varchar(500)"`
	PropertyLatitude  *float64 `json:"property_latitude,omitempty" gorm:"column:property_latitude;type:numeric(9,6)"`
	PropertyLongitude *float64 `json:"property_longitude,omitempty" gorm:"column:property_longitude;type:numeric(9,6)"`

	// nearby distances, e.g. {"school": "0.7", "beach": "1.3"}
	PropertyDistances datatypes.JSONMap `json:"property_distances,omitempty" gorm:"column:property_distances"`

	PropertyIsFeatured bool `json:"property_is_featured" gorm:"column:property_is_featured;not null;default:false"`
	PropertyIsActive   bool `json:"property_is_active" gorm:"column:property_is_active;not null;default:true"`

	PropertyCreatedAt time.Time `json:"property_created_at" gorm:"column:property_created_at;autoCreateTime"`
	PropertyUpdatedAt time.Time `json:"property_updated_at" gorm:"column:property_updated_at;autoUpdateTime"`

	PropertyImages []PropertyImageModel `json:"property_images,omitempty" gorm:"foreignKey:PropertyImagePropertyID;references:PropertyID;constraint:OnDelete:CASCADE"`
}

func (PropertyModel) TableName() string { return "properties" }

// BeforeCreate assigns the id and derives the slug once. The slug is
// never regenerated on rename.
func (p *PropertyModel) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	if p.PropertySlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "properties",
			SlugColumn:  "property_slug",
			DefaultBase: "property",
		}, p.PropertyName)
		if err != nil {
			return err
		}
		p.PropertySlug = slug
	}
	return nil
}

// CompletionStatus mirrors the card label: "completed" wins, otherwise
// the announced date, otherwise a placeholder.
func (p *PropertyModel) CompletionStatus() string {
	if p.PropertyConstructionStatus == ConstructionCompleted {
		return "Completed"
	}
	if p.PropertyCompletionDate != "" {
		return p.PropertyCompletionDate
	}
	return "TBC"
}

func ScopeActiveProperties(db *gorm.DB) *gorm.DB {
	return db.Where("property_is_active = ?", true)
}

/* =========================
   Model: property_types
   ========================= */

type PropertyTypeModel struct {
	PropertyTypeID   uuid.UUID `json:"property_type_id" gorm:"column:property_type_id;type:uuid;primaryKey"`
	PropertyTypeName string    `json:"property_type_name" gorm:"column:property_type_name;type:varchar(100);not null"`
	PropertyTypeSlug string    `json:"property_type_slug" gorm:"column:property_type_slug;type:varchar(100);uniqueIndex;not null"`
}

func (PropertyTypeModel) TableName() string { return "property_types" }

func (t *PropertyTypeModel) BeforeCreate(tx *gorm.DB) error {
	if t.PropertyTypeID == uuid.Nil {
		t.PropertyTypeID = uuid.New()
	}
	if t.PropertyTypeSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "property_types",
			SlugColumn:  "property_type_slug",
			DefaultBase: "type",
		}, t.PropertyTypeName)
		if err != nil {
			return err
		}
		t.PropertyTypeSlug = slug
	}
	return nil
}

/* =========================
   Model: locations
   ========================= */

type LocationModel struct {
	LocationID          uuid.UUID `json:"location_id" gorm:"column:location_id;type:uuid;primaryKey"`
	LocationName        string    `json:"location_name" gorm:"column:location_name;type:varchar(100);not null"`
	LocationSlug        string    `json:"location_slug" gorm:"column:location_slug;type:varchar(100);uniqueIndex;not null"`
	LocationDescription string    `json:"location_description" gorm:"column:location_description;type:text"`
}

func (LocationModel) TableName() string { return "locations" }

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.LocationID == uuid.Nil {
		l.LocationID = uuid.New()
	}
	if l.LocationSlug == "" {
		slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
			Table:       "locations",
			SlugColumn:  "location_slug",
			DefaultBase: "location",
		}, l.LocationName)
		if err != nil {
			return err
		}
		l.LocationSlug = slug
	}
	return nil
}

/* =========================
   Model: property_images
   ========================= */

// Gallery image; a true child of its property, removed with it.
type PropertyImageModel struct {
	PropertyImageID         uuid.UUID `json:"property_image_id" gorm:"column:property_image_id;type:uuid;primaryKey"`
	PropertyImagePropertyID uuid.UUID `json:"property_image_property_id" gorm:"column:property_image_property_id;type:uuid;not null"`

	PropertyImageURL    string `json:"property_image_url" gorm:"column:property_image_url;type:text"`
	PropertyImageExtURL string `json:"property_image_ext_url" gorm:"column:property_image_ext_url;type:text"`

	PropertyImageOrder int `json:"property_image_order" gorm:"column:property_image_order;not null;default:0"`
}

func (PropertyImageModel) TableName() string { return "property_images" }

func (i *PropertyImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.PropertyImageID == uuid.Nil {
		i.PropertyImageID = uuid.New()
	}
	return nil
}
